package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/loosesql/pkg/dialect"
)

func TestEndOfQuotedDoubling(t *testing.T) {
	q := &dialect.QuoteStyle{Open: "'", Close: "'", Escape: dialect.EscapeDoubling}

	tests := []struct {
		input      string
		end        int
		terminated bool
	}{
		{"'abc' rest", 5, true},
		{"''", 2, true},
		{"''''", 4, true},               // escaped quote, then closer
		{"'O''Reilly'", 11, true},       // doubled quote inside
		{"'unterminated", 13, false},    // runs to end of input
		{"'ends with escape''", 19, false}, // doubled quote is not a closer
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			end, terminated := EndOfQuoted(tt.input, 0, q)
			assert.Equal(t, tt.end, end)
			assert.Equal(t, tt.terminated, terminated)
		})
	}
}

func TestEndOfQuotedBackslash(t *testing.T) {
	q := &dialect.QuoteStyle{Open: "'", Close: "'", Escape: dialect.EscapeBackslash}

	end, terminated := EndOfQuoted(`'a\'b'`, 0, q)
	require.True(t, terminated)
	assert.Equal(t, 6, end)

	// The escape consumes exactly one following character, whatever it is.
	end, terminated = EndOfQuoted(`'a\\' rest`, 0, q)
	require.True(t, terminated)
	assert.Equal(t, 5, end)

	// A trailing backslash at end of input cannot escape anything.
	_, terminated = EndOfQuoted(`'abc\`, 0, q)
	assert.False(t, terminated)
}

func TestEndOfQuotedNone(t *testing.T) {
	q := &dialect.QuoteStyle{Open: "[", Close: "]", Escape: dialect.EscapeNone}

	end, terminated := EndOfQuoted("[Employee #]", 0, q)
	require.True(t, terminated)
	assert.Equal(t, 12, end)
}

func TestDollarTag(t *testing.T) {
	tests := []struct {
		input string
		tag   string
		ok    bool
	}{
		{"$$body$$", "$$", true},
		{"$tag$body$tag$", "$tag$", true},
		{"$Tag_2$x$Tag_2$", "$Tag_2$", true},
		{"$1.00", "", false},  // '.' is not a tag character
		{"$ 5", "", false},
		{"$tag", "", false},   // never closed by a second '$'
		{"x$tag$", "", false}, // not at a '$'
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tag, ok := DollarTag(tt.input, 0)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.tag, tag)
		})
	}
}

func TestEndOfDollarQuoted(t *testing.T) {
	input := "$x$__$__$x$ END"
	tag, ok := DollarTag(input, 0)
	require.True(t, ok)
	require.Equal(t, "$x$", tag)

	// The "$__$" in the middle is a prefix-like impostor, not a closer.
	end, terminated := EndOfDollarQuoted(input, 0, tag)
	require.True(t, terminated)
	assert.Equal(t, "$x$__$__$x$", input[:end])

	_, terminated = EndOfDollarQuoted("$tag$never closed", 0, "$tag$")
	assert.False(t, terminated)
}

func TestEndOfLineComment(t *testing.T) {
	assert.Equal(t, 7, EndOfLineComment("-- note\nSELECT", 0))
	assert.Equal(t, 7, EndOfLineComment("-- note\r\nSELECT", 0))
	assert.Equal(t, 7, EndOfLineComment("-- note", 0)) // end of input closes it
}

func TestEndOfBlockComment(t *testing.T) {
	flat := &dialect.BlockCommentStyle{Open: "/*", Close: "*/"}
	nested := &dialect.BlockCommentStyle{Open: "/*", Close: "*/", Nestable: true}

	end, terminated := EndOfBlockComment("/* c */ rest", 0, flat)
	require.True(t, terminated)
	assert.Equal(t, 7, end)

	// Non-nestable: the first closer ends the comment.
	input := "/* /*inner*/ outer */"
	end, terminated = EndOfBlockComment(input, 0, flat)
	require.True(t, terminated)
	assert.Equal(t, "/* /*inner*/", input[:end])

	// Nestable: depth must return to zero.
	end, terminated = EndOfBlockComment(input, 0, nested)
	require.True(t, terminated)
	assert.Equal(t, input, input[:end])

	_, terminated = EndOfBlockComment("/* never closed", 0, flat)
	assert.False(t, terminated)
}
