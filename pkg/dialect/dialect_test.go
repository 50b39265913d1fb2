package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeModeString(t *testing.T) {
	tests := []struct {
		mode EscapeMode
		want string
	}{
		{EscapeDoubling, "doubling"},
		{EscapeBackslash, "backslash"},
		{EscapeNone, "none"},
		{EscapeMode(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestStandardBuilderDefaults(t *testing.T) {
	p, err := Standard("test").Build()
	require.NoError(t, err)

	assert.Equal(t, "test", p.Name)
	assert.Equal(t, ";", p.StatementSeparator)
	assert.Empty(t, p.BatchSeparator)
	assert.False(t, p.DollarQuotes)

	require.Len(t, p.QuoteStyles, 1)
	assert.Equal(t, "'", p.QuoteStyles[0].Open)
	assert.Equal(t, EscapeDoubling, p.QuoteStyles[0].Escape)

	require.Len(t, p.IdentQuoteStyles, 1)
	assert.Equal(t, `"`, p.IdentQuoteStyles[0].Open)

	assert.Equal(t, []string{"--"}, p.LineCommentPrefixes)
	require.Len(t, p.BlockComments, 1)
	assert.False(t, p.BlockComments[0].Nestable)
}

func TestBuildRejectsEmptyDelimiter(t *testing.T) {
	_, err := NewBuilder("test").
		QuoteStyle("", "'", EscapeDoubling).
		Build()
	require.Error(t, err)
}

func TestBuildRejectsEmptySeparator(t *testing.T) {
	_, err := Standard("test").StatementSeparator("").Build()
	require.Error(t, err)
}

func TestBuildRejectsAmbiguousDelimiters(t *testing.T) {
	// The same text in two delimiter categories has no priority order.
	_, err := Standard("test").
		LineComments(";").
		Build()
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "test", cfgErr.Dialect)
	assert.Equal(t, ";", cfgErr.Delimiter)
}

func TestBuildRejectsDuplicateWithinCategory(t *testing.T) {
	// The same opener twice is ambiguous even within one category: the
	// two declarations could carry different escape rules.
	_, err := Standard("test").
		IdentifierQuoteStyle(`"`, `"`, EscapeNone).
		Build()
	require.Error(t, err)
}

func TestMatchLongestWins(t *testing.T) {
	p := Standard("test").
		StatementSeparator(";;").
		MustBuild()

	cand, ok := p.Match(";;select")
	require.True(t, ok)
	assert.Equal(t, ";;", cand.Text)
	assert.Equal(t, CandidateSeparator, cand.Kind)

	// A lone ";" is not the separator for this profile.
	_, ok = p.Match("; select")
	assert.False(t, ok)
}

func TestMatchCategories(t *testing.T) {
	p := Standard("test").BatchSeparator("GO").MustBuild()

	tests := []struct {
		input string
		kind  CandidateKind
		text  string
	}{
		{"'abc'", CandidateQuote, "'"},
		{`"col"`, CandidateIdentQuote, `"`},
		{"-- note", CandidateLineComment, "--"},
		{"/* x */", CandidateBlockComment, "/*"},
		{"; next", CandidateSeparator, ";"},
		{"GO\n", CandidateBatch, "GO"},
		{"go\n", CandidateBatch, "GO"}, // batch separators match case-insensitively
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cand, ok := p.Match(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.kind, cand.Kind)
			assert.Equal(t, tt.text, cand.Text)
		})
	}

	_, ok := p.Match("select 1")
	assert.False(t, ok)
}

func TestMatchDollarQuoteCandidate(t *testing.T) {
	p := Standard("test").DollarQuotes().MustBuild()

	cand, ok := p.Match("$tag$body$tag$")
	require.True(t, ok)
	assert.Equal(t, CandidateDollarQuote, cand.Kind)

	_, ok = Standard("plain").MustBuild().Match("$tag$")
	assert.False(t, ok, "dollar quoting is off by default")
}

func TestIsKeyword(t *testing.T) {
	p := Standard("test").WithKeywords("select", "from").MustBuild()

	assert.True(t, p.IsKeyword("select"))
	assert.True(t, p.IsKeyword("SELECT"))
	assert.True(t, p.IsKeyword("From"))
	assert.False(t, p.IsKeyword("col"))
}

func TestIsKeywordCaseSensitive(t *testing.T) {
	p := Standard("test").
		CaseSensitiveIdentifiers().
		WithKeywords("select").
		MustBuild()

	assert.True(t, p.IsKeyword("select"))
	assert.False(t, p.IsKeyword("SELECT"))
}

func TestWithKeywordsOrderIndependent(t *testing.T) {
	// Keyword normalization happens at Build, so declaring keywords before
	// switching on case sensitivity preserves their declared spelling.
	p := Standard("test").
		WithKeywords("SELECT").
		CaseSensitiveIdentifiers().
		MustBuild()

	assert.True(t, p.IsKeyword("SELECT"))
	assert.False(t, p.IsKeyword("select"))

	q := Standard("test").
		CaseSensitiveIdentifiers().
		WithKeywords("SELECT").
		MustBuild()
	assert.True(t, q.IsKeyword("SELECT"))
	assert.False(t, q.IsKeyword("select"))
}

func TestRegistry(t *testing.T) {
	p := Standard("registry-test").MustBuild()
	Register(p)

	got, ok := Get("registry-test")
	require.True(t, ok)
	assert.Same(t, p, got)

	// Lookup is case-insensitive.
	got, ok = Get("Registry-Test")
	require.True(t, ok)
	assert.Same(t, p, got)

	_, ok = Get("no-such-dialect")
	assert.False(t, ok)

	assert.Contains(t, List(), "registry-test")
	assert.IsIncreasing(t, List())
}
