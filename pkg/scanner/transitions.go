package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/loosesql/pkg/dialect"
)

// The functions in this file are the mode machine's transition rules:
// pure functions of (input, offset, profile fields) with no scanner state.
// The Scanner and the classifier both drive them, so quoting and comment
// semantics cannot drift between statement splitting and token
// classification.

// EndOfQuoted returns the byte offset just past the quoted region opening
// at start (the offset of the opening delimiter), and whether the region
// was terminated before end of input. Escape handling follows the style:
// doubling keeps paired closers inside the region, backslash consumes the
// escape character plus exactly one following character regardless of what
// it is.
func EndOfQuoted(input string, start int, q *dialect.QuoteStyle) (int, bool) {
	doubled := q.Close + q.Close
	i := start + len(q.Open)
	for i < len(input) {
		rest := input[i:]
		switch q.Escape {
		case dialect.EscapeDoubling:
			if strings.HasPrefix(rest, doubled) {
				i += len(doubled)
				continue
			}
		case dialect.EscapeBackslash:
			if rest[0] == '\\' && len(rest) > 1 {
				_, size := utf8.DecodeRuneInString(rest[1:])
				i += 1 + size
				continue
			}
		}
		if strings.HasPrefix(rest, q.Close) {
			return i + len(q.Close), true
		}
		_, size := utf8.DecodeRuneInString(rest)
		i += size
	}
	return len(input), false
}

// DollarTag returns the full dollar-quote delimiter ("$", an optional tag
// of letters, digits and underscores, and another "$") starting at start,
// or false if the text at start is not a dollar-quote opener. Tags are
// case-sensitive.
func DollarTag(input string, start int) (string, bool) {
	if start >= len(input) || input[start] != '$' {
		return "", false
	}
	i := start + 1
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])
		if r == '$' {
			return input[start : i+1], true
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return "", false
		}
		i += size
	}
	return "", false
}

// EndOfDollarQuoted returns the byte offset just past the dollar-quoted
// region opening at start with the given full delimiter, and whether the
// closing delimiter was found. Partial or prefix matches of the tag are
// not closers; only the identical delimiter sequence ends the region.
func EndOfDollarQuoted(input string, start int, tag string) (int, bool) {
	i := start + len(tag)
	for i < len(input) {
		if strings.HasPrefix(input[i:], tag) {
			return i + len(tag), true
		}
		_, size := utf8.DecodeRuneInString(input[i:])
		i += size
	}
	return len(input), false
}

// EndOfLineComment returns the byte offset of the line terminator that
// closes the comment opening at start, or end of input. The terminator
// itself (CR, LF or CRLF, treated uniformly) is not part of the comment.
func EndOfLineComment(input string, start int) int {
	for i := start; i < len(input); i++ {
		if input[i] == '\n' || input[i] == '\r' {
			return i
		}
	}
	return len(input)
}

// EndOfBlockComment returns the byte offset just past the block comment
// opening at start, and whether it was terminated. For nestable styles an
// inner opener increments depth and the comment ends only when depth
// returns to zero.
func EndOfBlockComment(input string, start int, b *dialect.BlockCommentStyle) (int, bool) {
	depth := 1
	i := start + len(b.Open)
	for i < len(input) {
		rest := input[i:]
		if strings.HasPrefix(rest, b.Close) {
			depth--
			i += len(b.Close)
			if depth == 0 {
				return i, true
			}
			continue
		}
		if b.Nestable && strings.HasPrefix(rest, b.Open) {
			depth++
			i += len(b.Open)
			continue
		}
		_, size := utf8.DecodeRuneInString(rest)
		i += size
	}
	return len(input), false
}
