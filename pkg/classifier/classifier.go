// Package classifier tiles a statement's text into classified tokens. It
// re-derives quoting and commenting from the dialect profile on its own
// pass, independent of any splitter state, so callers that only need
// statement boundaries never pay for it.
//
// The produced tokens are ordered, contiguous and cover the text exactly:
// concatenating their texts reproduces the input. Like the rest of the
// library it validates nothing; unknown characters classify as operators or
// punctuation and unterminated constructs run to end of text.
package classifier

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/loosesql/pkg/dialect"
	"github.com/leapstack-labs/loosesql/pkg/scanner"
	"github.com/leapstack-labs/loosesql/pkg/token"
)

// multiCharOperators are recognized operator sequences, longest first.
var multiCharOperators = []string{
	"->>", "<=>", "::", "<=", ">=", "<>", "!=", "||", "->", ":=", "<<", ">>",
}

const singleCharOperators = "+-*/%=<>!|&^~:?@"

// Classify tiles text into tokens under the dialect profile. base is the
// position of text's first byte in the enclosing input; token spans are
// expressed in that enclosing coordinate space.
func Classify(text string, base token.Position, profile *dialect.Profile) []token.Token {
	c := &cursor{text: text, line: base.Line, col: base.Column, base: base.Offset}
	var tokens []token.Token

	for c.pos < len(text) {
		start := c.position()
		kind, n := next(text, c.pos, profile)
		c.advance(n)
		tokens = append(tokens, token.Token{
			Kind: kind,
			Text: text[start.Offset-base.Offset : c.pos],
			Span: token.Span{Start: start, End: c.position()},
		})
	}
	return tokens
}

// next decides the kind and byte length of the token starting at pos.
func next(text string, pos int, profile *dialect.Profile) (token.Kind, int) {
	rest := text[pos:]

	if cand, ok := profile.Match(rest); ok {
		switch cand.Kind {
		case dialect.CandidateQuote:
			end, _ := scanner.EndOfQuoted(text, pos, cand.Quote)
			return token.String, end - pos
		case dialect.CandidateIdentQuote:
			end, _ := scanner.EndOfQuoted(text, pos, cand.Quote)
			return token.Identifier, end - pos
		case dialect.CandidateLineComment:
			return token.Comment, scanner.EndOfLineComment(text, pos) - pos
		case dialect.CandidateBlockComment:
			end, _ := scanner.EndOfBlockComment(text, pos, cand.Block)
			return token.Comment, end - pos
		case dialect.CandidateDollarQuote:
			if tag, isOpener := scanner.DollarTag(text, pos); isOpener {
				end, _ := scanner.EndOfDollarQuoted(text, pos, tag)
				return token.String, end - pos
			}
		case dialect.CandidateSeparator:
			return token.Punct, len(cand.Text)
		case dialect.CandidateBatch:
			// A batch separator inside a statement is ordinary text;
			// it classifies as a word below.
		}
	}

	r, size := utf8.DecodeRuneInString(rest)
	switch {
	case unicode.IsSpace(r):
		return token.Whitespace, runLen(rest, unicode.IsSpace)
	case isDigit(r):
		return token.Number, numberLen(rest)
	case isWordStart(r):
		n := runLen(rest, isWordChar)
		if profile.IsKeyword(rest[:n]) {
			return token.Keyword, n
		}
		return token.Identifier, n
	}
	for _, op := range multiCharOperators {
		if strings.HasPrefix(rest, op) {
			return token.Operator, len(op)
		}
	}
	if r < utf8.RuneSelf && strings.ContainsRune(singleCharOperators, r) {
		return token.Operator, size
	}
	return token.Punct, size
}

// numberLen returns the length of the number literal at the start of rest:
// digits, at most one decimal point, and an optional exponent with an
// optional sign. A bare exponent marker with no digits after it is not
// consumed.
func numberLen(rest string) int {
	i := digitRun(rest, 0)
	if i < len(rest) && rest[i] == '.' {
		i = digitRun(rest, i+1)
	}
	if i < len(rest) && (rest[i] == 'e' || rest[i] == 'E') {
		j := i + 1
		if j < len(rest) && (rest[j] == '+' || rest[j] == '-') {
			j++
		}
		if j < len(rest) && isDigit(rune(rest[j])) {
			i = digitRun(rest, j)
		}
	}
	return i
}

func digitRun(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

func runLen(rest string, pred func(rune) bool) int {
	i := 0
	for i < len(rest) {
		r, size := utf8.DecodeRuneInString(rest[i:])
		if !pred(r) {
			break
		}
		i += size
	}
	return i
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isWordStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// cursor tracks line, column and byte offset while consuming text. base is
// the byte offset of text's first byte in the enclosing input.
type cursor struct {
	text string
	pos  int
	line int
	col  int
	base int
}

func (c *cursor) position() token.Position {
	return token.Position{Line: c.line, Column: c.col, Offset: c.base + c.pos}
}

func (c *cursor) advance(n int) {
	end := c.pos + n
	for c.pos < end {
		r, size := utf8.DecodeRuneInString(c.text[c.pos:])
		c.pos += size
		switch r {
		case '\n':
			c.line++
			c.col = 1
		case '\r':
			if c.pos < len(c.text) && c.text[c.pos] == '\n' {
				continue
			}
			c.line++
			c.col = 1
		default:
			c.col++
		}
	}
}
