package splitter

import (
	"strings"

	"github.com/leapstack-labs/loosesql/pkg/classifier"
	"github.com/leapstack-labs/loosesql/pkg/dialect"
	"github.com/leapstack-labs/loosesql/pkg/token"
)

// TerminatorKind identifies what closed a statement span.
type TerminatorKind int

const (
	// TerminatorSeparator is the dialect's statement separator.
	TerminatorSeparator TerminatorKind = iota
	// TerminatorBatch is the dialect's batch separator on its own line.
	TerminatorBatch
	// TerminatorEOF is end of input with no separator.
	TerminatorEOF
)

// String returns the string representation of the terminator kind.
func (k TerminatorKind) String() string {
	switch k {
	case TerminatorSeparator:
		return "separator"
	case TerminatorBatch:
		return "batch"
	case TerminatorEOF:
		return "eof"
	default:
		return "unknown"
	}
}

// MarshalJSON renders Kind as its string form.
func (k TerminatorKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// Terminator records what closed a statement span. Text is the separator
// text as it appeared in the input, empty for TerminatorEOF; Span covers it.
type Terminator struct {
	Kind TerminatorKind `json:"kind"`
	Text string         `json:"text,omitempty"`
	Span token.Span     `json:"span"`
}

// Statement is one statement span. Raw is the input text of the span,
// exactly as written, excluding the terminator; concatenating every
// statement's Raw with its Terminator.Text in order reproduces the input.
type Statement struct {
	Raw        string        `json:"raw"`
	Span       token.Span    `json:"span"`
	Terminator Terminator    `json:"terminator"`
	Tokens     []token.Token `json:"tokens,omitempty"`

	profile *dialect.Profile
}

// SQL returns the statement text with surrounding whitespace trimmed.
func (s *Statement) SQL() string {
	return strings.TrimSpace(s.Raw)
}

// IsEmpty reports whether the statement contains nothing but comments and
// whitespace.
func (s *Statement) IsEmpty() bool {
	for _, t := range s.classified() {
		if t.Kind != token.Comment && t.Kind != token.Whitespace {
			return false
		}
	}
	return true
}

// Keywords returns the texts of the statement's top-level word tokens:
// runs of ASCII letters outside any parenthesized group. Words inside
// subqueries or CTE bodies are behind parentheses and excluded.
func (s *Statement) Keywords() []string {
	var words []string
	depth := 0
	for _, t := range s.classified() {
		switch t.Kind {
		case token.Punct:
			switch t.Text {
			case "(":
				depth++
			case ")":
				if depth > 0 {
					depth--
				}
			}
		case token.Keyword, token.Identifier:
			if depth == 0 && isASCIIAlpha(t.Text) {
				words = append(words, t.Text)
			}
		}
	}
	return words
}

// IsQuery reports whether the statement produces a result set rather than
// acting as a command. Queries are SELECT (except SELECT ... INTO), SHOW,
// DESCRIBE, EXPLAIN, VALUES, LIST, PRAGMA, WITH ... SELECT, and
// INSERT/UPDATE/DELETE with a RETURNING clause.
func (s *Statement) IsQuery() bool {
	words := s.Keywords()
	if len(words) == 0 {
		return false
	}
	first := strings.ToUpper(words[0])
	switch first {
	case "SHOW", "DESCRIBE", "EXPLAIN", "VALUES", "LIST", "PRAGMA":
		return true
	case "WITH":
		return containsWord(words, "SELECT")
	case "INSERT", "UPDATE", "DELETE":
		return containsWord(words, "RETURNING")
	case "SELECT":
		return !containsWord(words, "INTO")
	}
	return false
}

// classified returns the statement's tokens, running classification on
// demand when the split did not request it.
func (s *Statement) classified() []token.Token {
	if s.Tokens != nil {
		return s.Tokens
	}
	return classifier.Classify(s.Raw, s.Span.Start, s.profile)
}

func containsWord(words []string, upper string) bool {
	for _, w := range words {
		if strings.ToUpper(w) == upper {
			return true
		}
	}
	return false
}

func isASCIIAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
