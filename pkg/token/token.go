// Package token defines the lexical token model shared by the scanner,
// splitter and classifier.
//
// Tokens are plain offset pairs into the caller-owned input; the package
// holds no state and performs no allocation beyond the token values
// themselves.
package token

import "fmt"

// Kind classifies a lexical token.
type Kind int

const (
	// Keyword is an identifier-shaped word found in the dialect's keyword set.
	Keyword Kind = iota
	// Identifier is an unquoted or quoted identifier.
	Identifier
	// String is a quoted or dollar-quoted string literal.
	String
	// Number is a numeric literal (integer, decimal or scientific).
	Number
	// Operator is a recognized single- or multi-character operator.
	Operator
	// Punct is punctuation: parentheses, commas, semicolons and the like.
	Punct
	// Comment is a line or block comment, delimiters included.
	Comment
	// Whitespace is a run of whitespace characters.
	Whitespace
)

// kindNames maps kinds to their string representations.
var kindNames = map[Kind]string{
	Keyword:    "keyword",
	Identifier: "identifier",
	String:     "string",
	Number:     "number",
	Operator:   "operator",
	Punct:      "punct",
	Comment:    "comment",
	Whitespace: "whitespace",
}

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalJSON renders the kind as its string form.
func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// Token is one classified region of a statement's text.
// Within a statement, tokens are ordered, contiguous and tile the
// statement's span with no gaps or overlaps.
type Token struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
	Span Span   `json:"span"`
}
