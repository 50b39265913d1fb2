package scanner

import (
	"github.com/leapstack-labs/loosesql/pkg/dialect"
	"github.com/leapstack-labs/loosesql/pkg/token"
)

// ModeKind identifies the scanner's lexical interpretation context.
type ModeKind int

const (
	// ModeNormal is ordinary statement text.
	ModeNormal ModeKind = iota
	// ModeQuoted is the inside of a string literal.
	ModeQuoted
	// ModeIdentQuoted is the inside of a quoted identifier.
	ModeIdentQuoted
	// ModeDollarQuoted is the inside of a $tag$...$tag$ literal.
	ModeDollarQuoted
	// ModeLineComment is the inside of a line comment.
	ModeLineComment
	// ModeBlockComment is the inside of a block comment.
	ModeBlockComment
)

// String returns the string representation of the mode kind.
func (k ModeKind) String() string {
	switch k {
	case ModeNormal:
		return "normal"
	case ModeQuoted:
		return "quoted"
	case ModeIdentQuoted:
		return "identifier-quoted"
	case ModeDollarQuoted:
		return "dollar-quoted"
	case ModeLineComment:
		return "line-comment"
	case ModeBlockComment:
		return "block-comment"
	default:
		return "unknown"
	}
}

// Mode is the scanner's tagged lexical state: exactly one mode is active at
// any scan position. The payload fields describe the construct being
// scanned; Start is where it was entered, which is where a diagnostic is
// anchored if end of input arrives first.
type Mode struct {
	Kind  ModeKind
	Quote *dialect.QuoteStyle        // ModeQuoted, ModeIdentQuoted
	Tag   string                     // ModeDollarQuoted: full delimiter, e.g. "$tag$"
	Block *dialect.BlockCommentStyle // ModeBlockComment
	Depth int                        // ModeBlockComment nesting depth
	Start token.Position
}

// IsNormal reports whether the mode is ModeNormal.
func (m Mode) IsNormal() bool {
	return m.Kind == ModeNormal
}
