package splitter

import (
	"fmt"

	"github.com/leapstack-labs/loosesql/pkg/scanner"
	"github.com/leapstack-labs/loosesql/pkg/token"
)

// DiagnosticKind identifies the construct a diagnostic reports on.
type DiagnosticKind int

const (
	// UnterminatedQuote is a string literal or quoted identifier still
	// open at end of input.
	UnterminatedQuote DiagnosticKind = iota
	// UnterminatedComment is a block comment still open at end of input.
	UnterminatedComment
	// UnterminatedDollarQuote is a dollar-quoted region whose closing
	// delimiter never appeared.
	UnterminatedDollarQuote
	// UnterminatedBatch is a trailing non-empty batch that was never
	// closed by the dialect's batch separator.
	UnterminatedBatch
)

// String returns the string representation of the diagnostic kind.
func (k DiagnosticKind) String() string {
	switch k {
	case UnterminatedQuote:
		return "unterminated quote"
	case UnterminatedComment:
		return "unterminated comment"
	case UnterminatedDollarQuote:
		return "unterminated dollar quote"
	case UnterminatedBatch:
		return "unterminated batch"
	default:
		return "unknown"
	}
}

// Diagnostic is an advisory finding attached to a split result. Diagnostics
// never abort a split; the result they accompany is always complete and
// best-effort. Pos is where the offending construct began.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind"`
	Pos     token.Position `json:"pos"`
	Dialect string         `json:"dialect"`
}

// String returns a human-readable one-line rendering of the diagnostic.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at %s (dialect %s)", d.Kind, d.Pos, d.Dialect)
}

// MarshalJSON renders Kind as its string form.
func (k DiagnosticKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// diagnosticForMode maps a lexical mode left open at end of input to its
// diagnostic. Line comments are complete at end of input and produce none.
func diagnosticForMode(m scanner.Mode, dialectName string) (Diagnostic, bool) {
	var kind DiagnosticKind
	switch m.Kind {
	case scanner.ModeQuoted, scanner.ModeIdentQuoted:
		kind = UnterminatedQuote
	case scanner.ModeBlockComment:
		kind = UnterminatedComment
	case scanner.ModeDollarQuoted:
		kind = UnterminatedDollarQuote
	default:
		return Diagnostic{}, false
	}
	return Diagnostic{Kind: kind, Pos: m.Start, Dialect: dialectName}, true
}
