// Package splitter turns raw SQL text into an ordered sequence of statement
// spans without validating the SQL. It consumes the scanner's boundary
// events, so separators inside string literals, comments and dollar-quoted
// regions never split. Splitting is a total function over well-encoded
// input: malformed SQL degrades to best-effort spans plus diagnostics, never
// an error.
package splitter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/loosesql/pkg/classifier"
	"github.com/leapstack-labs/loosesql/pkg/dialect"
	"github.com/leapstack-labs/loosesql/pkg/scanner"
	"github.com/leapstack-labs/loosesql/pkg/token"
)

// Options controls a split call.
type Options struct {
	// SkipEmpty suppresses statements whose trimmed text is empty.
	SkipEmpty bool
	// ClassifyTokens tiles every statement into classified tokens,
	// populating Statement.Tokens.
	ClassifyTokens bool
}

// Result is the outcome of one split call. Diagnostics are advisory and may
// be non-empty even though Statements is complete.
type Result struct {
	Statements  []Statement  `json:"statements"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// EncodingError reports input that is not valid UTF-8. It is a precondition
// failure, not a scanning failure: offsets are byte offsets into the input,
// so the split refuses text it cannot address consistently.
type EncodingError struct {
	Offset int
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	return fmt.Sprintf("input is not valid UTF-8 at byte offset %d", e.Offset)
}

// Split scans input under the dialect profile and returns its statements in
// input order. The only errors are an EncodingError for invalid UTF-8 and a
// nil profile; every well-encoded input, however malformed as SQL, yields a
// complete result.
func Split(input string, profile *dialect.Profile, opts Options) (*Result, error) {
	if profile == nil {
		return nil, fmt.Errorf("split: nil dialect profile")
	}
	if off := firstInvalidByte(input); off >= 0 {
		return nil, &EncodingError{Offset: off}
	}

	res := &Result{Statements: []Statement{}}
	sc := scanner.New(input, profile)
	segStart := token.Position{Line: 1, Column: 1, Offset: 0}

	for {
		ev := sc.Next()
		switch ev.Kind {
		case scanner.EventSeparator, scanner.EventBatch:
			kind := TerminatorSeparator
			if ev.Kind == scanner.EventBatch {
				kind = TerminatorBatch
			}
			term := Terminator{
				Kind: kind,
				Text: input[ev.Span.Start.Offset:ev.Span.End.Offset],
				Span: ev.Span,
			}
			res.emit(input, profile, opts, segStart, ev.Span.Start, term)
			segStart = ev.Span.End

		case scanner.EventEOF:
			if d, ok := diagnosticForMode(ev.Open, profile.Name); ok {
				res.Diagnostics = append(res.Diagnostics, d)
			}
			eof := ev.Span.Start
			if profile.BatchSeparator != "" && strings.TrimSpace(input[segStart.Offset:]) != "" {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Kind:    UnterminatedBatch,
					Pos:     segStart,
					Dialect: profile.Name,
				})
			}
			// Nothing follows the final separator: no tail span. Fully
			// empty input still yields its single empty statement.
			if segStart.Offset == len(input) && len(input) > 0 {
				return res, nil
			}
			res.emit(input, profile, opts, segStart, eof, Terminator{
				Kind: TerminatorEOF,
				Span: token.Span{Start: eof, End: eof},
			})
			return res, nil
		}
	}
}

// emit appends the statement covering [start, end), honoring SkipEmpty.
func (r *Result) emit(input string, profile *dialect.Profile, opts Options, start, end token.Position, term Terminator) {
	raw := input[start.Offset:end.Offset]
	if opts.SkipEmpty && strings.TrimSpace(raw) == "" {
		return
	}
	st := Statement{
		Raw:        raw,
		Span:       token.Span{Start: start, End: end},
		Terminator: term,
		profile:    profile,
	}
	if opts.ClassifyTokens {
		st.Tokens = classifier.Classify(raw, start, profile)
	}
	r.Statements = append(r.Statements, st)
}

// firstInvalidByte returns the offset of the first byte that is not part of
// a valid UTF-8 encoding, or -1 if the input is well-formed.
func firstInvalidByte(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
