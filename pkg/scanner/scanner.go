// Package scanner implements a dialect-aware lexical mode machine over raw
// SQL text. It performs a single forward pass, never backtracks, and emits
// an event at every statement boundary that is active under the current
// mode: separators and batch separators inside quotes or comments are plain
// text and produce no event.
//
// The scanner validates nothing. Malformed SQL, unterminated constructs and
// unknown syntax all scan to end of input; the final event carries whatever
// mode was still open so callers can report it.
package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/loosesql/pkg/dialect"
	"github.com/leapstack-labs/loosesql/pkg/token"
)

// EventKind identifies a boundary event.
type EventKind int

const (
	// EventSeparator is an active statement separator.
	EventSeparator EventKind = iota
	// EventBatch is an active batch separator on a line of its own.
	EventBatch
	// EventEOF is the end of input. It is the last event the scanner
	// emits and carries the mode that was still open, if any.
	EventEOF
)

// String returns the string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSeparator:
		return "separator"
	case EventBatch:
		return "batch"
	case EventEOF:
		return "eof"
	default:
		return "unknown"
	}
}

// Event is a statement boundary found during the scan. Span covers the
// separator text itself; for EventEOF it is the empty span at end of input
// and Open is the lexical mode left unterminated (normal when the input
// ended cleanly).
type Event struct {
	Kind EventKind
	Span token.Span
	Open Mode
}

// Scanner walks input once, left to right, tracking line, column and byte
// offset. It is not safe for concurrent use.
type Scanner struct {
	input   string
	profile *dialect.Profile

	pos       int
	line      int
	col       int
	lineStart int // byte offset of the current line's first byte

	mode Mode
}

// New returns a scanner over input using the delimiter set of profile.
func New(input string, profile *dialect.Profile) *Scanner {
	return &Scanner{
		input:   input,
		profile: profile,
		line:    1,
		col:     1,
		mode:    Mode{Kind: ModeNormal},
	}
}

// Pos returns the position of the next byte to be scanned.
func (s *Scanner) Pos() token.Position {
	return token.Position{Line: s.line, Column: s.col, Offset: s.pos}
}

// Mode returns the current lexical mode. After Next has returned EventEOF
// this is always the normal mode; the unterminated construct, if any, is in
// the event's Open field.
func (s *Scanner) Mode() Mode {
	return s.mode
}

// Next scans forward to the next boundary event. After the input is
// exhausted it returns EventEOF on every call.
func (s *Scanner) Next() Event {
	for s.pos < len(s.input) {
		rest := s.input[s.pos:]
		cand, ok := s.profile.Match(rest)
		if !ok {
			s.advanceRune()
			continue
		}
		switch cand.Kind {
		case dialect.CandidateSeparator:
			start := s.Pos()
			s.advance(len(cand.Text))
			return Event{Kind: EventSeparator, Span: token.Span{Start: start, End: s.Pos()}}

		case dialect.CandidateBatch:
			if !s.batchOnOwnLine(len(cand.Text)) {
				s.advanceRune()
				continue
			}
			start := s.Pos()
			s.advance(len(cand.Text))
			return Event{Kind: EventBatch, Span: token.Span{Start: start, End: s.Pos()}}

		case dialect.CandidateQuote, dialect.CandidateIdentQuote:
			start := s.Pos()
			end, terminated := EndOfQuoted(s.input, s.pos, cand.Quote)
			s.advance(end - s.pos)
			if !terminated {
				kind := ModeQuoted
				if cand.Kind == dialect.CandidateIdentQuote {
					kind = ModeIdentQuoted
				}
				s.mode = Mode{Kind: kind, Quote: cand.Quote, Start: start}
			}

		case dialect.CandidateLineComment:
			// The terminator stays outside the comment and is
			// scanned as ordinary whitespace afterwards. A comment
			// running to end of input is complete, not open.
			end := EndOfLineComment(s.input, s.pos)
			s.advance(end - s.pos)

		case dialect.CandidateBlockComment:
			start := s.Pos()
			end, terminated := EndOfBlockComment(s.input, s.pos, cand.Block)
			s.advance(end - s.pos)
			if !terminated {
				s.mode = Mode{Kind: ModeBlockComment, Block: cand.Block, Depth: 1, Start: start}
			}

		case dialect.CandidateDollarQuote:
			tag, isOpener := DollarTag(s.input, s.pos)
			if !isOpener {
				s.advanceRune()
				continue
			}
			start := s.Pos()
			end, terminated := EndOfDollarQuoted(s.input, s.pos, tag)
			s.advance(end - s.pos)
			if !terminated {
				s.mode = Mode{Kind: ModeDollarQuoted, Tag: tag, Start: start}
			}
		}
	}

	open := s.mode
	s.mode = Mode{Kind: ModeNormal}
	at := s.Pos()
	return Event{Kind: EventEOF, Span: token.Span{Start: at, End: at}, Open: open}
}

// batchOnOwnLine reports whether the batch separator of byte length n at the
// current position has only whitespace before it on its line and only
// whitespace (or nothing) after it up to the line terminator.
func (s *Scanner) batchOnOwnLine(n int) bool {
	if strings.TrimSpace(s.input[s.lineStart:s.pos]) != "" {
		return false
	}
	i := s.pos + n
	for i < len(s.input) {
		r, size := utf8.DecodeRuneInString(s.input[i:])
		if r == '\n' || r == '\r' {
			break
		}
		if !unicode.IsSpace(r) {
			return false
		}
		i += size
	}
	return true
}

// advance consumes n bytes, updating line and column rune by rune. CR, LF
// and CRLF each count as a single line break.
func (s *Scanner) advance(n int) {
	end := s.pos + n
	for s.pos < end {
		r, size := utf8.DecodeRuneInString(s.input[s.pos:])
		s.pos += size
		switch r {
		case '\n':
			s.line++
			s.col = 1
			s.lineStart = s.pos
		case '\r':
			if s.pos < len(s.input) && s.input[s.pos] == '\n' {
				// CRLF: the LF does the bookkeeping.
				continue
			}
			s.line++
			s.col = 1
			s.lineStart = s.pos
		default:
			s.col++
		}
	}
}

func (s *Scanner) advanceRune() {
	_, size := utf8.DecodeRuneInString(s.input[s.pos:])
	s.advance(size)
}
