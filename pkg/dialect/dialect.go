// Package dialect provides SQL dialect configuration for lexical scanning.
//
// This package contains the public contract for dialect definitions used by
// the scanner, splitter and classifier. Concrete dialect presets are
// registered from pkg/dialects/*/ packages. A dialect is pure data: quoting
// conventions, comment delimiters, separators and a keyword set. Profiles
// are immutable after Build and safe for concurrent use by any number of
// parse calls.
package dialect

import (
	"fmt"
	"sort"
	"strings"
)

// EscapeMode describes how a closing quote character is escaped inside a
// quoted region.
type EscapeMode int

const (
	// EscapeDoubling treats two consecutive closers as one literal closer
	// ('O''Reilly').
	EscapeDoubling EscapeMode = iota
	// EscapeBackslash treats a backslash plus exactly one following
	// character as a literal pair ('O\'Reilly').
	EscapeBackslash
	// EscapeNone recognizes no escape sequence; the first closer ends the
	// region.
	EscapeNone
)

// String returns the string representation of the escape mode.
func (m EscapeMode) String() string {
	switch m {
	case EscapeDoubling:
		return "doubling"
	case EscapeBackslash:
		return "backslash"
	case EscapeNone:
		return "none"
	default:
		return "unknown"
	}
}

// QuoteStyle describes one quoting convention: an opener, a closer, and how
// the closer is escaped inside the region.
type QuoteStyle struct {
	Open   string
	Close  string
	Escape EscapeMode
}

// BlockCommentStyle describes one block comment convention.
type BlockCommentStyle struct {
	Open     string
	Close    string
	Nestable bool
}

// CandidateKind classifies what a delimiter match in Normal mode means.
type CandidateKind int

const (
	// CandidateQuote opens a string literal.
	CandidateQuote CandidateKind = iota
	// CandidateIdentQuote opens a quoted identifier.
	CandidateIdentQuote
	// CandidateLineComment opens a line comment.
	CandidateLineComment
	// CandidateBlockComment opens a block comment.
	CandidateBlockComment
	// CandidateDollarQuote is the '$' that may start a dollar-quoted string.
	CandidateDollarQuote
	// CandidateBatch is the batch separator (significant only on its own line).
	CandidateBatch
	// CandidateSeparator is the statement separator.
	CandidateSeparator
)

// Candidate is one entry in a profile's precompiled delimiter table.
// Exactly one of Quote or Block is set for quote and block comment kinds.
type Candidate struct {
	Text  string
	Kind  CandidateKind
	Quote *QuoteStyle
	Block *BlockCommentStyle
}

// Profile is an immutable, declarative description of a dialect's lexical
// conventions. Construct profiles with NewBuilder or Standard; shared
// read-only across all parse calls.
type Profile struct {
	Name string

	QuoteStyles      []QuoteStyle
	IdentQuoteStyles []QuoteStyle

	// DollarQuotes enables PostgreSQL-style $tag$...$tag$ literals.
	DollarQuotes bool

	LineCommentPrefixes []string
	BlockComments       []BlockCommentStyle

	// StatementSeparator splits statements when scanned in Normal mode.
	// Usually ";" but multi-character separators are supported (MySQL
	// DELIMITER command conventions).
	StatementSeparator string

	// BatchSeparator, when non-empty, splits statements when it occupies a
	// line of its own (e.g. "GO"). Matched case-insensitively.
	BatchSeparator string

	// CaseSensitiveIdentifiers controls keyword matching in the classifier.
	CaseSensitiveIdentifiers bool

	keywords   map[string]struct{}
	candidates []Candidate
}

// Match returns the longest delimiter candidate matching a prefix of rest.
// Ties are broken by category priority (quotes, identifier quotes, line
// comments, block comments, dollar quotes, batch separator, statement
// separator), then by declaration order. Batch separators match
// case-insensitively.
func (p *Profile) Match(rest string) (Candidate, bool) {
	for _, c := range p.candidates {
		if c.Kind == CandidateBatch {
			if len(rest) >= len(c.Text) && strings.EqualFold(rest[:len(c.Text)], c.Text) {
				return c, true
			}
			continue
		}
		if strings.HasPrefix(rest, c.Text) {
			return c, true
		}
	}
	return Candidate{}, false
}

// Candidates returns the profile's delimiter table in match order.
func (p *Profile) Candidates() []Candidate {
	out := make([]Candidate, len(p.candidates))
	copy(out, p.candidates)
	return out
}

// NormalizeName normalizes an identifier according to the profile's
// case-sensitivity rule.
func (p *Profile) NormalizeName(name string) string {
	if p.CaseSensitiveIdentifiers {
		return name
	}
	return strings.ToLower(name)
}

// IsKeyword reports whether word is in the profile's keyword set.
func (p *Profile) IsKeyword(word string) bool {
	_, ok := p.keywords[p.NormalizeName(word)]
	return ok
}

// Keywords returns the profile's keyword set, sorted.
func (p *Profile) Keywords() []string {
	kws := make([]string, 0, len(p.keywords))
	for kw := range p.keywords {
		kws = append(kws, kw)
	}
	sort.Strings(kws)
	return kws
}

// ConfigError reports two declared delimiters that are ambiguous without an
// explicit priority order (textually identical across categories).
// It is the only validation failure that blocks use of a profile.
type ConfigError struct {
	Dialect   string
	Delimiter string
	First     string // category of the first declaration
	Second    string // category of the conflicting declaration
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("dialect %s: delimiter %q declared as both %s and %s",
		e.Dialect, e.Delimiter, e.First, e.Second)
}

// categoryPriority is the fixed tie-break order between delimiter
// categories when two candidates have the same length.
var categoryPriority = map[CandidateKind]int{
	CandidateQuote:        0,
	CandidateIdentQuote:   1,
	CandidateLineComment:  2,
	CandidateBlockComment: 3,
	CandidateDollarQuote:  4,
	CandidateBatch:        5,
	CandidateSeparator:    6,
}

// categoryName names a candidate kind for ConfigError messages.
func categoryName(k CandidateKind) string {
	switch k {
	case CandidateQuote:
		return "string quote"
	case CandidateIdentQuote:
		return "identifier quote"
	case CandidateLineComment:
		return "line comment"
	case CandidateBlockComment:
		return "block comment"
	case CandidateDollarQuote:
		return "dollar quote"
	case CandidateBatch:
		return "batch separator"
	case CandidateSeparator:
		return "statement separator"
	default:
		return "delimiter"
	}
}

// compile builds the sorted candidate table and checks for ambiguous
// delimiter declarations.
func (p *Profile) compile() error {
	var cands []Candidate
	for i := range p.QuoteStyles {
		cands = append(cands, Candidate{
			Text:  p.QuoteStyles[i].Open,
			Kind:  CandidateQuote,
			Quote: &p.QuoteStyles[i],
		})
	}
	for i := range p.IdentQuoteStyles {
		cands = append(cands, Candidate{
			Text:  p.IdentQuoteStyles[i].Open,
			Kind:  CandidateIdentQuote,
			Quote: &p.IdentQuoteStyles[i],
		})
	}
	for _, prefix := range p.LineCommentPrefixes {
		cands = append(cands, Candidate{Text: prefix, Kind: CandidateLineComment})
	}
	for i := range p.BlockComments {
		cands = append(cands, Candidate{
			Text:  p.BlockComments[i].Open,
			Kind:  CandidateBlockComment,
			Block: &p.BlockComments[i],
		})
	}
	if p.DollarQuotes {
		cands = append(cands, Candidate{Text: "$", Kind: CandidateDollarQuote})
	}
	if p.BatchSeparator != "" {
		cands = append(cands, Candidate{Text: p.BatchSeparator, Kind: CandidateBatch})
	}
	cands = append(cands, Candidate{Text: p.StatementSeparator, Kind: CandidateSeparator})

	// Identical delimiter text in two categories has no longest-match
	// resolution; reject at construction.
	seen := make(map[string]CandidateKind, len(cands))
	for _, c := range cands {
		key := strings.ToLower(c.Text)
		if prev, dup := seen[key]; dup {
			return &ConfigError{
				Dialect:   p.Name,
				Delimiter: c.Text,
				First:     categoryName(prev),
				Second:    categoryName(c.Kind),
			}
		}
		seen[key] = c.Kind
	}

	// Longest match first; category priority then declaration order break
	// ties. SliceStable preserves declaration order within a category.
	sort.SliceStable(cands, func(i, j int) bool {
		if len(cands[i].Text) != len(cands[j].Text) {
			return len(cands[i].Text) > len(cands[j].Text)
		}
		return categoryPriority[cands[i].Kind] < categoryPriority[cands[j].Kind]
	})

	p.candidates = cands
	return nil
}
