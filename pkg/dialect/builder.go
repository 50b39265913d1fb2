package dialect

import "fmt"

// Builder provides a fluent API for constructing dialect profiles.
type Builder struct {
	profile  *Profile
	keywords []string
}

// NewBuilder creates an empty builder with the given dialect name.
// The statement separator defaults to ";".
func NewBuilder(name string) *Builder {
	return &Builder{
		profile: &Profile{
			Name:               name,
			StatementSeparator: ";",
		},
	}
}

// Standard creates a builder preloaded with the ANSI lexical baseline:
// single-quoted strings and double-quoted identifiers with doubling escapes,
// "--" line comments, non-nesting "/* */" block comments and ";" as the
// statement separator. Presets layer dialect-specific rules on top.
func Standard(name string) *Builder {
	return NewBuilder(name).
		QuoteStyle("'", "'", EscapeDoubling).
		IdentifierQuoteStyle(`"`, `"`, EscapeDoubling).
		LineComments("--").
		BlockComment("/*", "*/", false)
}

// QuoteStyle adds a string literal quoting convention.
func (b *Builder) QuoteStyle(open, end string, escape EscapeMode) *Builder {
	b.profile.QuoteStyles = append(b.profile.QuoteStyles, QuoteStyle{
		Open:   open,
		Close:  end,
		Escape: escape,
	})
	return b
}

// IdentifierQuoteStyle adds a quoted identifier convention.
func (b *Builder) IdentifierQuoteStyle(open, end string, escape EscapeMode) *Builder {
	b.profile.IdentQuoteStyles = append(b.profile.IdentQuoteStyles, QuoteStyle{
		Open:   open,
		Close:  end,
		Escape: escape,
	})
	return b
}

// LineComments adds line comment prefixes.
func (b *Builder) LineComments(prefixes ...string) *Builder {
	b.profile.LineCommentPrefixes = append(b.profile.LineCommentPrefixes, prefixes...)
	return b
}

// BlockComment adds a block comment convention.
func (b *Builder) BlockComment(open, end string, nestable bool) *Builder {
	b.profile.BlockComments = append(b.profile.BlockComments, BlockCommentStyle{
		Open:     open,
		Close:    end,
		Nestable: nestable,
	})
	return b
}

// StatementSeparator sets the statement separator (default ";").
func (b *Builder) StatementSeparator(sep string) *Builder {
	b.profile.StatementSeparator = sep
	return b
}

// BatchSeparator sets the batch separator recognized on its own line
// (e.g. "GO"). Empty means no batch separator.
func (b *Builder) BatchSeparator(sep string) *Builder {
	b.profile.BatchSeparator = sep
	return b
}

// DollarQuotes enables PostgreSQL-style dollar quoting.
func (b *Builder) DollarQuotes() *Builder {
	b.profile.DollarQuotes = true
	return b
}

// CaseSensitiveIdentifiers makes keyword matching case-sensitive.
func (b *Builder) CaseSensitiveIdentifiers() *Builder {
	b.profile.CaseSensitiveIdentifiers = true
	return b
}

// WithKeywords registers keywords for the classifier's keyword/identifier
// distinction. Names are normalized at Build time, so the call order of
// WithKeywords and CaseSensitiveIdentifiers does not matter.
func (b *Builder) WithKeywords(kws ...string) *Builder {
	b.keywords = append(b.keywords, kws...)
	return b
}

// Build validates the configuration and returns the constructed profile.
// It returns a *ConfigError when two declared delimiters are textually
// identical across categories, or a plain error for structurally invalid
// declarations (empty delimiter text).
func (b *Builder) Build() (*Profile, error) {
	p := b.profile
	if p.StatementSeparator == "" {
		return nil, fmt.Errorf("dialect %s: statement separator must not be empty", p.Name)
	}
	for _, q := range p.QuoteStyles {
		if q.Open == "" || q.Close == "" {
			return nil, fmt.Errorf("dialect %s: quote style delimiters must not be empty", p.Name)
		}
	}
	for _, q := range p.IdentQuoteStyles {
		if q.Open == "" || q.Close == "" {
			return nil, fmt.Errorf("dialect %s: identifier quote delimiters must not be empty", p.Name)
		}
	}
	for _, prefix := range p.LineCommentPrefixes {
		if prefix == "" {
			return nil, fmt.Errorf("dialect %s: line comment prefix must not be empty", p.Name)
		}
	}
	for _, bc := range p.BlockComments {
		if bc.Open == "" || bc.Close == "" {
			return nil, fmt.Errorf("dialect %s: block comment delimiters must not be empty", p.Name)
		}
	}
	p.keywords = make(map[string]struct{}, len(b.keywords))
	for _, kw := range b.keywords {
		p.keywords[p.NormalizeName(kw)] = struct{}{}
	}
	if err := p.compile(); err != nil {
		return nil, err
	}
	return p, nil
}

// MustBuild is like Build but panics on error. Intended for preset
// registration in init() functions, where the configuration is static.
func (b *Builder) MustBuild() *Profile {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}
