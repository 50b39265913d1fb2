// Package ansi provides the ANSI baseline SQL dialect profile.
// Every other preset layers its dialect-specific lexical rules over this
// configuration.
package ansi

import (
	"github.com/leapstack-labs/loosesql/pkg/dialect"
)

func init() {
	dialect.Register(ANSI)
}

// ANSI is the baseline profile: single-quoted strings and double-quoted
// identifiers with doubling escapes, "--" line comments, non-nesting
// "/* */" block comments, ";" statement separator, no batch separator.
var ANSI = dialect.Standard("ansi").
	WithKeywords(dialect.ANSIKeywords...).
	MustBuild()
