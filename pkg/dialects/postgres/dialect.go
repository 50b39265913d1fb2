// Package postgres provides the PostgreSQL dialect profile.
// This package is pure Go with no database driver dependencies, making it
// suitable for tools that need dialect information without the overhead of
// database connections.
package postgres

import (
	"github.com/leapstack-labs/loosesql/pkg/dialect"
)

func init() {
	dialect.Register(Postgres)
}

// postgresKeywords contains PostgreSQL reserved words beyond the ANSI
// baseline. This is a manually maintained list of frequently seen words;
// for a complete list use pg_get_keywords() at runtime.
var postgresKeywords = []string{
	"analyse", "analyze", "array", "asymmetric", "authorization", "binary",
	"both", "concurrently", "current_catalog", "current_role",
	"current_schema", "current_user", "deferrable", "do", "freeze",
	"ilike", "initially", "isnull", "leading", "localtime",
	"localtimestamp", "notnull", "only", "overlaps", "placing",
	"returning", "session_user", "similar", "symmetric", "tablesample",
	"trailing", "user", "variadic", "verbose",
}

// Postgres is the PostgreSQL profile. It extends the ANSI baseline with
// dollar quoting ($tag$...$tag$) and nestable block comments, per the
// PostgreSQL lexical rules
// (https://www.postgresql.org/docs/current/sql-syntax-lexical.html).
var Postgres = dialect.NewBuilder("postgres").
	QuoteStyle("'", "'", dialect.EscapeDoubling).
	IdentifierQuoteStyle(`"`, `"`, dialect.EscapeDoubling).
	LineComments("--").
	BlockComment("/*", "*/", true).
	DollarQuotes().
	WithKeywords(dialect.ANSIKeywords...).
	WithKeywords(postgresKeywords...).
	MustBuild()
