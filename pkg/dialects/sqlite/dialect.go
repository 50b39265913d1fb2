// Package sqlite provides the SQLite dialect profile.
package sqlite

import (
	"github.com/leapstack-labs/loosesql/pkg/dialect"
)

func init() {
	dialect.Register(SQLite)
}

// sqliteKeywords contains SQLite reserved words beyond the ANSI baseline.
var sqliteKeywords = []string{
	"abort", "action", "add", "after", "alter", "always", "analyze",
	"attach", "autoincrement", "before", "begin", "cascade", "commit",
	"conflict", "database", "deferred", "detach", "each", "exclude",
	"exclusive", "explain", "fail", "generated", "glob", "if", "ignore",
	"immediate", "index", "indexed", "initially", "instead", "isnull",
	"key", "match", "materialized", "no", "nothing", "notnull", "of",
	"plan", "pragma", "query", "raise", "regexp", "reindex", "release",
	"rename", "replace", "restrict", "returning", "rollback", "savepoint",
	"temp", "temporary", "transaction", "trigger", "vacuum", "view",
	"virtual", "without",
}

// SQLite is the SQLite profile. SQLite accepts MySQL-style backticks and
// SQL Server-style brackets for identifiers in addition to the ANSI double
// quote.
var SQLite = dialect.Standard("sqlite").
	IdentifierQuoteStyle("`", "`", dialect.EscapeDoubling).
	IdentifierQuoteStyle("[", "]", dialect.EscapeNone).
	WithKeywords(dialect.ANSIKeywords...).
	WithKeywords(sqliteKeywords...).
	MustBuild()
