// Package mysql provides the MySQL dialect profile.
package mysql

import (
	"github.com/leapstack-labs/loosesql/pkg/dialect"
)

func init() {
	dialect.Register(MySQL)
}

// mysqlKeywords contains MySQL reserved words beyond the ANSI baseline.
var mysqlKeywords = []string{
	"accessible", "auto_increment", "before", "bigint", "blob", "both",
	"change", "condition", "database", "databases", "dec", "declare",
	"delayed", "describe", "div", "dual", "each", "elseif", "enclosed",
	"escaped", "explain", "force", "fulltext", "high_priority",
	"if", "ignore", "index", "infile", "keys", "kill", "leave", "load",
	"lock", "longblob", "longtext", "low_priority", "mediumblob",
	"mediumtext", "modifies", "no_write_to_binlog", "optimize", "option",
	"optionally", "out", "outfile", "purge", "read", "reads", "regexp",
	"rename", "repeat", "replace", "require", "rlike", "schema",
	"schemas", "separator", "show", "spatial", "sql", "sqlexception",
	"sqlstate", "sqlwarning", "ssl", "starting", "straight_join",
	"terminated", "tinyblob", "tinytext", "trigger", "undo", "unlock",
	"unsigned", "usage", "use", "varbinary", "varcharacter", "while",
	"write", "xor", "zerofill",
}

// MySQL is the MySQL profile. Without the ANSI_QUOTES SQL mode, double
// quotes delimit string literals (not identifiers), backticks delimit
// identifiers, backslash escapes are recognized in strings, and "#" opens a
// line comment in addition to "--".
var MySQL = dialect.NewBuilder("mysql").
	QuoteStyle("'", "'", dialect.EscapeBackslash).
	QuoteStyle(`"`, `"`, dialect.EscapeBackslash).
	IdentifierQuoteStyle("`", "`", dialect.EscapeDoubling).
	LineComments("--", "#").
	BlockComment("/*", "*/", false).
	WithKeywords(dialect.ANSIKeywords...).
	WithKeywords(mysqlKeywords...).
	MustBuild()
