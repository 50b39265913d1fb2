// Package sqlserver provides the SQL Server (T-SQL) dialect profile.
package sqlserver

import (
	"github.com/leapstack-labs/loosesql/pkg/dialect"
)

func init() {
	dialect.Register(SQLServer)
}

// sqlserverKeywords contains T-SQL reserved words beyond the ANSI baseline.
var sqlserverKeywords = []string{
	"backup", "begin", "break", "browse", "bulk", "checkpoint", "close",
	"clustered", "compute", "contains", "containstable", "continue",
	"cursor", "dbcc", "deallocate", "deny", "disk", "dump", "errlvl",
	"exec", "execute", "exit", "external", "fillfactor", "freetext",
	"freetexttable", "function", "goto", "holdlock", "identity",
	"identity_insert", "identitycol", "if", "index", "kill", "lineno",
	"nocheck", "nonclustered", "off", "offsets", "open", "opendatasource",
	"openquery", "openrowset", "openxml", "option", "percent", "pivot",
	"plan", "print", "proc", "procedure", "public", "raiserror", "read",
	"readtext", "reconfigure", "replication", "restore", "restrict",
	"return", "revert", "rollback", "rowcount", "rowguidcol", "rule",
	"save", "securityaudit", "semantickeyphrasetable", "sessionuser",
	"setuser", "shutdown", "statistics", "textsize", "top", "tran",
	"transaction", "trigger", "truncate", "tsequal", "unpivot",
	"updatetext", "use", "user", "waitfor", "while", "writetext",
}

// SQLServer is the T-SQL profile. It extends the ANSI baseline with
// bracketed identifiers ([name], ]] doubling) and the GO batch separator,
// which splits statements only when it occupies a line of its own.
var SQLServer = dialect.Standard("sqlserver").
	IdentifierQuoteStyle("[", "]", dialect.EscapeDoubling).
	BatchSeparator("GO").
	WithKeywords(dialect.ANSIKeywords...).
	WithKeywords(sqlserverKeywords...).
	MustBuild()
