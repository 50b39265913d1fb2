package dialect

// ANSIKeywords is the shared ANSI keyword baseline used by the presets.
// Presets add their dialect-specific reserved words on top of this list.
var ANSIKeywords = []string{
	"all", "and", "any", "as", "asc", "between", "by", "case", "cast",
	"check", "collate", "column", "constraint", "create", "cross",
	"current", "current_date", "current_time", "current_timestamp",
	"default", "delete", "desc", "distinct", "drop", "else", "end",
	"except", "exists", "false", "fetch", "filter", "first", "following",
	"for", "foreign", "from", "full", "grant", "group", "having", "in",
	"inner", "insert", "intersect", "into", "is", "join", "last",
	"lateral", "left", "like", "limit", "merge", "natural", "not", "null",
	"nulls", "offset", "on", "or", "order", "outer", "over", "partition",
	"preceding", "primary", "range", "recursive", "references", "revoke",
	"right", "row", "rows", "select", "set", "some", "table", "then",
	"to", "true", "unbounded", "union", "unique", "update", "using",
	"values", "when", "where", "window", "with", "within",
}
