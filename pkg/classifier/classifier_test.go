package classifier_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/loosesql/pkg/classifier"
	"github.com/leapstack-labs/loosesql/pkg/dialect"
	"github.com/leapstack-labs/loosesql/pkg/dialects/ansi"
	"github.com/leapstack-labs/loosesql/pkg/token"

	mysqlDialect "github.com/leapstack-labs/loosesql/pkg/dialects/mysql"
	postgresDialect "github.com/leapstack-labs/loosesql/pkg/dialects/postgres"
	sqlserverDialect "github.com/leapstack-labs/loosesql/pkg/dialects/sqlserver"
)

var origin = token.Position{Line: 1, Column: 1, Offset: 0}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func texts(tokens []token.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func TestClassifyBasicStatement(t *testing.T) {
	tokens := classifier.Classify("SELECT id FROM users", origin, ansi.ANSI)

	assert.Equal(t, []string{"SELECT", " ", "id", " ", "FROM", " ", "users"}, texts(tokens))
	assert.Equal(t, []token.Kind{
		token.Keyword, token.Whitespace, token.Identifier, token.Whitespace,
		token.Keyword, token.Whitespace, token.Identifier,
	}, kinds(tokens))
}

func TestClassifyTilesExactly(t *testing.T) {
	inputs := []string{
		"",
		"SELECT 'O''Reilly', \"col\", 1.5e-3 FROM t -- done",
		"a<=b AND c||d::text->>'k'",
		"/* block */ $$dq$$ # mysql comment\n'x\\'y'",
		"SELECT 'héllo', déjà FROM tablé;",
		"'unterminated",
	}
	profiles := []*dialect.Profile{ansi.ANSI, mysqlDialect.MySQL, postgresDialect.Postgres, sqlserverDialect.SQLServer}

	for _, p := range profiles {
		for _, input := range inputs {
			tokens := classifier.Classify(input, origin, p)
			var sb strings.Builder
			prevEnd := 0
			for _, tk := range tokens {
				sb.WriteString(tk.Text)
				assert.Equal(t, prevEnd, tk.Span.Start.Offset, "gap in %q under %s", input, p.Name)
				assert.Equal(t, tk.Span.Start.Offset+len(tk.Text), tk.Span.End.Offset)
				prevEnd = tk.Span.End.Offset
			}
			assert.Equal(t, input, sb.String(), "dialect %s", p.Name)
		}
	}
}

func TestClassifyLiterals(t *testing.T) {
	tokens := classifier.Classify(`'O''Reilly' "Employee #"`, origin, ansi.ANSI)
	require.Len(t, tokens, 3)

	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "'O''Reilly'", tokens[0].Text)
	assert.Equal(t, token.Identifier, tokens[2].Kind)
	assert.Equal(t, `"Employee #"`, tokens[2].Text)
}

func TestClassifyDollarQuote(t *testing.T) {
	tokens := classifier.Classify("$fn$ body; $fn$", origin, postgresDialect.Postgres)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.String, tokens[0].Kind)

	// Without dollar quoting, '$' is punctuation and the rest is words.
	tokens = classifier.Classify("$tag$", origin, ansi.ANSI)
	assert.Equal(t, []string{"$", "tag", "$"}, texts(tokens))
	assert.Equal(t, token.Punct, tokens[0].Kind)
}

func TestClassifyComments(t *testing.T) {
	tokens := classifier.Classify("1 -- trailing\n2 /* mid */ 3", origin, ansi.ANSI)
	assert.Equal(t, []string{"1", " ", "-- trailing", "\n", "2", " ", "/* mid */", " ", "3"}, texts(tokens))
	assert.Equal(t, token.Comment, tokens[2].Kind)
	assert.Equal(t, token.Whitespace, tokens[3].Kind)
	assert.Equal(t, token.Comment, tokens[6].Kind)

	tokens = classifier.Classify("# to end of line", origin, mysqlDialect.MySQL)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.Comment, tokens[0].Kind)
}

func TestClassifyNumbers(t *testing.T) {
	tests := []struct {
		input string
		first string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{"1e10", "1e10"},
		{"2.5E-3", "2.5E-3"},
		{"6e+7x", "6e+7"},
		{"10.", "10."},
		{"1e", "1"}, // bare exponent marker is not part of the number
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := classifier.Classify(tt.input, origin, ansi.ANSI)
			require.NotEmpty(t, tokens)
			assert.Equal(t, token.Number, tokens[0].Kind)
			assert.Equal(t, tt.first, tokens[0].Text)
		})
	}
}

func TestClassifyOperators(t *testing.T) {
	tokens := classifier.Classify("a<=b<>c->>d::e", origin, ansi.ANSI)
	assert.Equal(t, []string{"a", "<=", "b", "<>", "c", "->>", "d", "::", "e"}, texts(tokens))
	for i := 1; i < len(tokens); i += 2 {
		assert.Equal(t, token.Operator, tokens[i].Kind)
	}
}

func TestClassifyPunctuation(t *testing.T) {
	tokens := classifier.Classify("f(a, b);", origin, ansi.ANSI)
	assert.Equal(t, []string{"f", "(", "a", ",", " ", "b", ")", ";"}, texts(tokens))
	for _, i := range []int{1, 3, 6, 7} {
		assert.Equal(t, token.Punct, tokens[i].Kind, "token %d", i)
	}
}

func TestClassifyKeywordCase(t *testing.T) {
	tokens := classifier.Classify("select Select SELECT sel", origin, ansi.ANSI)
	assert.Equal(t, token.Keyword, tokens[0].Kind)
	assert.Equal(t, token.Keyword, tokens[2].Kind)
	assert.Equal(t, token.Keyword, tokens[4].Kind)
	assert.Equal(t, token.Identifier, tokens[6].Kind)
}

func TestClassifyBracketIdentifier(t *testing.T) {
	tokens := classifier.Classify("[Order Details].[Unit Price]", origin, sqlserverDialect.SQLServer)
	assert.Equal(t, []string{"[Order Details]", ".", "[Unit Price]"}, texts(tokens))
	assert.Equal(t, token.Identifier, tokens[0].Kind)
	assert.Equal(t, token.Punct, tokens[1].Kind)
}

func TestClassifyBasePosition(t *testing.T) {
	base := token.Position{Line: 3, Column: 5, Offset: 40}
	tokens := classifier.Classify("a\nb", base, ansi.ANSI)
	require.Len(t, tokens, 3)

	assert.Equal(t, 40, tokens[0].Span.Start.Offset)
	assert.Equal(t, 3, tokens[0].Span.Start.Line)
	assert.Equal(t, 5, tokens[0].Span.Start.Column)

	assert.Equal(t, 42, tokens[2].Span.Start.Offset)
	assert.Equal(t, 4, tokens[2].Span.Start.Line)
	assert.Equal(t, 1, tokens[2].Span.Start.Column)
}
