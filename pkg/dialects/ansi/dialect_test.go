package ansi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/loosesql/pkg/dialect"
	"github.com/leapstack-labs/loosesql/pkg/dialects/ansi"

	// Import dialect packages to register them
	_ "github.com/leapstack-labs/loosesql/pkg/dialects/mysql"
	_ "github.com/leapstack-labs/loosesql/pkg/dialects/postgres"
	_ "github.com/leapstack-labs/loosesql/pkg/dialects/sqlite"
	_ "github.com/leapstack-labs/loosesql/pkg/dialects/sqlserver"
)

func TestPresetsRegistered(t *testing.T) {
	for _, name := range []string{"ansi", "mysql", "postgres", "sqlite", "sqlserver"} {
		t.Run(name, func(t *testing.T) {
			p, ok := dialect.Get(name)
			require.True(t, ok)
			assert.Equal(t, name, p.Name)
		})
	}
}

func TestANSIBaseline(t *testing.T) {
	assert.Equal(t, ";", ansi.ANSI.StatementSeparator)
	assert.Empty(t, ansi.ANSI.BatchSeparator)
	assert.False(t, ansi.ANSI.DollarQuotes)
	assert.True(t, ansi.ANSI.IsKeyword("SELECT"))
	assert.True(t, ansi.ANSI.IsKeyword("where"))
	assert.False(t, ansi.ANSI.IsKeyword("my_table"))
}

func TestPresetDifferences(t *testing.T) {
	pg, _ := dialect.Get("postgres")
	assert.True(t, pg.DollarQuotes)
	require.NotEmpty(t, pg.BlockComments)
	assert.True(t, pg.BlockComments[0].Nestable)

	my, _ := dialect.Get("mysql")
	assert.Contains(t, my.LineCommentPrefixes, "#")
	require.NotEmpty(t, my.QuoteStyles)
	assert.Equal(t, dialect.EscapeBackslash, my.QuoteStyles[0].Escape)

	ms, _ := dialect.Get("sqlserver")
	assert.Equal(t, "GO", ms.BatchSeparator)

	lite, _ := dialect.Get("sqlite")
	var openers []string
	for _, q := range lite.IdentQuoteStyles {
		openers = append(openers, q.Open)
	}
	assert.Contains(t, openers, "`")
	assert.Contains(t, openers, "[")
}
