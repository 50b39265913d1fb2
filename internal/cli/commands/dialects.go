package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/loosesql/internal/cli/output"
	"github.com/leapstack-labs/loosesql/pkg/dialect"
)

// dialectInfo is the JSON shape for one registered dialect.
type dialectInfo struct {
	Name               string   `json:"name"`
	StringQuotes       []string `json:"string_quotes"`
	IdentifierQuotes   []string `json:"identifier_quotes"`
	LineComments       []string `json:"line_comments"`
	BlockComments      []string `json:"block_comments"`
	DollarQuotes       bool     `json:"dollar_quotes"`
	StatementSeparator string   `json:"statement_separator"`
	BatchSeparator     string   `json:"batch_separator,omitempty"`
	Keywords           int      `json:"keywords"`
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered dialect profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			infos := make([]dialectInfo, 0, len(dialect.List()))
			for _, name := range dialect.List() {
				p, ok := dialect.Get(name)
				if !ok {
					continue
				}
				infos = append(infos, describeDialect(p))
			}

			r := cmdCtx.Renderer
			if r.EffectiveMode() == output.ModeJSON {
				enc := json.NewEncoder(r.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				sep := info.StatementSeparator
				if info.BatchSeparator != "" {
					sep += ", " + info.BatchSeparator
				}
				rows = append(rows, []string{
					info.Name,
					strings.Join(info.StringQuotes, " "),
					strings.Join(info.IdentifierQuotes, " "),
					strings.Join(append(info.LineComments, info.BlockComments...), " "),
					fmt.Sprintf("%v", info.DollarQuotes),
					sep,
					fmt.Sprintf("%d", info.Keywords),
				})
			}
			output.RenderTable(r.Writer(), r.EffectiveMode(),
				[]string{"Dialect", "Strings", "Identifiers", "Comments", "Dollar", "Separators", "Keywords"}, rows)
			return nil
		},
	}
}

func describeDialect(p *dialect.Profile) dialectInfo {
	info := dialectInfo{
		Name:               p.Name,
		StringQuotes:       []string{},
		IdentifierQuotes:   []string{},
		LineComments:       append([]string{}, p.LineCommentPrefixes...),
		BlockComments:      []string{},
		DollarQuotes:       p.DollarQuotes,
		StatementSeparator: p.StatementSeparator,
		BatchSeparator:     p.BatchSeparator,
		Keywords:           len(p.Keywords()),
	}
	for _, q := range p.QuoteStyles {
		info.StringQuotes = append(info.StringQuotes, q.Open+q.Close)
	}
	for _, q := range p.IdentQuoteStyles {
		info.IdentifierQuotes = append(info.IdentifierQuotes, q.Open+q.Close)
	}
	for _, b := range p.BlockComments {
		style := b.Open + b.Close
		if b.Nestable {
			style += " (nestable)"
		}
		info.BlockComments = append(info.BlockComments, style)
	}
	return info
}
