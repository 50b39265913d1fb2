package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/loosesql/internal/cli/output"
	"github.com/leapstack-labs/loosesql/pkg/splitter"
	"github.com/leapstack-labs/loosesql/pkg/token"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file...]",
		Short: "Classify SQL text into tokens",
		Long: `Split SQL text into statements and tile each statement into classified
tokens under the configured dialect.

Reads the named files, or stdin when no files are given. Within a statement
the tokens cover its text exactly: concatenating their texts reproduces it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			opts := splitter.Options{
				SkipEmpty:      cmdCtx.Cfg.SkipEmpty,
				ClassifyTokens: true,
			}
			res, err := splitter.Split(input, cmdCtx.Profile, opts)
			if err != nil {
				return err
			}

			r := cmdCtx.Renderer
			if r.EffectiveMode() == output.ModeJSON {
				enc := json.NewEncoder(r.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			for i := range res.Statements {
				st := &res.Statements[i]
				label := fmt.Sprintf("Statement %d", i+1)
				meta := fmt.Sprintf("%s .. %s", st.Span.Start, st.Span.End)
				r.Println(output.Styles.Header2.Render(label), output.Styles.Muted.Render("("+meta+")"))
				if err := tokensTable(r, st.Tokens); err != nil {
					return err
				}
				r.Println("")
			}
			return nil
		},
	}
}

func tokensTable(r *output.Renderer, tokens []token.Token) error {
	rows := make([][]string, 0, len(tokens))
	for _, tk := range tokens {
		if tk.Kind == token.Whitespace {
			continue
		}
		rows = append(rows, []string{
			tk.Kind.String(),
			fmt.Sprintf("%s .. %s", tk.Span.Start, tk.Span.End),
			tk.Text,
		})
	}
	output.RenderTable(r.Writer(), r.EffectiveMode(), []string{"Kind", "Span", "Text"}, rows)
	r.Printf("(%d tokens, whitespace omitted)\n", len(rows))
	return nil
}
