package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/loosesql/internal/cli/output"
	"github.com/leapstack-labs/loosesql/pkg/splitter"
)

// NewSplitCommand creates the split command.
func NewSplitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "split [file...]",
		Short: "Split SQL text into statements",
		Long: `Split SQL text into statements under the configured dialect.

Reads the named files, or stdin when no files are given. Statement
separators inside string literals, comments and dollar-quoted regions never
split. Unterminated constructs are reported as diagnostics and never abort
the split.`,
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
				ClassifyTokens: cmdCtx.Cfg.Classify,
			}
			res, err := splitter.Split(input, cmdCtx.Profile, opts)
			if err != nil {
				return err
			}

			cmdCtx.Logger.Debug("split complete",
				"dialect", cmdCtx.Profile.Name,
				"statements", len(res.Statements),
				"diagnostics", len(res.Diagnostics))

			r := cmdCtx.Renderer
			switch r.EffectiveMode() {
			case output.ModeJSON:
				return splitJSON(r, res)
			case output.ModeMarkdown:
				return splitMarkdown(r, res)
			default:
				return splitText(r, res)
			}
		},
	}
}

func splitText(r *output.Renderer, res *splitter.Result) error {
	for i := range res.Statements {
		st := &res.Statements[i]
		label := fmt.Sprintf("Statement %d", i+1)
		meta := fmt.Sprintf("%s .. %s, terminated by %s",
			st.Span.Start, st.Span.End, st.Terminator.Kind)
		r.Println(output.Styles.Header2.Render(label), output.Styles.Muted.Render("("+meta+")"))
		if st.IsEmpty() {
			r.Println(output.Styles.Muted.Render("(empty)"))
		} else {
			r.Println(st.SQL())
		}
		r.Println("")
	}

	for _, d := range res.Diagnostics {
		_, _ = fmt.Fprintln(r.ErrWriter(), output.Styles.Diagnostic.Render("warning: "+d.String()))
	}
	return nil
}

func splitMarkdown(r *output.Renderer, res *splitter.Result) error {
	r.Println(output.FormatHeader(1, fmt.Sprintf("Statements (%d total)", len(res.Statements))))
	r.Println("")

	for i := range res.Statements {
		st := &res.Statements[i]
		r.Println(output.FormatHeader(2, fmt.Sprintf("Statement %d", i+1)))
		r.Println(output.FormatKeyValue("Span", fmt.Sprintf("%s .. %s", st.Span.Start, st.Span.End)))
		r.Println(output.FormatKeyValue("Terminator", st.Terminator.Kind.String()))
		r.Println(output.FormatKeyValue("Query", fmt.Sprintf("%v", st.IsQuery())))
		r.Println("")
		r.Println("```sql")
		r.Println(st.SQL())
		r.Println("```")
		r.Println("")
	}

	if len(res.Diagnostics) > 0 {
		r.Println(output.FormatHeader(2, "Diagnostics"))
		for _, d := range res.Diagnostics {
			r.Println("- " + d.String())
		}
	}
	return nil
}

func splitJSON(r *output.Renderer, res *splitter.Result) error {
	enc := json.NewEncoder(r.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
