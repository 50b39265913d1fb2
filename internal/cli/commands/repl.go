package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/loosesql/internal/cli/output"
	"github.com/leapstack-labs/loosesql/pkg/dialect"
	"github.com/leapstack-labs/loosesql/pkg/splitter"
)

const (
	replPrompt     = "loosesql> "
	replContPrompt = "     ...> "
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively split and inspect SQL statements",
		Long: `Start an interactive session that splits input into statements as you
type. A statement is inspected as soon as its separator arrives; incomplete
input (an open quote, comment, dollar-quoted region or missing separator)
keeps the continuation prompt open.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runREPL(cmd, cmdCtx)
		},
	}
}

type replState struct {
	profile    *dialect.Profile
	showTokens bool
	buffer     strings.Builder
}

func runREPL(cmd *cobra.Command, cmdCtx *CommandContext) error {
	// Project-local history file
	historyFile := filepath.Join(cmdCtx.Cfg.ProjectRoot, ".loosesql_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	r := cmdCtx.Renderer
	r.Printf("loosesql REPL (dialect: %s)\n", cmdCtx.Profile.Name)
	r.Println("Type .help for commands, .quit to exit")
	r.Println("")

	state := &replState{profile: cmdCtx.Profile, showTokens: cmdCtx.Cfg.Classify}

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			state.buffer.Reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if state.buffer.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ".") {
			if quit := runDotCommand(r, state, strings.TrimSpace(line)); quit {
				break
			}
			continue
		}

		state.buffer.WriteString(line)
		state.buffer.WriteString("\n")

		pending, err := inspectComplete(r, state)
		if err != nil {
			r.Println(output.Styles.Error.Render("error: " + err.Error()))
			state.buffer.Reset()
			pending = false
		}
		if pending {
			rl.SetPrompt(replContPrompt)
		} else {
			rl.SetPrompt(replPrompt)
		}
	}
	return nil
}

// inspectComplete splits the buffered input, reports every statement that
// has received its separator, and keeps the unterminated tail buffered.
// It returns whether input is still pending.
func inspectComplete(r *output.Renderer, state *replState) (bool, error) {
	text := state.buffer.String()
	res, err := splitter.Split(text, state.profile, splitter.Options{ClassifyTokens: true})
	if err != nil {
		return false, err
	}

	var tail string
	for i := range res.Statements {
		st := &res.Statements[i]
		if st.Terminator.Kind == splitter.TerminatorEOF {
			tail = st.Raw
			break
		}
		if !st.IsEmpty() {
			inspectStatement(r, state, st)
		}
	}

	state.buffer.Reset()
	if strings.TrimSpace(tail) == "" {
		return false, nil
	}
	state.buffer.WriteString(tail)
	return true, nil
}

func inspectStatement(r *output.Renderer, state *replState, st *splitter.Statement) {
	kind := "command"
	if st.IsQuery() {
		kind = "query"
	}
	r.Printf("%s %s\n",
		output.Styles.Header2.Render(kind),
		output.Styles.Muted.Render(fmt.Sprintf("(%d tokens, %s .. %s)",
			len(st.Tokens), st.Span.Start, st.Span.End)))
	if kws := st.Keywords(); len(kws) > 0 {
		r.Printf("  keywords: %s\n", strings.Join(kws, " "))
	}
	if state.showTokens {
		_ = tokensTable(r, st.Tokens)
	}
}

func runDotCommand(r *output.Renderer, state *replState, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ".quit", ".exit":
		return true
	case ".help":
		printREPLHelp(r)
	case ".clear":
		state.buffer.Reset()
		r.Println("buffer cleared")
	case ".dialect":
		if len(fields) < 2 {
			r.Printf("dialect: %s (registered: %s)\n",
				state.profile.Name, strings.Join(dialect.List(), ", "))
			break
		}
		p, ok := dialect.Get(fields[1])
		if !ok {
			r.Println(output.Styles.Error.Render(fmt.Sprintf(
				"unknown dialect %q (registered: %s)", fields[1], strings.Join(dialect.List(), ", "))))
			break
		}
		state.profile = p
		r.Printf("dialect set to %s\n", p.Name)
	case ".tokens":
		if len(fields) >= 2 {
			state.showTokens = fields[1] == "on"
		} else {
			state.showTokens = !state.showTokens
		}
		if state.showTokens {
			r.Println("token tables on")
		} else {
			r.Println("token tables off")
		}
	default:
		r.Println(output.Styles.Error.Render("unknown command " + fields[0] + " (try .help)"))
	}
	return false
}

func printREPLHelp(r *output.Renderer) {
	r.Println(`Commands:
  .dialect [name]   Show or switch the active dialect
  .tokens [on|off]  Toggle per-statement token tables
  .clear            Discard buffered input
  .help             Show this help
  .quit             Exit the REPL

Statements end at the dialect's separator; incomplete input (open quotes,
comments, dollar-quoted regions) keeps the continuation prompt open.`)
}

func newREPLCompleter() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem(".help"),
		readline.PcItem(".clear"),
		readline.PcItem(".tokens",
			readline.PcItem("on"),
			readline.PcItem("off"),
		),
		readline.PcItem(".quit"),
	}
	var dialectItems []readline.PrefixCompleterInterface
	for _, name := range dialect.List() {
		dialectItems = append(dialectItems, readline.PcItem(name))
	}
	items = append(items, readline.PcItem(".dialect", dialectItems...))
	return readline.NewPrefixCompleter(items...)
}
