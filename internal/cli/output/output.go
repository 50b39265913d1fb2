// Package output provides rendering helpers for CLI commands: an output
// mode resolved from flags and TTY state, styled text output, and markdown
// formatting helpers.
package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Mode is the output format requested by the user.
type Mode string

const (
	// ModeAuto picks text on a terminal and markdown when piped.
	ModeAuto Mode = "auto"
	// ModeText is styled human-readable output.
	ModeText Mode = "text"
	// ModeMarkdown is plain markdown suitable for piping into docs.
	ModeMarkdown Mode = "markdown"
	// ModeJSON is machine-readable JSON.
	ModeJSON Mode = "json"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	mode   Mode
	isTTY  bool
}

// NewRenderer creates a renderer over the command's writers. An empty or
// unknown mode behaves as ModeAuto.
func NewRenderer(stdout, stderr io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON:
	default:
		mode = ModeAuto
	}
	isTTY := false
	if f, ok := stdout.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return &Renderer{stdout: stdout, stderr: stderr, mode: mode, isTTY: isTTY}
}

// EffectiveMode resolves ModeAuto against the terminal state.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// Writer returns the underlying stdout writer, for encoders that need it.
func (r *Renderer) Writer() io.Writer {
	return r.stdout
}

// ErrWriter returns the underlying stderr writer.
func (r *Renderer) ErrWriter() io.Writer {
	return r.stderr
}

// Println writes a line to stdout.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.stdout, a...)
}

// Printf writes formatted output to stdout.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.stdout, format, a...)
}

// Header writes a section header: styled in text mode, "#"-prefixed in
// markdown mode.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeText {
		switch level {
		case 1:
			r.Println(Styles.Header1.Render(text))
		default:
			r.Println(Styles.Header2.Render(text))
		}
		return
	}
	r.Println(FormatHeader(level, text))
}

// FormatHeader formats a markdown header of the given level.
func FormatHeader(level int, text string) string {
	prefix := ""
	for i := 0; i < level; i++ {
		prefix += "#"
	}
	return prefix + " " + text
}

// FormatKeyValue formats a markdown definition line.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("- **%s**: %s", key, value)
}
