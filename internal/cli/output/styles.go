package output

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by text-mode output.
var Styles = struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style

	Keyword    lipgloss.Style
	Literal    lipgloss.Style
	Comment    lipgloss.Style
	Diagnostic lipgloss.Style
}{
	Header1: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Underline(true),
	Header2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
	Bold:    lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),

	Keyword:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
	Literal:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	Comment:    lipgloss.NewStyle().Faint(true),
	Diagnostic: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}
