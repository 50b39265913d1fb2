package output

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable writes rows as a bordered table in text mode or a pipe table
// in markdown mode.
func RenderTable(w io.Writer, mode Mode, header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, c := range r {
			row[i] = c
		}
		t.AppendRow(row)
	}

	if mode == ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}
