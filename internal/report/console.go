package report

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// WriteConsole prints the totals and skip breakdown as tables. Terminals get
// rounded borders, other writers plain ASCII.
func (r *Report) WriteConsole(w io.Writer) error {
	style := table.StyleDefault
	if isTerminal(w) {
		style = table.StyleRounded
	}

	out := renderTable([]string{"Metric", "Count"}, r.Totals(), style)

	if skips := r.SkipRows(); len(skips) > 0 {
		out += "\n" + renderTable([]string{"Skip reason", "Count"}, skips, style)
	}

	_, err := fmt.Fprintf(w, "%s\nWrote JSON to: %s\n", out, r.Output)

	return err
}

func renderTable(headers []string, rows [][]string, style table.Style) string {
	tw := table.NewWriter()
	tw.SetStyle(style)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
