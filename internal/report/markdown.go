package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"casecorpus/pkg/metadata"
)

// Markdown renders the report as a markdown document with aligned tables.
func (r *Report) Markdown() string {
	var sb strings.Builder

	sb.WriteString("# Case collection report\n\n")
	fmt.Fprintf(&sb, "Dataset: `%s`\n\n", r.Output)

	sb.WriteString("## Totals\n\n")
	sb.WriteString(strings.Join(markdownTable([]string{"Metric", "Count"}, r.Totals()), "\n"))
	sb.WriteString("\n")

	if skips := r.SkipRows(); len(skips) > 0 {
		sb.WriteString("\n## Skipped cases\n\n")
		sb.WriteString(strings.Join(markdownTable([]string{"Reason", "Count"}, skips), "\n"))
		sb.WriteString("\n")
	}

	return sb.String()
}

// WriteMarkdown signs the markdown report with the hash of the written dataset
// and saves it to path.
func (r *Report) WriteMarkdown(path string, dataset []byte, generatedAt time.Time) error {
	signed := metadata.Sign(r.Markdown(), metadata.Metadata{
		GeneratedAt: generatedAt,
		Dataset:     r.Output,
		DatasetHash: metadata.HashBytes(dataset),
	})

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating report directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(signed+"\n"), 0644); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	return nil
}

// markdownTable lays out a header, separator and rows padded to the display
// width of each column. Columns are at least three cells wide.
func markdownTable(headers []string, rows [][]string) []string {
	colCount := len(headers)
	widths := make([]int, colCount)

	all := append([][]string{headers}, rows...)
	for _, row := range all {
		for i := 0; i < len(row) && i < colCount; i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	separator := make([]string, colCount)
	for i, w := range widths {
		separator[i] = strings.Repeat("-", w)
	}

	lines := []string{markdownRow(headers, widths), markdownRow(separator, widths)}
	for _, row := range rows {
		lines = append(lines, markdownRow(row, widths))
	}

	return lines
}

func markdownRow(cells []string, widths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for i, width := range widths {
		content := ""
		if i < len(cells) {
			content = cells[i]
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		if padding := width - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
