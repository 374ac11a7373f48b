package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"veristat/app"
)

// Markdown builds the batch report as a Markdown document: a summary
// block followed by the result table.
func Markdown(title string, header []string, rows [][]string, summary app.BatchSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "- Records: %d (%d verified, %d unverifiable)\n",
		summary.Total, summary.Verified, summary.Unverifiable)
	if summary.Verified > 0 && (summary.Consistent+summary.Regular+summary.Gross) > 0 {
		fmt.Fprintf(&b, "- Consistent: %d, regular inconsistencies: %d, gross inconsistencies: %d\n",
			summary.Consistent, summary.Regular, summary.Gross)
		fmt.Fprintf(&b, "- Median valid-range width: %.5f\n", summary.MedianRangeWidth)
	}
	if summary.GrimPossible+summary.GrimImpossible > 0 {
		fmt.Fprintf(&b, "- GRIM: %d possible, %d impossible\n",
			summary.GrimPossible, summary.GrimImpossible)
	}
	b.WriteString("\n")

	writeMarkdownTable(&b, header, rows)
	return b.String()
}

// ToHTML renders a Markdown report as a standalone HTML fragment
func ToHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}

func writeMarkdownTable(b *strings.Builder, header []string, rows [][]string) {
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(header)) + "\n")
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.ReplaceAll(cell, "|", "\\|")
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
}
