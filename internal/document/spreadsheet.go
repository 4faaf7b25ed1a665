package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// spreadsheetConverter renders every non-empty sheet as a markdown table.
type spreadsheetConverter struct{}

func (c *spreadsheetConverter) Convert(ctx context.Context, src Source, ocr bool) (string, error) {
	r, err := src.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src.Name(), err)
	}
	defer r.Close()

	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", sheet)
		b.WriteString(markdownTable(rows))
		b.WriteString("\n")
	}
	return b.String(), nil
}

// markdownTable uses the first row as header. Short rows are padded.
func markdownTable(rows [][]string) string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return ""
	}

	var b strings.Builder
	for i, row := range rows {
		cells := make([]string, width)
		for j := range cells {
			if j < len(row) {
				cells[j] = escapeCell(row[j])
			}
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")

		if i == 0 {
			sep := make([]string, width)
			for j := range sep {
				sep[j] = "---"
			}
			b.WriteString("| " + strings.Join(sep, " | ") + " |\n")
		}
	}
	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
