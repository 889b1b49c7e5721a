package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableConfig describes a table to render to the console.
type TableConfig struct {
	Title     string
	Headers   []string
	Rows      [][]string
	ShowTotal bool
	TotalRow  []string
}

// RenderTable renders a table with padded columns, a bold header row, and an
// optional total row. Column widths are computed from the widest cell,
// ignoring ANSI escape sequences.
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 {
		return ""
	}

	widths := make([]int, len(config.Headers))
	for i, h := range config.Headers {
		widths[i] = lipgloss.Width(h)
	}
	measure := func(row []string) {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	for _, row := range config.Rows {
		measure(row)
	}
	if config.ShowTotal {
		measure(config.TotalRow)
	}

	var output strings.Builder
	if config.Title != "" {
		output.WriteString(headerStyle.Render(config.Title))
		output.WriteString("\n")
	}

	writeRow := func(row []string, style *lipgloss.Style) {
		cells := make([]string, 0, len(row))
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			padded := cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if style != nil {
				padded = style.Render(padded)
			}
			cells = append(cells, padded)
		}
		output.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		output.WriteString("\n")
	}

	writeRow(config.Headers, &headerStyle)
	separator := make([]string, len(config.Headers))
	for i := range separator {
		separator[i] = strings.Repeat("-", widths[i])
	}
	writeRow(separator, nil)

	for _, row := range config.Rows {
		writeRow(row, nil)
	}

	if config.ShowTotal && len(config.TotalRow) > 0 {
		writeRow(separator, nil)
		writeRow(config.TotalRow, &headerStyle)
	}

	return output.String()
}
