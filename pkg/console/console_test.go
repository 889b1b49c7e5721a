//go:build !integration

package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMessagesPreserveContent(t *testing.T) {
	tests := []struct {
		name   string
		format func(string) string
		marker string
	}{
		{"info", FormatInfoMessage, ""},
		{"success", FormatSuccessMessage, "✓"},
		{"warning", FormatWarningMessage, "!"},
		{"error", FormatErrorMessage, "✗"},
		{"verbose", FormatVerboseMessage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.format("linted 3 workflow files")
			assert.Contains(t, out, "linted 3 workflow files")
			if tt.marker != "" {
				assert.Contains(t, out, tt.marker)
			}
		})
	}
}

func TestRenderTable(t *testing.T) {
	config := TableConfig{
		Title:   "Validation Summary",
		Headers: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Total workflow files", "4"},
			{"Workflows with CodeQL analyze", "2"},
			{"Total violations found", "0"},
		},
	}

	out := RenderTable(config)
	assert.Contains(t, out, "Validation Summary")
	assert.Contains(t, out, "Metric")
	assert.Contains(t, out, "Total workflow files")
	assert.Contains(t, out, "Workflows with CodeQL analyze")

	// Every data row lines up under the header.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.GreaterOrEqual(t, len(lines), 6, "title, header, separator, three rows")
}

func TestRenderTableWithTotal(t *testing.T) {
	config := TableConfig{
		Headers:   []string{"File", "Violations"},
		Rows:      [][]string{{"ci.yml", "1"}, {"codeql.yml", "2"}},
		ShowTotal: true,
		TotalRow:  []string{"TOTAL", "3"},
	}

	out := RenderTable(config)
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "3")
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(TableConfig{}))
}
