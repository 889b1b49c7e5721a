package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/githubnext/codeql-perms/pkg/console"
)

// PrintReport writes the lint report to w: the JSON document when JSONOutput
// is set, otherwise the human-readable per-file listing and summary block.
func PrintReport(w io.Writer, result *LintResult, config LintConfig) error {
	if config.JSONOutput {
		return printJSONReport(w, result)
	}
	printHumanReport(w, result, config)
	return nil
}

func printJSONReport(w io.Writer, result *LintResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal lint result: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func printHumanReport(w io.Writer, result *LintResult, config LintConfig) {
	fmt.Fprintln(w, console.FormatInfoMessage(
		fmt.Sprintf("Validating CodeQL permissions in %d workflow files...", result.TotalFiles)))
	fmt.Fprintln(w)

	for _, report := range result.Files {
		if report.ContainsCodeQL {
			fmt.Fprintln(w, console.FormatInfoMessage(report.Path+" (contains CodeQL analyze)"))
		} else {
			fmt.Fprintln(w, report.Path)
		}

		switch {
		case len(report.Violations) > 0:
			for _, violation := range report.Violations {
				fmt.Fprintln(w, "   "+console.FormatErrorMessage(violation))
			}
		case report.ContainsCodeQL:
			fmt.Fprintln(w, "   "+console.FormatSuccessMessage("CodeQL permissions correctly configured"))
		case config.Verbose:
			fmt.Fprintln(w, "   "+console.FormatVerboseMessage("no CodeQL analyze steps"))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprint(w, console.RenderTable(console.TableConfig{
		Title:   "Validation Summary",
		Headers: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Total workflow files", strconv.Itoa(result.TotalFiles)},
			{"Workflows with CodeQL analyze", strconv.Itoa(result.CodeQLWorkflows)},
			{"Total violations found", strconv.Itoa(result.TotalViolations)},
		},
	}))
	fmt.Fprintln(w)

	if result.TotalViolations == 0 {
		fmt.Fprintln(w, console.FormatSuccessMessage("All CodeQL workflows have correct permissions configuration"))
	} else {
		fmt.Fprintln(w, console.FormatErrorMessage(
			fmt.Sprintf("Found %d violation(s) that need to be fixed", result.TotalViolations)))
	}
}
