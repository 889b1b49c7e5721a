package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sourcegraph/conc/iter"

	"github.com/githubnext/codeql-perms/pkg/constants"
	"github.com/githubnext/codeql-perms/pkg/fileutil"
	"github.com/githubnext/codeql-perms/pkg/logger"
	"github.com/githubnext/codeql-perms/pkg/parser"
	"github.com/githubnext/codeql-perms/pkg/workflow"
)

var lintLog = logger.New("cli:lint")

// ErrViolationsFound signals a clean run that found policy violations. The
// report has already been printed when this is returned; it only carries the
// nonzero exit code.
var ErrViolationsFound = errors.New("validation violations found")

// LintConfig configures a lint run.
type LintConfig struct {
	// RepoRoot anchors relative display paths and the default workflow dir.
	RepoRoot string
	// WorkflowDir is the directory scanned for workflow files.
	WorkflowDir string
	JSONOutput  bool
	Verbose     bool
	FailFast    bool
}

// FileReport is the lint outcome for a single workflow file.
type FileReport struct {
	// Path is relative to the repository root when possible.
	Path string `json:"path"`
	// ContainsCodeQL is the raw-text scan result: whether the file's bytes
	// contain the CodeQL analyze marker anywhere, including comments. It is
	// computed independently of the structured validation.
	ContainsCodeQL bool     `json:"contains_codeql"`
	Valid          bool     `json:"valid"`
	Violations     []string `json:"violations,omitempty"`
}

// LintResult aggregates the outcome of linting one workflow directory.
type LintResult struct {
	WorkflowDir     string       `json:"workflow_dir"`
	Files           []FileReport `json:"files"`
	TotalFiles      int          `json:"total_files"`
	CodeQLWorkflows int          `json:"workflows_with_codeql"`
	TotalViolations int          `json:"total_violations"`
}

// ResolveWorkflowDir determines the directory to lint. An empty dirFlag
// selects <repo root>/.github/workflows; a relative dirFlag is anchored at
// the repository root. A missing directory is fatal to the run.
func ResolveWorkflowDir(repoRoot, dirFlag string) (string, error) {
	dir := dirFlag
	switch {
	case dir == "":
		dir = filepath.Join(repoRoot, constants.GetWorkflowDir())
	case !filepath.IsAbs(dir):
		dir = filepath.Join(repoRoot, dir)
	}

	if !fileutil.DirExists(dir) {
		return "", fmt.Errorf("workflows directory not found: %s", dir)
	}
	return dir, nil
}

// LintWorkflows validates every workflow file in the configured directory.
// Per-file problems (unreadable or unparsable files) become violations on
// that file's report; only a missing directory aborts the run. Files are
// processed concurrently but reports stay in sorted path order.
func LintWorkflows(config LintConfig) (*LintResult, error) {
	files, err := fileutil.ListWorkflowFiles(config.WorkflowDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflow files: %w", err)
	}
	lintLog.Printf("Linting %d workflow files in %s", len(files), config.WorkflowDir)

	var reports []FileReport
	if config.FailFast {
		for _, file := range files {
			report := lintFile(config.RepoRoot, file)
			reports = append(reports, report)
			if len(report.Violations) > 0 {
				lintLog.Printf("Stopping at first violating file: %s", report.Path)
				break
			}
		}
	} else {
		reports = iter.Map(files, func(file *string) FileReport {
			return lintFile(config.RepoRoot, *file)
		})
	}

	result := &LintResult{
		WorkflowDir: config.WorkflowDir,
		Files:       reports,
		TotalFiles:  len(reports),
	}
	for _, report := range reports {
		if report.ContainsCodeQL {
			result.CodeQLWorkflows++
		}
		result.TotalViolations += len(report.Violations)
	}
	return result, nil
}

// lintFile validates a single workflow file and never fails: read and parse
// errors are converted to violations attributed to the file.
func lintFile(repoRoot, path string) FileReport {
	report := FileReport{Path: displayPath(repoRoot, path)}

	content, err := os.ReadFile(path)
	if err != nil {
		report.Violations = []string{fmt.Sprintf("Failed to read workflow file: %v", err)}
		return report
	}

	report.ContainsCodeQL = workflow.ContainsCodeQLAnalyzeText(content)

	doc, err := parser.ParseWorkflow(content)
	if err != nil {
		report.Violations = []string{fmt.Sprintf("Failed to parse YAML: %v", err)}
		return report
	}

	result := workflow.ValidateCodeQLPermissions(doc)
	report.Valid = result.Valid
	report.Violations = result.Violations
	return report
}

// displayPath renders a file path relative to the repository root, falling
// back to the path as given when it lies outside the root.
func displayPath(repoRoot, path string) string {
	if repoRoot == "" {
		return path
	}
	rel, err := filepath.Rel(repoRoot, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
