//go:build !integration

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanWorkflow = `name: CodeQL
on: push
jobs:
  scan:
    runs-on: ubuntu-latest
    permissions:
      security-events: write
      contents: read
    steps:
      - uses: actions/checkout@v4
      - uses: github/codeql-action/analyze@v3
`

const plainWorkflow = `name: CI
on: push
jobs:
  build:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - run: make test
`

const badWorkflow = `name: CodeQL
on: push
permissions:
  security-events: write
jobs:
  scan:
    runs-on: ubuntu-latest
    steps:
      - uses: github/codeql-action/analyze@v3
`

const brokenWorkflow = "jobs:\n  foo: [unclosed\n"

// commentedWorkflow only mentions the analyze action in a comment: the
// raw-text counter flags it, the structured validation does not.
const commentedWorkflow = `name: CI
on: push
# TODO: enable github/codeql-action/analyze here
jobs:
  build:
    steps:
      - run: make test
`

// setupRepo creates a temp repository with a .github/workflows directory
// containing the given files and returns the repo root.
func setupRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	workflowDir := filepath.Join(root, ".github", "workflows")
	require.NoError(t, os.MkdirAll(workflowDir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(workflowDir, name), []byte(content), 0o644))
	}
	return root
}

func lintRepo(t *testing.T, root string, config LintConfig) *LintResult {
	t.Helper()
	dir, err := ResolveWorkflowDir(root, "")
	require.NoError(t, err)
	config.RepoRoot = root
	config.WorkflowDir = dir
	result, err := LintWorkflows(config)
	require.NoError(t, err)
	return result
}

func TestLintWorkflowsCleanRepo(t *testing.T) {
	root := setupRepo(t, map[string]string{
		"codeql.yml": cleanWorkflow,
		"ci.yml":     plainWorkflow,
	})

	result := lintRepo(t, root, LintConfig{})

	assert.Equal(t, 2, result.TotalFiles)
	assert.Equal(t, 1, result.CodeQLWorkflows)
	assert.Equal(t, 0, result.TotalViolations)

	// Sorted by path, relative to the repo root.
	require.Len(t, result.Files, 2)
	assert.Equal(t, filepath.Join(".github", "workflows", "ci.yml"), result.Files[0].Path)
	assert.Equal(t, filepath.Join(".github", "workflows", "codeql.yml"), result.Files[1].Path)
	assert.True(t, result.Files[1].ContainsCodeQL)
	assert.True(t, result.Files[1].Valid)
}

func TestLintWorkflowsViolations(t *testing.T) {
	root := setupRepo(t, map[string]string{
		"bad.yml": badWorkflow,
	})

	result := lintRepo(t, root, LintConfig{})

	assert.Equal(t, 1, result.CodeQLWorkflows)
	assert.Equal(t, 2, result.TotalViolations)
	require.Len(t, result.Files, 1)
	require.Len(t, result.Files[0].Violations, 2)
	assert.Contains(t, result.Files[0].Violations[0], "Root-level permissions")
	assert.Equal(t, "Job 'scan' uses CodeQL analyze but lacks 'security-events' permission",
		result.Files[0].Violations[1])
}

func TestLintWorkflowsParseFailureIsPerFile(t *testing.T) {
	root := setupRepo(t, map[string]string{
		"broken.yml": brokenWorkflow,
		"codeql.yml": cleanWorkflow,
	})

	result := lintRepo(t, root, LintConfig{})

	assert.Equal(t, 2, result.TotalFiles, "a parse failure does not abort the run")
	assert.Equal(t, 1, result.TotalViolations)
	require.Len(t, result.Files, 2)
	require.Len(t, result.Files[0].Violations, 1)
	assert.Contains(t, result.Files[0].Violations[0], "Failed to parse YAML:")
	assert.True(t, result.Files[1].Valid)
}

func TestLintWorkflowsRawTextCounterDiverges(t *testing.T) {
	root := setupRepo(t, map[string]string{
		"commented.yml": commentedWorkflow,
	})

	result := lintRepo(t, root, LintConfig{})

	// The counter sees the marker in the comment; validation finds nothing.
	assert.Equal(t, 1, result.CodeQLWorkflows)
	assert.Equal(t, 0, result.TotalViolations)
	assert.True(t, result.Files[0].ContainsCodeQL)
	assert.True(t, result.Files[0].Valid)
}

func TestLintWorkflowsFailFast(t *testing.T) {
	root := setupRepo(t, map[string]string{
		"a-bad.yml":  badWorkflow,
		"z-also.yml": badWorkflow,
	})

	result := lintRepo(t, root, LintConfig{FailFast: true})

	assert.Equal(t, 1, result.TotalFiles, "fail-fast stops after the first violating file")
	assert.Equal(t, 2, result.TotalViolations)
}

func TestResolveWorkflowDirDefault(t *testing.T) {
	root := setupRepo(t, map[string]string{"ci.yml": plainWorkflow})

	dir, err := ResolveWorkflowDir(root, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".github", "workflows"), dir)
}

func TestResolveWorkflowDirMissing(t *testing.T) {
	root := t.TempDir()

	_, err := ResolveWorkflowDir(root, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workflows directory not found")
}

func TestResolveWorkflowDirRelativeOverride(t *testing.T) {
	root := t.TempDir()
	custom := filepath.Join(root, "ci", "workflows")
	require.NoError(t, os.MkdirAll(custom, 0o755))

	dir, err := ResolveWorkflowDir(root, filepath.Join("ci", "workflows"))
	require.NoError(t, err)
	assert.Equal(t, custom, dir)
}

func TestLintWorkflowsEmptyDirectory(t *testing.T) {
	root := setupRepo(t, map[string]string{})

	result := lintRepo(t, root, LintConfig{})

	assert.Equal(t, 0, result.TotalFiles)
	assert.Equal(t, 0, result.TotalViolations)
}
