// Package cli implements the codeql-perms command: it discovers GitHub
// Actions workflow files, runs the CodeQL permission validation over each,
// and renders the report.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/githubnext/codeql-perms/pkg/fileutil"
	"github.com/githubnext/codeql-perms/pkg/logger"
)

var rootLog = logger.New("cli:root")

// NewRootCmd creates the codeql-perms root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codeql-perms",
		Short: "Lint GitHub Actions workflows for CodeQL permission scoping",
		Long: `codeql-perms checks that every workflow job invoking
github/codeql-action/analyze declares 'security-events: write' at job scope,
and that the workflow root does not grant it, following the principle of
least privilege for GitHub Actions permissions.

Without flags, all workflow files under .github/workflows (relative to the
enclosing repository root) are validated. The exit code is 0 when no
violations are found and 1 otherwise.

Examples:
  codeql-perms                      # Validate .github/workflows
  codeql-perms --dir ci/workflows   # Validate a custom directory
  codeql-perms --json               # Machine-readable report
  codeql-perms --watch              # Re-validate on file changes`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			jsonOutput, _ := cmd.Flags().GetBool("json")
			verbose, _ := cmd.Flags().GetBool("verbose")
			failFast, _ := cmd.Flags().GetBool("fail-fast")
			watch, _ := cmd.Flags().GetBool("watch")

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			repoRoot := fileutil.FindRepoRoot(cwd)

			workflowDir, err := ResolveWorkflowDir(repoRoot, dir)
			if err != nil {
				return err
			}

			config := LintConfig{
				RepoRoot:    repoRoot,
				WorkflowDir: workflowDir,
				JSONOutput:  jsonOutput,
				Verbose:     verbose,
				FailFast:    failFast,
			}
			rootLog.Printf("Running lint: dir=%s, json=%v, watch=%v", workflowDir, jsonOutput, watch)

			if watch {
				return WatchWorkflows(cmd.Context(), cmd.OutOrStdout(), config)
			}

			result, err := LintWorkflows(config)
			if err != nil {
				return err
			}
			if err := PrintReport(cmd.OutOrStdout(), result, config); err != nil {
				return err
			}
			if result.TotalViolations > 0 {
				return ErrViolationsFound
			}
			return nil
		},
	}

	cmd.Flags().StringP("dir", "d", "", "Workflow directory (default: .github/workflows)")
	cmd.Flags().BoolP("json", "j", false, "Output results in JSON format")
	cmd.Flags().BoolP("verbose", "v", false, "Show per-file detail for workflows without CodeQL steps")
	cmd.Flags().Bool("fail-fast", false, "Stop at the first workflow file with violations")
	cmd.Flags().BoolP("watch", "w", false, "Watch the workflow directory and re-validate on changes")

	return cmd
}

// Execute runs the root command with signal-aware cancellation, so watch
// mode shuts down cleanly on SIGINT/SIGTERM.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return NewRootCmd().ExecuteContext(ctx)
}
