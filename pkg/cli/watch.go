package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/githubnext/codeql-perms/pkg/console"
	"github.com/githubnext/codeql-perms/pkg/constants"
	"github.com/githubnext/codeql-perms/pkg/logger"
)

var watchLog = logger.New("cli:watch")

// watchDebounce batches rapid filesystem events (editors typically fire
// several per save) into a single re-lint.
const watchDebounce = 300 * time.Millisecond

// WatchWorkflows lints the workflow directory, then re-lints whenever a
// workflow file changes, until ctx is cancelled. Violations are reported in
// each pass but never terminate the watch; the return value is nil on clean
// shutdown.
func WatchWorkflows(ctx context.Context, w io.Writer, config LintConfig) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(config.WorkflowDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", config.WorkflowDir, err)
	}

	runPass := func() {
		result, err := LintWorkflows(config)
		if err != nil {
			fmt.Fprintln(w, console.FormatErrorMessage(err.Error()))
			return
		}
		if err := PrintReport(w, result, config); err != nil {
			fmt.Fprintln(w, console.FormatErrorMessage(err.Error()))
		}
	}

	runPass()
	fmt.Fprintln(w, console.FormatInfoMessage("Watching for workflow changes (Ctrl+C to stop)..."))

	// The timer is kept stopped until an interesting event arrives.
	debounce := time.NewTimer(watchDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			watchLog.Print("Watch cancelled")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isWorkflowFileEvent(event) {
				continue
			}
			watchLog.Printf("Workflow change: %s %s", event.Op, event.Name)
			debounce.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(w, console.FormatWarningMessage(fmt.Sprintf("watch error: %v", err)))
		case <-debounce.C:
			fmt.Fprintln(w)
			runPass()
		}
	}
}

// isWorkflowFileEvent filters watcher events down to content changes of
// workflow files.
func isWorkflowFileEvent(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename) {
		return false
	}
	return slices.Contains(constants.WorkflowFileExtensions, filepath.Ext(event.Name))
}
