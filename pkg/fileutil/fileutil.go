// Package fileutil provides file discovery helpers for the linter.
package fileutil

import (
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/githubnext/codeql-perms/pkg/constants"
	"github.com/githubnext/codeql-perms/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ListWorkflowFiles returns the workflow files (.yml and .yaml, non-recursive)
// in dir, sorted by path. The caller is responsible for checking that dir
// exists; a missing directory surfaces as an error.
func ListWorkflowFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if slices.Contains(constants.WorkflowFileExtensions, filepath.Ext(entry.Name())) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)

	log.Printf("Found %d workflow files in %s", len(files), dir)
	return files, nil
}

// FindRepoRoot walks up from start looking for a directory containing .git
// and returns it. If no repository root is found, start is returned, so the
// workflow directory anchor degrades to the working directory.
func FindRepoRoot(start string) string {
	dir := start
	for {
		if DirExists(filepath.Join(dir, ".git")) || FileExists(filepath.Join(dir, ".git")) {
			log.Printf("Repository root: %s", dir)
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			log.Printf("No repository root found above %s, using start directory", start)
			return start
		}
		dir = parent
	}
}
