// Package constants defines shared constants for the CodeQL permission linter.
package constants

import "path/filepath"

// CodeQLAnalyzeActionMarker is the substring that identifies a CodeQL analyze
// action reference. Substring matching tolerates version and ref suffixes
// such as "github/codeql-action/analyze@v3".
const CodeQLAnalyzeActionMarker = "github/codeql-action/analyze"

// SecurityEventsPermission is the permission required to upload static
// analysis results to GitHub code scanning.
const SecurityEventsPermission = "security-events"

// PermissionWrite is the permission level required for security-events on
// CodeQL analyze jobs.
const PermissionWrite = "write"

// WorkflowFileExtensions lists the file extensions considered workflow files.
var WorkflowFileExtensions = []string{".yml", ".yaml"}

// GetWorkflowDir returns the path of the GitHub workflows directory relative
// to the repository root.
func GetWorkflowDir() string {
	return filepath.Join(".github", "workflows")
}
