// This file implements the CodeQL permission rule: jobs running
// github/codeql-action/analyze must be granted security-events: write at job
// scope, and the workflow root must not carry that grant for them.
//
// Root-level security-events: write hands the permission to every job in the
// workflow, so when any job runs CodeQL analyze the grant has to move down to
// the jobs that need it (least privilege).

package workflow

import (
	"fmt"

	"github.com/githubnext/codeql-perms/pkg/constants"
	"github.com/githubnext/codeql-perms/pkg/logger"
	"github.com/githubnext/codeql-perms/pkg/parser"
)

var permissionsLog = logger.New("workflow:permissions_validation")

// ValidationResult is the outcome of validating one workflow document.
// Valid is true exactly when Violations is empty. Violations are ordered:
// the root-level finding first, then per-job findings in document order.
type ValidationResult struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations,omitempty"`
}

const rootPermissionsViolation = "Root-level permissions include 'security-events: write'. " +
	"This permission should be defined at the job-level for jobs using CodeQL analyze."

// ValidateCodeQLPermissions checks a parsed workflow document against the
// CodeQL permission rule. It is a pure function over the decoded YAML tree:
// no I/O, no mutation of the input, identical results on repeated calls.
//
// Wrong-shape values anywhere in the tree are treated as absent rather than
// reported; the only findings are the enumerated policy violations.
func ValidateCodeQLPermissions(doc any) ValidationResult {
	var violations []string

	root, ok := parser.Mapping(doc)
	if !ok {
		// Empty or non-mapping document: nothing to check.
		return ValidationResult{Valid: true}
	}

	jobs, ok := parser.LookupMapping(root, "jobs")
	if !ok {
		// No jobs means no job can misuse CodeQL.
		return ValidationResult{Valid: true}
	}

	analyzeJobs := collectAnalyzeJobs(jobs)
	if len(analyzeJobs) == 0 {
		permissionsLog.Print("No CodeQL analyze jobs, rule not applicable")
		return ValidationResult{Valid: true}
	}
	permissionsLog.Printf("Checking permissions for %d CodeQL analyze jobs", len(analyzeJobs))

	// Root-level grant is flagged once, regardless of how many analyze jobs
	// exist or whether their own configuration is correct.
	if rootPerms, ok := parser.LookupMapping(root, "permissions"); ok {
		if value, found := parser.Lookup(rootPerms, constants.SecurityEventsPermission); found {
			if s, ok := parser.StringValue(value); ok && s == constants.PermissionWrite {
				violations = append(violations, rootPermissionsViolation)
			}
		}
	}

	for _, job := range analyzeJobs {
		if v := validateJobPermissions(job); v != "" {
			violations = append(violations, v)
		}
	}

	return ValidationResult{Valid: len(violations) == 0, Violations: violations}
}

// validateJobPermissions checks one analyze job's permission block and
// returns the violation message, or "" when the job is correctly configured.
func validateJobPermissions(job analyzeJob) string {
	permsValue, found := parser.Lookup(job.def, "permissions")
	if !found {
		// An absent permissions block and a block without the key read the
		// same way: the job never received the grant.
		return fmt.Sprintf("Job '%s' uses CodeQL analyze but lacks '%s' permission",
			job.name, constants.SecurityEventsPermission)
	}

	perms, ok := parser.Mapping(permsValue)
	if !ok {
		return fmt.Sprintf("Job '%s' does not have proper permissions configuration", job.name)
	}

	value, found := parser.Lookup(perms, constants.SecurityEventsPermission)
	if !found {
		return fmt.Sprintf("Job '%s' uses CodeQL analyze but lacks '%s' permission",
			job.name, constants.SecurityEventsPermission)
	}

	if s, ok := parser.StringValue(value); !ok || s != constants.PermissionWrite {
		return fmt.Sprintf("Job '%s' has '%s: %v' but should be '%s: %s'",
			job.name, constants.SecurityEventsPermission, value,
			constants.SecurityEventsPermission, constants.PermissionWrite)
	}

	return ""
}
