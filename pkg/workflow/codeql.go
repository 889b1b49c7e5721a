package workflow

import (
	"bytes"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/githubnext/codeql-perms/pkg/constants"
	"github.com/githubnext/codeql-perms/pkg/logger"
	"github.com/githubnext/codeql-perms/pkg/parser"
)

var codeqlLog = logger.New("workflow:codeql")

// analyzeJob is a job identified as running CodeQL analyze, together with its
// definition so permission checks don't re-walk the tree.
type analyzeJob struct {
	name string
	def  yaml.MapSlice
}

// IsCodeQLAnalyzeStep reports whether a step invokes the CodeQL analyze
// action. Matching is by substring so version and ref suffixes like "@v3"
// qualify; other codeql-action entry points (init, upload-sarif) do not.
func IsCodeQLAnalyzeStep(step any) bool {
	stepMap, ok := parser.Mapping(step)
	if !ok {
		return false
	}
	uses, ok := parser.LookupString(stepMap, "uses")
	if !ok {
		return false
	}
	return strings.Contains(uses, constants.CodeQLAnalyzeActionMarker)
}

// collectAnalyzeJobs walks the jobs mapping in document order and returns
// every job with at least one CodeQL analyze step. The first matching step
// settles a job; later matches in the same job are irrelevant. Wrong-shape
// job definitions and step lists are skipped, never errors.
func collectAnalyzeJobs(jobs yaml.MapSlice) []analyzeJob {
	var found []analyzeJob
	for _, item := range jobs {
		name, ok := parser.StringValue(item.Key)
		if !ok {
			continue
		}
		def, ok := parser.Mapping(item.Value)
		if !ok {
			continue
		}
		steps, ok := parser.LookupSequence(def, "steps")
		if !ok {
			continue
		}
		for _, step := range steps {
			if IsCodeQLAnalyzeStep(step) {
				codeqlLog.Printf("Job %q runs CodeQL analyze", name)
				found = append(found, analyzeJob{name: name, def: def})
				break
			}
		}
	}
	return found
}

// ContainsCodeQLAnalyzeText reports whether the raw workflow text contains
// the CodeQL analyze marker. This is a plain substring scan, independent of
// the structured validation: it also matches occurrences in comments or
// disabled steps, and is used only for the report's workflow counter.
func ContainsCodeQLAnalyzeText(content []byte) bool {
	return bytes.Contains(content, []byte(constants.CodeQLAnalyzeActionMarker))
}
