//go:build !integration

package cli

import (
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
)

func TestIsWorkflowFileEvent(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write to yml", fsnotify.Event{Name: "codeql.yml", Op: fsnotify.Write}, true},
		{"create yaml", fsnotify.Event{Name: "ci.yaml", Op: fsnotify.Create}, true},
		{"remove yml", fsnotify.Event{Name: "old.yml", Op: fsnotify.Remove}, true},
		{"rename yaml", fsnotify.Event{Name: "moved.yaml", Op: fsnotify.Rename}, true},
		{"chmod only is ignored", fsnotify.Event{Name: "codeql.yml", Op: fsnotify.Chmod}, false},
		{"non-workflow file", fsnotify.Event{Name: "README.md", Op: fsnotify.Write}, false},
		{"editor temp file", fsnotify.Event{Name: "codeql.yml.swp", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isWorkflowFileEvent(tt.event))
		})
	}
}
