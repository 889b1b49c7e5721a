// Package parser loads GitHub Actions workflow files into a generic YAML
// tree and provides safe accessors over it.
//
// Workflow files are loosely typed: almost every key is optional and any
// value can have an unexpected shape. The tree is therefore navigated with
// accessors that report explicit absence instead of panicking, so a
// wrong-shape value degrades to "missing" everywhere.
//
// Decoding preserves mapping order (yaml.MapSlice) so that jobs are visited
// in document order, which keeps violation ordering deterministic.
package parser

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/githubnext/codeql-perms/pkg/logger"
)

var parseLog = logger.New("parser:parser")

// ParseWorkflow decodes workflow YAML into an order-preserving generic tree.
// Mappings decode as yaml.MapSlice, sequences as []any, scalars as Go
// scalars. Empty or whitespace-only content yields a nil document, matching
// the behavior of a YAML loader returning null for an empty stream.
func ParseWorkflow(data []byte) (any, error) {
	if strings.TrimSpace(string(data)) == "" {
		parseLog.Print("Empty workflow document")
		return nil, nil
	}

	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		parseLog.Printf("YAML parse failed: %v", err)
		return nil, err
	}
	return doc, nil
}

// Mapping returns v as an ordered mapping, reporting whether v is one.
func Mapping(v any) (yaml.MapSlice, bool) {
	m, ok := v.(yaml.MapSlice)
	return m, ok
}

// Sequence returns v as a sequence, reporting whether v is one.
func Sequence(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// StringValue returns v as a string, reporting whether v is one.
func StringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Lookup finds key in an ordered mapping. The second return value reports
// whether the key is present, distinguishing an explicit null value from an
// absent key.
func Lookup(m yaml.MapSlice, key string) (any, bool) {
	for _, item := range m {
		if keyString(item.Key) == key {
			return item.Value, true
		}
	}
	return nil, false
}

// LookupMapping finds key in m and returns its value as a mapping. Absent
// keys and non-mapping values both report false.
func LookupMapping(m yaml.MapSlice, key string) (yaml.MapSlice, bool) {
	v, found := Lookup(m, key)
	if !found {
		return nil, false
	}
	return Mapping(v)
}

// LookupSequence finds key in m and returns its value as a sequence. Absent
// keys and non-sequence values both report false.
func LookupSequence(m yaml.MapSlice, key string) ([]any, bool) {
	v, found := Lookup(m, key)
	if !found {
		return nil, false
	}
	return Sequence(v)
}

// LookupString finds key in m and returns its value as a string. Absent keys
// and non-string values both report false.
func LookupString(m yaml.MapSlice, key string) (string, bool) {
	v, found := Lookup(m, key)
	if !found {
		return "", false
	}
	return StringValue(v)
}

// keyString normalizes a mapping key to a string. YAML keys are usually
// strings, but the decoder may produce other scalar types (e.g. "on"
// decoding as a boolean under YAML 1.1 rules).
func keyString(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", key)
}
