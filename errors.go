package schemaast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/corebridge/schemaast/schema"
)

// Issue codes, one per entry in the error taxonomy. Every code here is
// fatal: the translator emits no partial AST and there is no recovery
// path; the caller must restart with corrected input.
const (
	CodeUnresolvedReference  = "unresolved_reference"
	CodeMissingName          = "missing_name"
	CodeInvalidPropertyNames = "invalid_property_names"
	CodeInvalidSuperType     = "invalid_super_type"
	CodeInvalidEnumRef       = "invalid_enum_ref"
)

// Issue identifies a single fatal translation failure.
type Issue struct {
	Path    string // best-effort path from the root to the offending node
	Code    string // one of the Code* constants above
	Message string
	Cause   error // optional underlying error
}

// Issues is a collection of translation errors that implements error. The
// translator only ever returns a single-element Issues — there is no
// partial result and no issue accumulation across a run — but Issues keeps
// the slice shape so callers can use errors.As uniformly.
type Issues []Issue

// Error summarizes the issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for i, it := range iss {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path, it.Message)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// fail builds the single-element Issues the translator returns for a fatal
// condition anchored at node n.
func fail(n *schema.Schema, code, message string) error {
	return Issues{Issue{Path: nodePath(n), Code: code, Message: message}}
}

// failf is fail with a formatted message.
func failf(n *schema.Schema, code, format string, args ...any) error {
	return fail(n, code, fmt.Sprintf(format, args...))
}

// nodePath renders a best-effort diagnostic path for n by walking Parent
// links and naming which attribute of each parent led to the next node
// down. It is a debugging aid, not a JSON Pointer.
func nodePath(n *schema.Schema) string {
	if n == nil {
		return "/"
	}
	var segs []string
	cur := n
	for cur.Parent != nil {
		segs = append([]string{childSegment(cur.Parent, cur)}, segs...)
		cur = cur.Parent
	}
	if len(segs) == 0 {
		return "/"
	}
	return "/" + strings.Join(segs, "/")
}

func childSegment(parent, child *schema.Schema) string {
	if seg, ok := findInMap(parent.Properties, "properties", child); ok {
		return seg
	}
	if seg, ok := findInMap(parent.PatternProperties, "patternProperties", child); ok {
		return seg
	}
	if seg, ok := findInMap(parent.Definitions, "definitions", child); ok {
		return seg
	}
	if seg, ok := findInList(parent.Extends, "extends", child); ok {
		return seg
	}
	if seg, ok := findInList(parent.AllOf, "allOf", child); ok {
		return seg
	}
	if seg, ok := findInList(parent.AnyOf, "anyOf", child); ok {
		return seg
	}
	if seg, ok := findInList(parent.OneOf, "oneOf", child); ok {
		return seg
	}
	switch items := parent.Items.(type) {
	case *schema.Schema:
		if items == child {
			return "items"
		}
	case []*schema.Schema:
		if seg, ok := findInList(items, "items", child); ok {
			return seg
		}
	}
	if s, ok := parent.AdditionalItems.(*schema.Schema); ok && s == child {
		return "additionalItems"
	}
	if s, ok := parent.AdditionalProperties.(*schema.Schema); ok && s == child {
		return "additionalProperties"
	}
	if parent.PropertyNames == child {
		return "propertyNames"
	}
	return "?"
}

func findInMap(m *schema.Map, label string, child *schema.Schema) (string, bool) {
	if m == nil {
		return "", false
	}
	for _, k := range m.Keys() {
		if s, _ := m.Get(k); s == child {
			return label + "/" + k, true
		}
	}
	return "", false
}

func findInList(list []*schema.Schema, label string, child *schema.Schema) (string, bool) {
	for i, s := range list {
		if s == child {
			return fmt.Sprintf("%s/%d", label, i), true
		}
	}
	return "", false
}
