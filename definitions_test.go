package schemaast

import (
	"testing"

	"github.com/corebridge/schemaast/schema"
)

func TestDefinitionsIndexFindsRootLevelEntry(t *testing.T) {
	widget := &schema.Schema{Type: "object"}
	root := &schema.Schema{Definitions: schema.NewMap()}
	root.Definitions.Set("Widget", widget)
	widget.Parent = root

	idx := buildDefinitionsIndex(root)
	key, ok := idx.lookup(widget)
	if !ok || key != "Widget" {
		t.Fatalf("lookup = %q, %v, want Widget, true", key, ok)
	}
}

func TestDefinitionsIndexWalksNestedContainers(t *testing.T) {
	inner := &schema.Schema{Type: "string"}
	nestedDefs := schema.NewMap()
	nestedDefs.Set("Inner", inner)
	prop := &schema.Schema{Type: "object", Definitions: nestedDefs}
	props := schema.NewMap()
	props.Set("p", prop)
	root := &schema.Schema{Type: "object", Properties: props}

	idx := buildDefinitionsIndex(root)
	key, ok := idx.lookup(inner)
	if !ok || key != "Inner" {
		t.Fatalf("lookup(inner) = %q, %v, want Inner, true", key, ok)
	}
}

func TestDefinitionsIndexStopsOnCycle(t *testing.T) {
	a := &schema.Schema{Type: "object"}
	defs := schema.NewMap()
	defs.Set("A", a)
	root := &schema.Schema{Definitions: defs}
	a.Extends = []*schema.Schema{root} // cycle back to root

	// A node revisited during the walk is skipped (visited map), so this
	// terminates instead of looping forever.
	idx := buildDefinitionsIndex(root)
	if key, ok := idx.lookup(a); !ok || key != "A" {
		t.Fatalf("lookup(a) = %q, %v, want A, true", key, ok)
	}
}

func TestDefinitionsIndexMissingEntry(t *testing.T) {
	root := &schema.Schema{Type: "object"}
	idx := buildDefinitionsIndex(root)
	if _, ok := idx.lookup(&schema.Schema{}); ok {
		t.Fatalf("lookup on an unindexed node should report false")
	}
}
