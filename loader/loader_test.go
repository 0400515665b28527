package loader_test

import (
	"testing"

	"github.com/corebridge/schemaast/loader"
	"github.com/corebridge/schemaast/schema"
)

func TestLoadJSONBasicObject(t *testing.T) {
	data := []byte(`{
		"title": "Widget",
		"type": "object",
		"properties": {"b": {"type": "string"}, "a": {"type": "number"}},
		"required": ["b"]
	}`)
	root, diag, err := loader.LoadJSON(data)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}
	if diag.HasWarnings() {
		t.Fatalf("unexpected warnings: %v", diag.Warnings())
	}
	if root.Title != "Widget" {
		t.Fatalf("Title = %q", root.Title)
	}
	if root.Properties == nil || root.Properties.Len() != 2 {
		t.Fatalf("Properties = %v", root.Properties)
	}
	// Property order must survive decode, not alphabetize or randomize.
	if got := root.Properties.Keys(); got[0] != "b" || got[1] != "a" {
		t.Fatalf("Properties.Keys() = %v, want [b a]", got)
	}
	if len(root.Required) != 1 || root.Required[0] != "b" {
		t.Fatalf("Required = %v", root.Required)
	}
}

func TestLoadJSONDuplicateKeyWarns(t *testing.T) {
	data := []byte(`{"type": "object", "properties": {"a": {"type": "string"}, "a": {"type": "number"}}}`)
	_, diag, err := loader.LoadJSON(data)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}
	if !diag.HasWarnings() {
		t.Fatalf("expected a duplicate-key warning")
	}
}

func TestLoadJSONNestedShapes(t *testing.T) {
	data := []byte(`{
		"type": "object",
		"properties": {
			"tags": {"type": "array", "items": {"type": "string"}, "minItems": 1},
			"tuple": {"type": "array", "items": [{"type": "string"}, {"type": "number"}]},
			"flag": {"type": "boolean"},
			"nested": {"type": "object", "additionalProperties": false}
		}
	}`)
	root, _, err := loader.LoadJSON(data)
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}
	tags, _ := root.Properties.Get("tags")
	if tags.MinItems == nil || *tags.MinItems != 1 {
		t.Fatalf("tags.MinItems = %v", tags.MinItems)
	}
	if elem, ok := tags.Items.(*schema.Schema); !ok || elem.Type != "string" {
		t.Fatalf("tags.Items = %v, want a single *schema.Schema of type string", tags.Items)
	}
	tuple, _ := root.Properties.Get("tuple")
	items, ok := tuple.Items.([]*schema.Schema)
	if !ok || len(items) != 2 || items[0].Type != "string" || items[1].Type != "number" {
		t.Fatalf("tuple.Items = %v, want a two-element tuple form", tuple.Items)
	}
	nested, _ := root.Properties.Get("nested")
	if add, ok := nested.AdditionalProperties.(bool); !ok || add {
		t.Fatalf("nested.AdditionalProperties = %v", nested.AdditionalProperties)
	}
}

func TestLoadYAMLPreservesOrderAndComment(t *testing.T) {
	data := []byte("title: Widget\n$comment: internal note\ntype: object\nproperties:\n  b:\n    type: string\n  a:\n    type: number\n")
	root, _, err := loader.LoadYAML(data)
	if err != nil {
		t.Fatalf("LoadYAML() error = %v", err)
	}
	if root.Comment != "internal note" {
		t.Fatalf("Comment = %q", root.Comment)
	}
	if got := root.Properties.Keys(); got[0] != "b" || got[1] != "a" {
		t.Fatalf("Properties.Keys() = %v, want [b a]", got)
	}
}

func TestLoadYAMLDuplicateKeyWarns(t *testing.T) {
	data := []byte("type: object\nproperties:\n  a:\n    type: string\n  a:\n    type: number\n")
	_, diag, err := loader.LoadYAML(data)
	if err != nil {
		t.Fatalf("LoadYAML() error = %v", err)
	}
	if !diag.HasWarnings() {
		t.Fatalf("expected a duplicate-key warning")
	}
}

func TestLoadSniffsJSONVsYAML(t *testing.T) {
	jsonRoot, _, err := loader.Load([]byte(`  {"type": "string"}`))
	if err != nil {
		t.Fatalf("Load(json) error = %v", err)
	}
	if jsonRoot.Type != "string" {
		t.Fatalf("jsonRoot.Type = %v", jsonRoot.Type)
	}
	yamlRoot, _, err := loader.Load([]byte("type: string\n"))
	if err != nil {
		t.Fatalf("Load(yaml) error = %v", err)
	}
	if yamlRoot.Type != "string" {
		t.Fatalf("yamlRoot.Type = %v", yamlRoot.Type)
	}
}

func TestLoadDoesNotResolveRef(t *testing.T) {
	root, _, err := loader.LoadJSON([]byte(`{"$ref": "#/definitions/Foo"}`))
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}
	if root.Ref != "#/definitions/Foo" {
		t.Fatalf("Ref = %q, want it left unresolved", root.Ref)
	}
}

func TestSetJSONDriverSwitchesBackend(t *testing.T) {
	loader.SetJSONDriver(loader.StdlibJSONDriver())
	defer loader.UseDefaultJSONDriver()

	root, _, err := loader.LoadJSON([]byte(`{"title": "Widget", "type": "object"}`))
	if err != nil {
		t.Fatalf("LoadJSON() with stdlib driver error = %v", err)
	}
	if root.Title != "Widget" {
		t.Fatalf("Title = %q", root.Title)
	}
}

func TestSetJSONDriverNilIsIgnored(t *testing.T) {
	loader.SetJSONDriver(nil)
	root, _, err := loader.LoadJSON([]byte(`{"type": "string"}`))
	if err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}
	if root.Type != "string" {
		t.Fatalf("Type = %v", root.Type)
	}
}
