package main

import (
	"testing"

	"github.com/corebridge/schemaast"
	"github.com/corebridge/schemaast/fixture"
)

func TestDumpClosesCycleByRef(t *testing.T) {
	node := fixture.Object().Named("Node")
	node.Prop("child", node.Build())
	tree, err := schemaast.Translate(node.Build(), schemaast.Options{})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	out := dump(tree)
	nodes, ok := out["nodes"].([]any)
	if !ok || len(nodes) != 1 {
		t.Fatalf("dump() nodes = %#v, want exactly one shared node", out["nodes"])
	}

	root, ok := out["root"].(map[string]any)
	if !ok {
		t.Fatalf("dump() root = %#v, want a $ref", out["root"])
	}
	rootID := root["$ref"]

	rec := nodes[0].(map[string]any)
	params := rec["params"].([]any)
	if len(params) != 1 {
		t.Fatalf("params = %#v", params)
	}
	childAST := params[0].(map[string]any)["ast"].(map[string]any)
	if childAST["$ref"] != rootID {
		t.Fatalf("child ref = %v, want the same id as root %v", childAST["$ref"], rootID)
	}
}

func TestDumpRendersLiteralValue(t *testing.T) {
	tree, err := schemaast.Translate(fixture.Literal(42), schemaast.Options{})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	out := dump(tree)
	nodes := out["nodes"].([]any)
	rec := nodes[0].(map[string]any)
	if rec["kind"] != "LITERAL" || rec["value"] != 42 {
		t.Fatalf("rendered literal = %#v", rec)
	}
}
