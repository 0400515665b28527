package ast_test

import (
	"testing"

	"github.com/corebridge/schemaast/ast"
)

func TestKindString(t *testing.T) {
	if ast.KindString.String() != "STRING" {
		t.Fatalf("got %q", ast.KindString.String())
	}
	if ast.Kind(999).String() != "UNKNOWN_KIND" {
		t.Fatalf("unknown kind should stringify to UNKNOWN_KIND")
	}
}

func TestBaseKeyNameSetOnlyOnce(t *testing.T) {
	p := &ast.Primitive{K: ast.KindString}
	p.SetKeyName("first")
	p.SetKeyName("second")
	name, ok := p.HasKeyName()
	if !ok || name != "first" {
		t.Fatalf("HasKeyName() = %q, %v, want first, true", name, ok)
	}
}

func TestBaseAppendCommentJoins(t *testing.T) {
	p := &ast.Primitive{K: ast.KindString}
	p.AppendComment("first")
	p.AppendComment("second")
	if p.Comment != "first\nsecond" {
		t.Fatalf("Comment = %q", p.Comment)
	}
}

func TestGetComment(t *testing.T) {
	p := &ast.Primitive{K: ast.KindString}
	if p.GetComment() != "" {
		t.Fatalf("GetComment() on zero value = %q", p.GetComment())
	}
	p.AppendComment("note")
	if p.GetComment() != "note" {
		t.Fatalf("GetComment() = %q", p.GetComment())
	}
}

func TestHasStandaloneNameUnset(t *testing.T) {
	p := &ast.Primitive{K: ast.KindString}
	if _, ok := p.HasStandaloneName(); ok {
		t.Fatalf("expected no standalone name")
	}
}

func TestNewPrimitive(t *testing.T) {
	p := ast.NewPrimitive(ast.KindBoolean)
	if p.Kind() != ast.KindBoolean {
		t.Fatalf("Kind() = %v", p.Kind())
	}
}

func TestLiteralSatisfiesNode(t *testing.T) {
	var n ast.Node = &ast.Literal{Value: 1}
	if n.Kind() != ast.KindLiteral {
		t.Fatalf("Kind() = %v", n.Kind())
	}
}
