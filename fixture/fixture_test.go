package fixture_test

import (
	"testing"

	"github.com/corebridge/schemaast/fixture"
	"github.com/corebridge/schemaast/schema"
)

func TestObjectBuilderShape(t *testing.T) {
	s := fixture.Object().
		Named("Widget").
		Prop("a", fixture.String()).
		Prop("b", fixture.Number()).
		Required("a").
		Build()

	if s.Title != "Widget" || s.Type != "object" {
		t.Fatalf("Title/Type = %q/%v", s.Title, s.Type)
	}
	if s.Properties.Len() != 2 {
		t.Fatalf("Properties.Len() = %d", s.Properties.Len())
	}
	if got := s.Properties.Keys(); got[0] != "a" || got[1] != "b" {
		t.Fatalf("Properties.Keys() = %v", got)
	}
	if len(s.Required) != 1 || s.Required[0] != "a" {
		t.Fatalf("Required = %v", s.Required)
	}
}

func TestArrayBuilderShapes(t *testing.T) {
	bounded := fixture.ArrayOf(fixture.String()).Min(1).Max(3).Build()
	if bounded.MinItems == nil || *bounded.MinItems != 1 {
		t.Fatalf("MinItems = %v", bounded.MinItems)
	}
	if bounded.MaxItems == nil || *bounded.MaxItems != 3 {
		t.Fatalf("MaxItems = %v", bounded.MaxItems)
	}

	tuple := fixture.Tuple(fixture.String(), fixture.Number()).Build()
	items, ok := tuple.Items.([]*schema.Schema)
	if !ok || len(items) != 2 {
		t.Fatalf("Tuple() Items = %v, want a two-element tuple form", tuple.Items)
	}
}

func TestEnumBuilders(t *testing.T) {
	named := fixture.NamedEnum("Color", []any{"a", "b"}, []string{"A", "B"})
	if named.Title != "Color" || len(named.Enum) != 2 || len(named.TSEnumNames) != 2 {
		t.Fatalf("NamedEnum() = %+v", named)
	}

	unnamed := fixture.Enum("x", "y")
	if len(unnamed.Enum) != 2 || unnamed.Title != "" {
		t.Fatalf("Enum() = %+v", unnamed)
	}

	ref := fixture.EnumRef(named, "a")
	if ref.TSEnumRef != named {
		t.Fatalf("EnumRef() did not carry through the referenced node")
	}
}

func TestLiteralAndRef(t *testing.T) {
	lit := fixture.Literal(42)
	if !lit.IsLiteral || lit.Literal != 42 {
		t.Fatalf("Literal() = %+v", lit)
	}
	ref := fixture.Ref("#/definitions/Foo")
	if ref.Ref != "#/definitions/Foo" {
		t.Fatalf("Ref() = %+v", ref)
	}
}
