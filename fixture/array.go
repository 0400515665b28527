package fixture

import "github.com/corebridge/schemaast/schema"

// ArrayBuilder builds an array-shaped schema node, covering all three
// Array Normalizer item shapes (homogeneous, tuple, absent).
type ArrayBuilder struct {
	s *schema.Schema
}

// ArrayOf starts a builder for a homogeneous array (Case B).
func ArrayOf(elem *schema.Schema) *ArrayBuilder {
	return &ArrayBuilder{s: &schema.Schema{Type: "array", Items: elem}}
}

// Tuple starts a builder for a list-form items array (Case A).
func Tuple(items ...*schema.Schema) *ArrayBuilder {
	return &ArrayBuilder{s: &schema.Schema{Type: "array", Items: items}}
}

// UntypedArray starts a builder for an array with no items attribute at
// all (Case C).
func UntypedArray() *ArrayBuilder {
	return &ArrayBuilder{s: &schema.Schema{Type: "array"}}
}

// Min sets minItems.
func (b *ArrayBuilder) Min(n int) *ArrayBuilder {
	b.s.MinItems = &n
	return b
}

// Max sets maxItems.
func (b *ArrayBuilder) Max(n int) *ArrayBuilder {
	b.s.MaxItems = &n
	return b
}

// AdditionalItems sets additionalItems to a bool, meaningful only for the
// tuple (list-form items) shape.
func (b *ArrayBuilder) AdditionalItems(allow bool) *ArrayBuilder {
	b.s.AdditionalItems = allow
	return b
}

// AdditionalItemsSchema sets additionalItems to a schema.
func (b *ArrayBuilder) AdditionalItemsSchema(s *schema.Schema) *ArrayBuilder {
	b.s.AdditionalItems = s
	return b
}

// Named sets Title.
func (b *ArrayBuilder) Named(title string) *ArrayBuilder {
	b.s.Title = title
	return b
}

// Build returns the finished schema node.
func (b *ArrayBuilder) Build() *schema.Schema { return b.s }
