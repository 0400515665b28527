package schemaast

import (
	"github.com/corebridge/schemaast/ast"
	"github.com/corebridge/schemaast/schema"
)

// translateArrayTag dispatches to one of the three array normalizer cases
// (§4.4) based on the shape of Items, the only attribute that distinguishes
// them.
func (r *run) translateArrayTag(n *schema.Schema, t tag) (ast.Node, error) {
	switch items := n.Items.(type) {
	case []*schema.Schema:
		return r.translateTupleForm(n, t, items)
	case *schema.Schema:
		return r.translateBoundedArray(n, t, func() (ast.Node, error) {
			return r.translate(items, nil)
		})
	default:
		return r.translateBoundedArray(n, t, func() (ast.Node, error) {
			return ast.NewPrimitive(r.opts.anyKind()), nil
		})
	}
}

// translateBoundedArray covers Cases B and C: a single element type (a
// translated schema for B, ANY for C) repeated across a tuple or array
// shape governed by minItems/maxItems.
func (r *run) translateBoundedArray(n *schema.Schema, t tag, elementOf func() (ast.Node, error)) (ast.Node, error) {
	min := intOr(n.MinItems, 0)
	maxFinite, max := finiteMax(n.MaxItems)

	if min > 0 || maxFinite {
		placeholder := &ast.Tuple{}
		if c := docComment(n); c != "" {
			placeholder.Comment = c
		}
		if name, ok := r.nameFor(n); ok {
			placeholder.StandaloneName = &name
		}
		r.cache.install(n, t, placeholder)

		element, err := elementOf()
		if err != nil {
			return nil, err
		}

		count := boundedCount(min, maxFinite, max)
		elements := make([]ast.Node, count)
		for i := range elements {
			elements[i] = element
		}
		placeholder.Elements = elements
		placeholder.MinItems = min
		placeholder.MaxItems = n.MaxItems
		if !maxFinite {
			placeholder.Spread = element
		}
		return placeholder, nil
	}

	placeholder := &ast.Array{}
	if c := docComment(n); c != "" {
		placeholder.Comment = c
	}
	if name, ok := r.nameFor(n); ok {
		placeholder.StandaloneName = &name
	}
	r.cache.install(n, t, placeholder)

	element, err := elementOf()
	if err != nil {
		return nil, err
	}
	placeholder.Element = element
	return placeholder, nil
}

// translateTupleForm is Case A: items is a list of schemas. The list's own
// length is the baseline element count; maxItems truncates it downward,
// minItems pads it upward with ANY.
func (r *run) translateTupleForm(n *schema.Schema, t tag, items []*schema.Schema) (ast.Node, error) {
	placeholder := &ast.Tuple{}
	if c := docComment(n); c != "" {
		placeholder.Comment = c
	}
	if name, ok := r.nameFor(n); ok {
		placeholder.StandaloneName = &name
	}
	r.cache.install(n, t, placeholder)

	min := intOr(n.MinItems, 0)
	maxFinite, max := finiteMax(n.MaxItems)

	count := len(items)
	if maxFinite && max < count {
		count = max
	}
	if count < min {
		count = min
	}

	elements := make([]ast.Node, count)
	for i := range elements {
		if i < len(items) {
			el, err := r.translate(items[i], nil)
			if err != nil {
				return nil, err
			}
			elements[i] = el
			continue
		}
		elements[i] = ast.NewPrimitive(r.opts.anyKind())
	}
	placeholder.Elements = elements
	placeholder.MinItems = min
	placeholder.MaxItems = n.MaxItems

	switch add := n.AdditionalItems.(type) {
	case bool:
		if add {
			placeholder.Spread = ast.NewPrimitive(r.opts.anyKind())
		}
	case *schema.Schema:
		spread, err := r.translate(add, nil)
		if err != nil {
			return nil, err
		}
		placeholder.Spread = spread
	}
	return placeholder, nil
}

// boundedCount implements the array normalization law (§8 property 4):
// max(minItems, maxItems if finite else minItems).
func boundedCount(min int, maxFinite bool, max int) int {
	if maxFinite && max > min {
		return max
	}
	return min
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func finiteMax(p *int) (bool, int) {
	if p == nil {
		return false, 0
	}
	return true, *p
}
