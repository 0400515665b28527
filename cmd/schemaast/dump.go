package main

import "github.com/corebridge/schemaast/ast"

// dumper flattens an AST graph into an id-ordered list of plain records
// suitable for JSON encoding. A graph, not a tree: the translator's cache
// preserves identity across repeated reference and closes cycles onto a
// placeholder (see the root package's cache.go), so naive recursive
// marshaling would never terminate on a self-referential schema (S4 in
// the root package's test suite). Assigning each distinct node an id up
// front and referencing repeats by {"$ref": id} — the same idea the input
// format itself uses for $ref — sidesteps that without flattening shared
// structure into duplicated copies.
type dumper struct {
	ids   map[ast.Node]int
	order []ast.Node
}

func newDumper() *dumper {
	return &dumper{ids: make(map[ast.Node]int)}
}

// dump registers root and every node reachable from it, then renders the
// whole graph as {"root": <ref>, "nodes": [...]}.
func dump(root ast.Node) map[string]any {
	d := newDumper()
	d.register(root)

	nodes := make([]any, len(d.order))
	for i, n := range d.order {
		nodes[i] = d.render(n)
	}
	return map[string]any{
		"root":  d.ref(root),
		"nodes": nodes,
	}
}

func (d *dumper) register(n ast.Node) {
	if n == nil {
		return
	}
	if _, ok := d.ids[n]; ok {
		return
	}
	d.ids[n] = len(d.order)
	d.order = append(d.order, n)
	for _, c := range children(n) {
		d.register(c)
	}
}

// ref returns the {"$ref": id} pointer for an already-registered node, or
// nil for a nil child slot.
func (d *dumper) ref(n ast.Node) any {
	if n == nil {
		return nil
	}
	return map[string]any{"$ref": d.ids[n]}
}

func (d *dumper) refs(ns []ast.Node) []any {
	out := make([]any, len(ns))
	for i, n := range ns {
		out[i] = d.ref(n)
	}
	return out
}

func children(n ast.Node) []ast.Node {
	switch v := n.(type) {
	case *ast.Array:
		return []ast.Node{v.Element}
	case *ast.Tuple:
		out := append([]ast.Node{}, v.Elements...)
		if v.Spread != nil {
			out = append(out, v.Spread)
		}
		return out
	case *ast.Union:
		return v.Members
	case *ast.Intersection:
		return v.Members
	case *ast.Enum:
		out := make([]ast.Node, len(v.Members))
		for i, m := range v.Members {
			out[i] = m.Value
		}
		return out
	case *ast.Interface:
		out := make([]ast.Node, 0, len(v.Params)+len(v.SuperTypes)+len(v.GenericValues)+1)
		for _, p := range v.Params {
			out = append(out, p.AST)
		}
		if v.ParamsKeyType != nil {
			out = append(out, v.ParamsKeyType)
		}
		out = append(out, v.SuperTypes...)
		out = append(out, v.GenericValues...)
		return out
	case *ast.TypeReference:
		return []ast.Node{v.Referenced, v.Picked}
	default:
		return nil
	}
}

// render produces the JSON-able record for one node: its base attributes
// plus kind-specific fields, with every child slot turned into a $ref.
func (d *dumper) render(n ast.Node) map[string]any {
	m := map[string]any{"kind": n.Kind().String()}
	if kn, ok := hasKeyName(n); ok {
		m["keyName"] = kn
	}
	if sn, ok := hasStandaloneName(n); ok {
		m["standaloneName"] = sn
	}
	if c, ok := hasComment(n); ok {
		m["comment"] = c
	}

	switch v := n.(type) {
	case *ast.Literal:
		m["value"] = v.Value
	case *ast.Primitive:
		// kind alone is the payload
	case *ast.CustomType:
		m["text"] = v.Text
	case *ast.Array:
		m["element"] = d.ref(v.Element)
	case *ast.Tuple:
		m["elements"] = d.refs(v.Elements)
		if v.Spread != nil {
			m["spread"] = d.ref(v.Spread)
		}
		m["minItems"] = v.MinItems
		if v.MaxItems != nil {
			m["maxItems"] = *v.MaxItems
		}
	case *ast.Union:
		m["members"] = d.refs(v.Members)
	case *ast.Intersection:
		m["members"] = d.refs(v.Members)
	case *ast.Enum:
		members := make([]any, len(v.Members))
		for i, em := range v.Members {
			members[i] = map[string]any{"name": em.Name, "value": d.ref(em.Value)}
		}
		m["members"] = members
	case *ast.Interface:
		params := make([]any, len(v.Params))
		for i, p := range v.Params {
			params[i] = map[string]any{
				"ast":                     d.ref(p.AST),
				"keyName":                 p.KeyName,
				"required":                p.Required,
				"isPatternProperty":       p.IsPatternProperty,
				"isUnreachableDefinition": p.IsUnreachableDefinition,
			}
		}
		m["params"] = params
		if v.ParamsKeyType != nil {
			m["paramsKeyType"] = d.ref(v.ParamsKeyType)
		}
		if len(v.SuperTypes) > 0 {
			m["superTypes"] = d.refs(v.SuperTypes)
		}
		if len(v.GenericParams) > 0 {
			m["genericParams"] = v.GenericParams
		}
		if len(v.GenericValues) > 0 {
			m["genericValues"] = d.refs(v.GenericValues)
		}
	case *ast.TypeReference:
		m["referenced"] = d.ref(v.Referenced)
		m["picked"] = d.ref(v.Picked)
	}
	return m
}

func hasKeyName(n ast.Node) (string, bool) {
	nn, ok := n.(interface{ HasKeyName() (string, bool) })
	if !ok {
		return "", false
	}
	return nn.HasKeyName()
}

func hasStandaloneName(n ast.Node) (string, bool) {
	nn, ok := n.(interface{ HasStandaloneName() (string, bool) })
	if !ok {
		return "", false
	}
	return nn.HasStandaloneName()
}

func hasComment(n ast.Node) (string, bool) {
	nn, ok := n.(interface{ GetComment() string })
	if !ok {
		return "", false
	}
	c := nn.GetComment()
	return c, c != ""
}
