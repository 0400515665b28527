package schemaast

import "github.com/corebridge/schemaast/schema"

// definitionsIndex is a reverse lookup from a sub-schema node's identity to
// the key under which it appears in the root document's definitions table,
// used as a naming fallback (see the name generator) when a schema has
// neither a title nor an id.
type definitionsIndex struct {
	byNode map[*schema.Schema]string
}

// buildDefinitionsIndex walks the root schema, collecting every sub-schema
// appearing under any definitions attribute — recursively into every
// attribute value that can itself hold sub-schemas, so a definitions block
// nested inside a property or a definitions entry is still indexed.
// Re-entered nodes are skipped, which keeps the walk finite even if the
// root schema itself contains a cycle.
func buildDefinitionsIndex(root *schema.Schema) *definitionsIndex {
	idx := &definitionsIndex{byNode: make(map[*schema.Schema]string)}
	visited := make(map[*schema.Schema]bool)
	idx.walk(root, visited)
	return idx
}

// lookup returns the definitions-table key for node, if it was found
// during the index build.
func (idx *definitionsIndex) lookup(node *schema.Schema) (string, bool) {
	k, ok := idx.byNode[node]
	return k, ok
}

func (idx *definitionsIndex) walk(n *schema.Schema, visited map[*schema.Schema]bool) {
	if n == nil || visited[n] {
		return
	}
	visited[n] = true

	if n.Definitions != nil {
		n.Definitions.Each(func(key string, sub *schema.Schema) {
			if sub == nil {
				return
			}
			if _, exists := idx.byNode[sub]; !exists {
				idx.byNode[sub] = key
			}
			idx.walk(sub, visited)
		})
	}

	idx.walkChildren(n, visited)
}

// walkChildren descends into every attribute that can hold sub-schemas, so
// a definitions block anywhere in the tree gets indexed, not just one
// hanging off the root.
func (idx *definitionsIndex) walkChildren(n *schema.Schema, visited map[*schema.Schema]bool) {
	if n.Properties != nil {
		n.Properties.Each(func(_ string, s *schema.Schema) { idx.walk(s, visited) })
	}
	if n.PatternProperties != nil {
		n.PatternProperties.Each(func(_ string, s *schema.Schema) { idx.walk(s, visited) })
	}
	if s, ok := n.AdditionalProperties.(*schema.Schema); ok {
		idx.walk(s, visited)
	}
	if n.PropertyNames != nil {
		idx.walk(n.PropertyNames, visited)
	}
	for _, s := range n.Extends {
		idx.walk(s, visited)
	}
	for _, s := range n.AllOf {
		idx.walk(s, visited)
	}
	for _, s := range n.AnyOf {
		idx.walk(s, visited)
	}
	for _, s := range n.OneOf {
		idx.walk(s, visited)
	}
	switch items := n.Items.(type) {
	case *schema.Schema:
		idx.walk(items, visited)
	case []*schema.Schema:
		for _, s := range items {
			idx.walk(s, visited)
		}
	}
	if s, ok := n.AdditionalItems.(*schema.Schema); ok {
		idx.walk(s, visited)
	}
	if n.TSEnumRef != nil {
		idx.walk(n.TSEnumRef, visited)
	}
	for _, s := range n.TSGenericValues {
		idx.walk(s, visited)
	}
}
