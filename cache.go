package schemaast

import (
	"github.com/corebridge/schemaast/ast"
	"github.com/corebridge/schemaast/schema"
)

// tag names the classifier output that selected a particular translation
// branch. It doubles as the cache's second key dimension, since a single
// schema node can carry more than one tag (see the classifier) and each
// tag's translation is cached independently.
type tag int

const (
	tagAllOf tag = iota
	tagAnyOf
	tagBoolean
	tagCustomType
	tagLiteral
	tagNamedEnum
	tagNamedSchema
	tagNever
	tagNull
	tagNumber
	tagObject
	tagOneOf
	tagReference
	tagString
	tagTypedArray
	tagUnion
	tagUnnamedEnum
	tagUnnamedSchema
	tagUntypedArray
	tagAny

	// tagMultiIntersection is a synthetic tag, never returned by the
	// classifier, used to cache the outer INTERSECTION built when a node
	// classifies under more than one tag (see translateIntersection).
	tagMultiIntersection
)

// cacheKey identifies one (schema node identity, tag) cell. Identity is
// reference equality on the linked schema node, not structural equality:
// two schema nodes with equal contents but distinct identities get
// distinct AST nodes, because the upstream dereferencer already collapsed
// shared references into shared nodes — structural deduplication here
// would incorrectly merge schemas that only coincidentally match.
type cacheKey struct {
	node *schema.Schema
	tag  tag
}

// cache is a two-level mapping (schema-node identity -> tag -> AST node)
// that both memoizes translation results and breaks cycles: a placeholder
// is installed before recursion descends, so a schema that (directly or
// transitively) references itself resolves to the same placeholder object
// instead of looping forever. The cache never evicts; it only ever grows
// to the number of reachable nodes times the number of tags per node.
type cache struct {
	entries map[cacheKey]ast.Node
}

func newCache() *cache {
	return &cache{entries: make(map[cacheKey]ast.Node)}
}

// get returns the cached AST for (node, t), if any.
func (c *cache) get(node *schema.Schema, t tag) (ast.Node, bool) {
	n, ok := c.entries[cacheKey{node, t}]
	return n, ok
}

// install records placeholder under (node, t) before recursion descends,
// so that a cycle back to node resolves to the same object that will
// later be filled in place.
func (c *cache) install(node *schema.Schema, t tag, placeholder ast.Node) {
	c.entries[cacheKey{node, t}] = placeholder
}
