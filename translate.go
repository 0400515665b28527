package schemaast

import (
	"github.com/corebridge/schemaast/ast"
	"github.com/corebridge/schemaast/schema"
)

// Translate converts a fully-linked, fully-dereferenced JSON Schema tree
// into the language-neutral AST described by package ast. root must carry
// no unresolved $ref; see the root package's doc comment for the
// dereferencing contract this function assumes.
func Translate(root *schema.Schema, opts Options) (ast.Node, error) {
	r := &run{
		cache: newCache(),
		used:  newUsedNames(),
		defs:  buildDefinitionsIndex(root),
		opts:  opts,
	}
	return r.translate(root, nil)
}

// run holds the state threaded through one translation call: the
// identity-keyed cache that memoizes results and breaks cycles, the
// document-scoped set of names already handed out, the definitions-table
// reverse index, and the caller's options.
type run struct {
	cache *cache
	used  *usedNames
	defs  *definitionsIndex
	opts  Options
}

// translate is the entry point for a single schema node: literal values
// short-circuit to LITERAL, everything else goes through the classifier
// and, for a multi-tag result, the intersection wrapper.
func (r *run) translate(n *schema.Schema, keyName *string) (ast.Node, error) {
	if n == nil {
		return ast.NewPrimitive(r.opts.anyKind()), nil
	}
	if n.IsLiteral {
		if cached, ok := r.cache.get(n, tagLiteral); ok {
			setKeyNameIfAbsent(cached, keyName)
			return cached, nil
		}
		lit := &ast.Literal{Value: n.Literal}
		r.cache.install(n, tagLiteral, lit)
		setKeyNameIfAbsent(lit, keyName)
		return lit, nil
	}

	tags := classify(n)
	if len(tags) == 1 {
		node, err := r.translateTag(n, tags[0], keyName)
		if err != nil {
			return nil, err
		}
		return node, nil
	}
	return r.translateIntersection(n, tags, keyName)
}

// translateTag builds (or returns the cached) AST for one (node, tag)
// cell, then lifts keyName onto it if it doesn't carry one already.
func (r *run) translateTag(n *schema.Schema, t tag, keyName *string) (ast.Node, error) {
	if t == tagReference {
		return nil, fail(n, CodeUnresolvedReference, "schema still carries an unresolved $ref")
	}
	if cached, ok := r.cache.get(n, t); ok {
		setKeyNameIfAbsent(cached, keyName)
		return cached, nil
	}

	var (
		node ast.Node
		err  error
	)
	switch t {
	case tagCustomType:
		node = &ast.CustomType{Text: n.TSType}
		r.cache.install(n, t, node)
	case tagAllOf:
		node, err = r.translateAllOf(n, t)
	case tagAnyOf:
		node, err = r.translateUnionOf(n, t, n.AnyOf)
	case tagOneOf:
		node, err = r.translateUnionOf(n, t, n.OneOf)
	case tagUnion:
		node, err = r.translateMultiTypeUnion(n, t)
	case tagNamedEnum:
		node, err = r.translateNamedEnum(n, t)
	case tagUnnamedEnum:
		node, err = r.translateUnnamedEnum(n, t)
	case tagNamedSchema, tagUnnamedSchema:
		node, err = r.translateInterfaceTag(n, t)
	case tagTypedArray, tagUntypedArray:
		node, err = r.translateArrayTag(n, t)
	case tagString:
		node = r.cachePrimitive(n, t, ast.KindString)
	case tagNumber:
		node = r.cachePrimitive(n, t, ast.KindNumber)
	case tagBoolean:
		node = r.cachePrimitive(n, t, ast.KindBoolean)
	case tagNull:
		node = r.cachePrimitive(n, t, ast.KindNull)
	case tagNever:
		node = r.cachePrimitive(n, t, ast.KindNever)
	case tagObject:
		node = r.cachePrimitive(n, t, ast.KindObject)
	case tagAny:
		node = r.cachePrimitive(n, t, r.opts.anyKind())
	default:
		return nil, failf(n, CodeUnresolvedReference, "unhandled classification tag %d", t)
	}
	if err != nil {
		return nil, err
	}
	setKeyNameIfAbsent(node, keyName)
	return node, nil
}

// translateIntersection handles the multi-tag case (§4.6, testable
// property 6): the outer INTERSECTION claims the node's name and doc
// comment, and each tag is translated against a stripped clone so the
// individual members don't also claim them.
func (r *run) translateIntersection(n *schema.Schema, tags []tag, keyName *string) (ast.Node, error) {
	if cached, ok := r.cache.get(n, tagMultiIntersection); ok {
		setKeyNameIfAbsent(cached, keyName)
		return cached, nil
	}

	placeholder := &ast.Intersection{}
	if c := docComment(n); c != "" {
		placeholder.Comment = c
	}
	if name, ok := r.nameFor(n); ok {
		placeholder.StandaloneName = &name
	}
	setKeyNameIfAbsent(placeholder, keyName)
	r.cache.install(n, tagMultiIntersection, placeholder)

	stripped := n.Clone()
	stripped.Title = ""
	stripped.ID = ""
	stripped.Description = ""
	stripped.Comment = ""

	members := make([]ast.Node, 0, len(tags))
	for _, t := range tags {
		// A NAMED_SCHEMA member would otherwise fatal on a missing name:
		// the INTERSECTION already claimed it, and stripped carries none.
		if t == tagNamedSchema {
			t = tagUnnamedSchema
		}
		member, err := r.translateTag(stripped, t, nil)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	placeholder.Members = members
	return placeholder, nil
}

func (r *run) translateAllOf(n *schema.Schema, t tag) (ast.Node, error) {
	flaggedIdx := -1
	for i, c := range n.AllOf {
		if c.TSExtendAllOf {
			flaggedIdx = i
			break
		}
	}

	if flaggedIdx < 0 {
		placeholder := &ast.Intersection{}
		if c := docComment(n); c != "" {
			placeholder.Comment = c
		}
		if name, ok := r.nameFor(n); ok {
			placeholder.StandaloneName = &name
		}
		r.cache.install(n, t, placeholder)

		members := make([]ast.Node, 0, len(n.AllOf))
		for _, c := range n.AllOf {
			m, err := r.translate(c, nil)
			if err != nil {
				return nil, err
			}
			members = append(members, m)
		}
		placeholder.Members = members
		return placeholder, nil
	}

	placeholder := &ast.Interface{}
	if c := docComment(n); c != "" {
		placeholder.Comment = c
	}
	if name, ok := r.nameFor(n); ok {
		placeholder.StandaloneName = &name
	}
	r.cache.install(n, t, placeholder)

	flagged := n.AllOf[flaggedIdx]
	flaggedAST, err := r.translate(flagged, nil)
	if err != nil {
		return nil, err
	}
	flaggedIface, ok := flaggedAST.(*ast.Interface)
	if !ok {
		return nil, fail(flagged, CodeInvalidSuperType, "tsExtendAllOf target must translate to an interface")
	}

	others := make([]*schema.Schema, 0, len(n.AllOf)-1)
	for i, c := range n.AllOf {
		if i != flaggedIdx {
			others = append(others, c)
		}
	}
	superTypes, err := r.translateSuperTypes(others)
	if err != nil {
		return nil, err
	}

	placeholder.Params = flaggedIface.Params
	placeholder.ParamsKeyType = flaggedIface.ParamsKeyType
	placeholder.GenericParams = flaggedIface.GenericParams
	placeholder.GenericValues = flaggedIface.GenericValues
	placeholder.SuperTypes = superTypes
	return placeholder, nil
}

func (r *run) translateUnionOf(n *schema.Schema, t tag, children []*schema.Schema) (ast.Node, error) {
	placeholder := &ast.Union{}
	if c := docComment(n); c != "" {
		placeholder.Comment = c
	}
	if name, ok := r.nameFor(n); ok {
		placeholder.StandaloneName = &name
	}
	r.cache.install(n, t, placeholder)

	members := make([]ast.Node, 0, len(children))
	for _, c := range children {
		m, err := r.translate(c, nil)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	placeholder.Members = members
	return placeholder, nil
}

func (r *run) translateMultiTypeUnion(n *schema.Schema, t tag) (ast.Node, error) {
	placeholder := &ast.Union{}
	if c := docComment(n); c != "" {
		placeholder.Comment = c
	}
	if name, ok := r.nameFor(n); ok {
		placeholder.StandaloneName = &name
	}
	r.cache.install(n, t, placeholder)

	names := n.TypeNames()
	members := make([]ast.Node, 0, len(names))
	for _, name := range names {
		clone := n.Clone()
		clone.Type = name
		clone.Title = ""
		clone.ID = ""
		clone.Description = ""
		clone.Comment = ""
		m, err := r.translate(clone, nil)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	placeholder.Members = members
	return placeholder, nil
}

func (r *run) translateNamedEnum(n *schema.Schema, t tag) (ast.Node, error) {
	name, ok := r.nameFor(n)
	if !ok {
		return nil, fail(n, CodeMissingName, "named enum requires a derivable standalone name")
	}
	members := make([]ast.EnumMember, len(n.Enum))
	for i, v := range n.Enum {
		members[i] = ast.EnumMember{Name: n.TSEnumNames[i], Value: &ast.Literal{Value: v}}
	}
	node := &ast.Enum{Members: members}
	node.StandaloneName = &name
	if c := docComment(n); c != "" {
		node.Comment = c
	}
	r.cache.install(n, t, node)
	return node, nil
}

func (r *run) translateUnnamedEnum(n *schema.Schema, t tag) (ast.Node, error) {
	placeholder := &ast.Union{}
	if c := docComment(n); c != "" {
		placeholder.Comment = c
	}
	if name, ok := r.nameFor(n); ok {
		placeholder.StandaloneName = &name
	}
	r.cache.install(n, t, placeholder)

	if n.TSEnumRef == nil {
		members := make([]ast.Node, len(n.Enum))
		for i, v := range n.Enum {
			members[i] = &ast.Literal{Value: v}
		}
		placeholder.Members = members
		return placeholder, nil
	}

	refAST, err := r.translate(n.TSEnumRef, nil)
	if err != nil {
		return nil, err
	}
	refEnum, ok := refAST.(*ast.Enum)
	if !ok {
		return nil, fail(n, CodeInvalidEnumRef, "tsEnumRef target does not translate to an enum")
	}

	members := make([]ast.Node, 0, len(n.Enum))
	for _, v := range n.Enum {
		member, ok := findEnumMember(refEnum, v)
		if !ok {
			return nil, failf(n, CodeInvalidEnumRef, "value %v is not a member of the referenced enum", v)
		}
		members = append(members, &ast.TypeReference{Referenced: refEnum, Picked: member})
	}
	placeholder.Members = members
	return placeholder, nil
}

func (r *run) cachePrimitive(n *schema.Schema, t tag, kind ast.Kind) *ast.Primitive {
	node := ast.NewPrimitive(kind)
	if c := docComment(n); c != "" {
		node.Comment = c
	}
	r.cache.install(n, t, node)
	return node
}

// nameFor computes a best-effort standalone name for n: title, then id,
// then its definitions-table key if it has one. An empty seed (none of
// those present) yields ("", false); callers decide whether that's fatal.
func (r *run) nameFor(n *schema.Schema) (string, bool) {
	key, _ := r.defs.lookup(n)
	return r.used.generate(nameSeed(n.Title, n.ID, key))
}

func docComment(n *schema.Schema) string {
	if n.Comment != "" {
		return n.Comment
	}
	return n.Description
}

func findEnumMember(e *ast.Enum, v any) (ast.Node, bool) {
	for _, m := range e.Members {
		if lit, ok := m.Value.(*ast.Literal); ok && lit.Value == v {
			return lit, true
		}
	}
	return nil, false
}

func setKeyNameIfAbsent(n ast.Node, keyName *string) {
	if keyName == nil {
		return
	}
	if s, ok := n.(interface{ SetKeyName(string) }); ok {
		s.SetKeyName(*keyName)
	}
}
