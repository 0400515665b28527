package schemaast

import (
	"github.com/corebridge/schemaast/ast"
	"github.com/corebridge/schemaast/schema"
)

// catchAllKeyName is the sentinel key used for the interface param that
// represents additionalProperties or a lone patternProperties entry taken
// as the catch-all (additionalProperties absent or false) — an index
// signature rather than a concrete property.
const catchAllKeyName = "[key: string]"

// translateInterfaceTag is the interface builder (§4.5). It decides the
// node's final shape (plain INTERFACE, mapped-key INTERFACE, or an
// INTERSECTION of the two) before installing a placeholder, since the
// shape is fully determined by propertyNames and the presence of concrete
// properties without any recursion.
func (r *run) translateInterfaceTag(n *schema.Schema, t tag) (ast.Node, error) {
	mapped := propertyNamesIsEnumLike(n)
	if mapped && len(n.Extends) > 0 {
		return nil, fail(n, CodeInvalidPropertyNames, "extends cannot co-occur with an enum-like propertyNames")
	}

	if !mapped {
		return r.translatePlainInterface(n, t)
	}
	if hasConcreteParams(n) {
		return r.translateMappedIntersection(n, t)
	}
	return r.translateMappedOnly(n, t)
}

func (r *run) translatePlainInterface(n *schema.Schema, t tag) (ast.Node, error) {
	placeholder := &ast.Interface{}
	if c := docComment(n); c != "" {
		placeholder.Comment = c
	}
	name, hasName := r.nameFor(n)
	if t == tagNamedSchema && !hasName {
		return nil, fail(n, CodeMissingName, "named schema requires a derivable standalone name")
	}
	if hasName {
		placeholder.StandaloneName = &name
	}
	placeholder.GenericParams = n.TSGenericParams
	r.cache.install(n, t, placeholder)

	params, err := r.buildParams(n)
	if err != nil {
		return nil, err
	}
	placeholder.Params = params

	if len(n.Extends) > 0 {
		superTypes, err := r.translateSuperTypes(n.Extends)
		if err != nil {
			return nil, err
		}
		placeholder.SuperTypes = superTypes
	}

	if len(n.TSGenericValues) > 0 {
		values := make([]ast.Node, 0, len(n.TSGenericValues))
		for _, v := range n.TSGenericValues {
			vv, err := r.translate(v, nil)
			if err != nil {
				return nil, err
			}
			values = append(values, vv)
		}
		placeholder.GenericValues = values
	}

	return placeholder, nil
}

func (r *run) translateMappedOnly(n *schema.Schema, t tag) (ast.Node, error) {
	placeholder := &ast.Interface{}
	if c := docComment(n); c != "" {
		placeholder.Comment = c
	}
	name, hasName := r.nameFor(n)
	if t == tagNamedSchema && !hasName {
		return nil, fail(n, CodeMissingName, "named schema requires a derivable standalone name")
	}
	if hasName {
		placeholder.StandaloneName = &name
	}
	r.cache.install(n, t, placeholder)

	keyType, err := r.translate(n.PropertyNames, nil)
	if err != nil {
		return nil, err
	}
	placeholder.ParamsKeyType = keyType

	params, err := r.buildParams(n)
	if err != nil {
		return nil, err
	}
	placeholder.Params = params
	return placeholder, nil
}

// translateMappedIntersection builds the INTERSECTION of a mapped-key
// INTERFACE (the patternProperties/additionalProperties/unreachable-
// definitions params, keyed by propertyNames) and a plain INTERFACE (the
// concrete, properties-derived params). The mapped interface's key type is
// the propertyNames translation itself; narrowing it to exclude the
// concrete keys would need a type-operator AST node this translator's
// closed node set doesn't define, so it's left unnarrowed (see DESIGN.md).
func (r *run) translateMappedIntersection(n *schema.Schema, t tag) (ast.Node, error) {
	placeholder := &ast.Intersection{}
	if c := docComment(n); c != "" {
		placeholder.Comment = c
	}
	name, hasName := r.nameFor(n)
	if t == tagNamedSchema && !hasName {
		return nil, fail(n, CodeMissingName, "named schema requires a derivable standalone name")
	}
	if hasName {
		placeholder.StandaloneName = &name
	}
	r.cache.install(n, t, placeholder)

	keyType, err := r.translate(n.PropertyNames, nil)
	if err != nil {
		return nil, err
	}

	allParams, err := r.buildParams(n)
	if err != nil {
		return nil, err
	}

	var concrete, rest []ast.InterfaceParam
	for _, p := range allParams {
		if !p.IsPatternProperty && !p.IsUnreachableDefinition && p.KeyName != catchAllKeyName {
			concrete = append(concrete, p)
		} else {
			rest = append(rest, p)
		}
	}

	placeholder.Members = []ast.Node{
		&ast.Interface{ParamsKeyType: keyType, Params: rest},
		&ast.Interface{Params: concrete},
	}
	return placeholder, nil
}

func (r *run) translateSuperTypes(extends []*schema.Schema) ([]ast.Node, error) {
	superTypes := make([]ast.Node, 0, len(extends))
	for _, ext := range extends {
		st, err := r.translate(ext, nil)
		if err != nil {
			return nil, err
		}
		if _, ok := standaloneNameOf(st); !ok {
			return nil, fail(ext, CodeInvalidSuperType, "extends target lacks a standalone name")
		}
		superTypes = append(superTypes, st)
	}
	return superTypes, nil
}

// buildParams implements §4.5 steps 2-5: the property-derived params, the
// patternProperties params (with the single-catch-all exception),
// unreachable-definitions params, and the additionalProperties catch-all.
func (r *run) buildParams(n *schema.Schema) ([]ast.InterfaceParam, error) {
	var params []ast.InterfaceParam

	required := make(map[string]bool, len(n.Required))
	for _, k := range n.Required {
		required[k] = true
	}

	if n.Properties != nil {
		for _, key := range n.Properties.Keys() {
			sub, _ := n.Properties.Get(key)
			keyName := key
			propAST, err := r.translate(sub, &keyName)
			if err != nil {
				return nil, err
			}
			params = append(params, ast.InterfaceParam{
				AST:      propAST,
				KeyName:  key,
				Required: required[key],
			})
		}
	}

	if n.PatternProperties != nil && n.PatternProperties.Len() > 0 {
		keys := n.PatternProperties.Keys()
		catchAll := isAbsentOrFalse(n.AdditionalProperties) && len(keys) == 1
		for _, key := range keys {
			sub, _ := n.PatternProperties.Get(key)
			patAST, err := r.translate(sub, nil)
			if err != nil {
				return nil, err
			}
			appendComment(patAST, "matches pattern "+key)
			if catchAll {
				params = append(params, ast.InterfaceParam{AST: patAST, KeyName: catchAllKeyName})
			} else {
				params = append(params, ast.InterfaceParam{AST: patAST, KeyName: key, IsPatternProperty: true})
			}
		}
	}

	if r.opts.UnreachableDefinitions && n.Definitions != nil {
		for _, key := range n.Definitions.Keys() {
			sub, _ := n.Definitions.Get(key)
			defAST, err := r.translate(sub, nil)
			if err != nil {
				return nil, err
			}
			appendComment(defAST, "definitions/"+key)
			params = append(params, ast.InterfaceParam{AST: defAST, KeyName: key, IsUnreachableDefinition: true})
		}
	}

	haveCatchAll := hasCatchAllParam(params)
	switch add := n.AdditionalProperties.(type) {
	case bool:
		if add && !haveCatchAll {
			params = append(params, ast.InterfaceParam{
				AST:     ast.NewPrimitive(r.opts.anyKind()),
				KeyName: catchAllKeyName,
			})
		}
	case *schema.Schema:
		addAST, err := r.translate(add, nil)
		if err != nil {
			return nil, err
		}
		if !haveCatchAll {
			params = append(params, ast.InterfaceParam{AST: addAST, KeyName: catchAllKeyName})
		}
	}

	return params, nil
}

func propertyNamesIsEnumLike(n *schema.Schema) bool {
	if n.PropertyNames == nil {
		return false
	}
	for _, t := range classify(n.PropertyNames) {
		if t == tagNamedEnum {
			return true
		}
	}
	return false
}

func hasConcreteParams(n *schema.Schema) bool {
	return n.Properties != nil && n.Properties.Len() > 0
}

func isAbsentOrFalse(v any) bool {
	if v == nil {
		return true
	}
	b, ok := v.(bool)
	return ok && !b
}

func hasCatchAllParam(params []ast.InterfaceParam) bool {
	for _, p := range params {
		if p.KeyName == catchAllKeyName {
			return true
		}
	}
	return false
}

func appendComment(n ast.Node, text string) {
	if a, ok := n.(interface{ AppendComment(string) }); ok {
		a.AppendComment(text)
	}
}

func standaloneNameOf(n ast.Node) (string, bool) {
	if nn, ok := n.(interface{ HasStandaloneName() (string, bool) }); ok {
		return nn.HasStandaloneName()
	}
	return "", false
}
