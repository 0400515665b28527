package schemaast

import "github.com/corebridge/schemaast/schema"

// classify is the schema classifier: a pure function from a schema node to
// an ordered, deduplicated, non-empty list of tags. It consumes only the
// node's own attributes — never the surrounding graph — so the same node
// always classifies the same way regardless of where it's reached from
// (testable property: classifier determinism).
//
// Rules are applied in priority order; each yields zero or one tag, and
// the concatenation in rule order (duplicates removed) is returned. An
// empty result defaults to {tagAny}.
func classify(n *schema.Schema) []tag {
	var tags []tag
	add := func(t tag) {
		for _, existing := range tags {
			if existing == t {
				return
			}
		}
		tags = append(tags, t)
	}

	if n.IsLiteral {
		// translate.go handles literal values before it classifies a node,
		// but other callers (propertyNamesIsEnumLike) can still reach one
		// here; return a sane default instead of a zero-value schema's tags.
		return []tag{tagAny}
	}

	if n.TSType != "" {
		add(tagCustomType)
	}
	if n.Ref != "" {
		add(tagReference)
	}
	if len(n.AllOf) > 0 {
		add(tagAllOf)
	}
	if len(n.AnyOf) > 0 {
		add(tagAnyOf)
	}
	if len(n.OneOf) > 0 {
		add(tagOneOf)
	}
	if n.Enum != nil {
		if len(n.TSEnumNames) > 0 {
			add(tagNamedEnum)
		} else {
			add(tagUnnamedEnum)
		}
	}
	if n.IsMultiType() {
		add(tagUnion)
	}
	if isArrayShaped(n) {
		if n.Items == nil {
			add(tagUntypedArray)
		} else {
			add(tagTypedArray)
		}
	}
	if isObjectShaped(n) {
		if hasOwnNameSeed(n) && n.Properties.Len() > 0 {
			add(tagNamedSchema)
		} else {
			add(tagUnnamedSchema)
		}
	}
	if len(tags) == 0 {
		addPrimitiveTag(n, add)
	}
	return tags
}

// isArrayShaped reports whether a node's own type/items attributes mark it
// as array-shaped, per rule 8.
func isArrayShaped(n *schema.Schema) bool {
	if typeEquals(n, "array") {
		return true
	}
	return n.Items != nil
}

// isObjectShaped reports whether a node's own attributes mark it as
// object-shaped, per rule 9.
func isObjectShaped(n *schema.Schema) bool {
	if typeEquals(n, "object") {
		return true
	}
	if n.Properties != nil && n.Properties.Len() > 0 {
		return true
	}
	if n.PatternProperties != nil && n.PatternProperties.Len() > 0 {
		return true
	}
	if n.AdditionalProperties != nil {
		return true
	}
	if n.PropertyNames != nil {
		return true
	}
	if len(n.Extends) > 0 {
		return true
	}
	if n.Required != nil {
		return true
	}
	return false
}

// hasOwnNameSeed reports whether a node carries a title or id of its own.
// It deliberately does not consult the definitions index: that fallback
// applies during name generation, not classification, so classification
// stays a pure function of the node's own attributes.
func hasOwnNameSeed(n *schema.Schema) bool {
	return n.Title != "" || n.ID != ""
}

// addPrimitiveTag applies rule 10, the final fallback that maps a type
// name to a primitive tag. A node with no type at all and none of rules
// 1-9 matched carries no information to classify on, so it falls to ANY
// rather than OBJECT; a node whose type is present but unrecognized
// still falls to OBJECT.
func addPrimitiveTag(n *schema.Schema, add func(tag)) {
	switch {
	case typeEquals(n, "string"):
		add(tagString)
	case typeEquals(n, "number"), typeEquals(n, "integer"):
		add(tagNumber)
	case typeEquals(n, "boolean"):
		add(tagBoolean)
	case typeEquals(n, "null"):
		add(tagNull)
	case typeEquals(n, "never"):
		add(tagNever)
	case n.Type == nil:
		add(tagAny)
	default:
		add(tagObject)
	}
}

func typeEquals(n *schema.Schema, want string) bool {
	if n.IsMultiType() {
		return false
	}
	names := n.TypeNames()
	return len(names) == 1 && names[0] == want
}
