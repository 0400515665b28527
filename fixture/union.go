package fixture

import "github.com/corebridge/schemaast/schema"

// AnyOf returns a schema with the given anyOf members.
func AnyOf(members ...*schema.Schema) *schema.Schema {
	return &schema.Schema{AnyOf: members}
}

// OneOf returns a schema with the given oneOf members.
func OneOf(members ...*schema.Schema) *schema.Schema {
	return &schema.Schema{OneOf: members}
}

// AllOf returns a schema with the given allOf members.
func AllOf(members ...*schema.Schema) *schema.Schema {
	return &schema.Schema{AllOf: members}
}

// ExtendAllOf marks an allOf member as the one carrying the concrete
// properties a tsExtendAllOf-style INTERFACE-with-SuperTypes should inherit
// its params from.
func ExtendAllOf(s *schema.Schema) *schema.Schema {
	s.TSExtendAllOf = true
	return s
}

// MultiType returns a schema whose type attribute is a list of type names,
// the Schema Classifier's UNION trigger (rule 7).
func MultiType(names ...string) *schema.Schema {
	return &schema.Schema{Type: names}
}

// Enum returns an unnamed enum: a bare list of literal values.
func Enum(values ...any) *schema.Schema {
	return &schema.Schema{Enum: values}
}

// NamedEnum returns a named enum: parallel enum values and tsEnumNames,
// which requires a standalone name to translate.
func NamedEnum(title string, values []any, names []string) *schema.Schema {
	return &schema.Schema{Title: title, Enum: values, TSEnumNames: names}
}

// EnumRef returns an unnamed enum whose members pick from an existing
// named enum via tsEnumRef.
func EnumRef(ref *schema.Schema, values ...any) *schema.Schema {
	return &schema.Schema{Enum: values, TSEnumRef: ref}
}
