package fixture

import "github.com/corebridge/schemaast/schema"

// ObjectBuilder builds an object-shaped schema node: properties,
// patternProperties, additionalProperties, required, and the naming/
// extends attributes a single concrete-keyed OBJECT or INTERFACE needs.
type ObjectBuilder struct {
	s *schema.Schema
}

// Object starts a builder for an object-shaped schema node.
func Object() *ObjectBuilder {
	return &ObjectBuilder{s: &schema.Schema{Type: "object"}}
}

// Named sets Title, the usual standalone-name seed.
func (b *ObjectBuilder) Named(title string) *ObjectBuilder {
	b.s.Title = title
	return b
}

// ID sets the id attribute, an alternate name seed.
func (b *ObjectBuilder) ID(id string) *ObjectBuilder {
	b.s.ID = id
	return b
}

// Describe sets Description.
func (b *ObjectBuilder) Describe(text string) *ObjectBuilder {
	b.s.Description = text
	return b
}

// Comment sets the $comment attribute.
func (b *ObjectBuilder) Comment(text string) *ObjectBuilder {
	b.s.Comment = text
	return b
}

// Prop adds a property. Call Required afterward to mark it required.
func (b *ObjectBuilder) Prop(name string, s *schema.Schema) *ObjectBuilder {
	if b.s.Properties == nil {
		b.s.Properties = schema.NewMap()
	}
	b.s.Properties.Set(name, s)
	return b
}

// Required marks the given property names required.
func (b *ObjectBuilder) Required(names ...string) *ObjectBuilder {
	b.s.Required = append(b.s.Required, names...)
	return b
}

// Pattern adds a patternProperties entry.
func (b *ObjectBuilder) Pattern(pattern string, s *schema.Schema) *ObjectBuilder {
	if b.s.PatternProperties == nil {
		b.s.PatternProperties = schema.NewMap()
	}
	b.s.PatternProperties.Set(pattern, s)
	return b
}

// AdditionalProperties sets additionalProperties to a bool.
func (b *ObjectBuilder) AdditionalProperties(allow bool) *ObjectBuilder {
	b.s.AdditionalProperties = allow
	return b
}

// AdditionalPropertiesSchema sets additionalProperties to a schema.
func (b *ObjectBuilder) AdditionalPropertiesSchema(s *schema.Schema) *ObjectBuilder {
	b.s.AdditionalProperties = s
	return b
}

// PropertyNames sets propertyNames, the mapped-key-interface trigger.
func (b *ObjectBuilder) PropertyNames(s *schema.Schema) *ObjectBuilder {
	b.s.PropertyNames = s
	return b
}

// Def adds a definitions entry.
func (b *ObjectBuilder) Def(name string, s *schema.Schema) *ObjectBuilder {
	if b.s.Definitions == nil {
		b.s.Definitions = schema.NewMap()
	}
	b.s.Definitions.Set(name, s)
	return b
}

// Extends appends extends superTypes.
func (b *ObjectBuilder) Extends(supers ...*schema.Schema) *ObjectBuilder {
	b.s.Extends = append(b.s.Extends, supers...)
	return b
}

// GenericParams sets tsGenericParams.
func (b *ObjectBuilder) GenericParams(names ...string) *ObjectBuilder {
	b.s.TSGenericParams = names
	return b
}

// GenericValues sets tsGenericValues.
func (b *ObjectBuilder) GenericValues(values ...*schema.Schema) *ObjectBuilder {
	b.s.TSGenericValues = values
	return b
}

// Build returns the finished schema node.
func (b *ObjectBuilder) Build() *schema.Schema { return b.s }
