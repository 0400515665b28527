package loader

import (
	"fmt"
	"strconv"

	"github.com/corebridge/schemaast/schema"
)

// build converts one decoded value into a linked schema.Schema node.
// Anything that isn't a JSON object in schema position (a bare scalar
// reached where a schema was expected) becomes a LITERAL leaf instead of
// an error — see the root package's classifier, which special-cases
// exactly that shape.
func build(v any, parent *schema.Schema) (*schema.Schema, error) {
	o, ok := v.(*omap)
	if !ok {
		return &schema.Schema{Parent: parent, Literal: v, IsLiteral: true}, nil
	}
	return buildObject(o, parent)
}

func buildObject(o *omap, parent *schema.Schema) (*schema.Schema, error) {
	n := &schema.Schema{Parent: parent}

	n.ID = getStr(o, "id")
	n.Title = getStr(o, "title")
	n.Description = getStr(o, "description")
	n.Comment = getStr(o, "$comment")
	n.Ref = getStr(o, "$ref")
	n.TSType = getStr(o, "tsType")
	n.TSExtendAllOf, _ = getBool(o, "tsExtendAllOf")
	n.TSGenericParams = getStrList(o, "tsGenericParams")
	n.Required = getStrList(o, "required")
	n.MinItems = getIntPtr(o, "minItems")
	n.MaxItems = getIntPtr(o, "maxItems")

	if t, ok := o.get("type"); ok {
		n.Type = normalizeType(t)
	}

	if e, ok := o.get("enum"); ok {
		if list, ok := e.([]any); ok {
			n.Enum = list
		}
	}
	n.TSEnumNames = getStrList(o, "tsEnumNames")

	if err := buildMapField(o, "properties", n, &n.Properties); err != nil {
		return nil, err
	}
	if err := buildMapField(o, "patternProperties", n, &n.PatternProperties); err != nil {
		return nil, err
	}
	if err := buildMapField(o, "definitions", n, &n.Definitions); err != nil {
		return nil, err
	}

	if pn, ok := o.get("propertyNames"); ok {
		sub, err := build(pn, n)
		if err != nil {
			return nil, err
		}
		n.PropertyNames = sub
	}

	if ap, ok := o.get("additionalProperties"); ok {
		av, err := buildBoolOrSchema(ap, n)
		if err != nil {
			return nil, err
		}
		n.AdditionalProperties = av
	}

	if ai, ok := o.get("additionalItems"); ok {
		av, err := buildBoolOrSchema(ai, n)
		if err != nil {
			return nil, err
		}
		n.AdditionalItems = av
	}

	if items, ok := o.get("items"); ok {
		iv, err := buildItems(items, n)
		if err != nil {
			return nil, err
		}
		n.Items = iv
	}

	var err error
	if n.Extends, err = buildSchemaList(o, "extends", n); err != nil {
		return nil, err
	}
	if n.AllOf, err = buildSchemaList(o, "allOf", n); err != nil {
		return nil, err
	}
	if n.AnyOf, err = buildSchemaList(o, "anyOf", n); err != nil {
		return nil, err
	}
	if n.OneOf, err = buildSchemaList(o, "oneOf", n); err != nil {
		return nil, err
	}
	if n.TSGenericValues, err = buildSchemaList(o, "tsGenericValues", n); err != nil {
		return nil, err
	}

	if ref, ok := o.get("tsEnumRef"); ok {
		sub, err := build(ref, n)
		if err != nil {
			return nil, err
		}
		n.TSEnumRef = sub
	}

	return n, nil
}

func buildMapField(o *omap, key string, parent *schema.Schema, dst **schema.Map) error {
	v, ok := o.get(key)
	if !ok {
		return nil
	}
	om, ok := v.(*omap)
	if !ok {
		return fmt.Errorf("loader: %q must be an object", key)
	}
	m := schema.NewMap()
	for _, k := range om.keys {
		val, _ := om.get(k)
		sub, err := build(val, parent)
		if err != nil {
			return err
		}
		m.Set(k, sub)
	}
	*dst = m
	return nil
}

func buildSchemaList(o *omap, key string, parent *schema.Schema) ([]*schema.Schema, error) {
	v, ok := o.get(key)
	if !ok {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("loader: %q must be an array", key)
	}
	out := make([]*schema.Schema, 0, len(list))
	for _, item := range list {
		sub, err := build(item, parent)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}

// buildBoolOrSchema handles additionalProperties/additionalItems, which
// are normalized upstream (per the root package's external-interfaces
// contract) to either a boolean or a schema, never absent on a
// structurally array/object-shaped node.
func buildBoolOrSchema(v any, parent *schema.Schema) (any, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return build(v, parent)
}

func buildItems(v any, parent *schema.Schema) (any, error) {
	if list, ok := v.([]any); ok {
		out := make([]*schema.Schema, 0, len(list))
		for _, item := range list {
			sub, err := build(item, parent)
			if err != nil {
				return nil, err
			}
			out = append(out, sub)
		}
		return out, nil
	}
	return build(v, parent)
}

func normalizeType(v any) any {
	if list, ok := v.([]any); ok {
		out := make([]string, 0, len(list))
		for _, t := range list {
			if s, ok := t.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	if s, ok := v.(string); ok {
		return s
	}
	return nil
}

func getStr(o *omap, key string) string {
	v, ok := o.get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func getBool(o *omap, key string) (bool, bool) {
	v, ok := o.get(key)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

func getStrList(o *omap, key string) []string {
	v, ok := o.get(key)
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func getIntPtr(o *omap, key string) *int {
	v, ok := o.get(key)
	if !ok {
		return nil
	}
	n, ok := asInt(v)
	if !ok {
		return nil
	}
	return &n
}

// asInt accepts the numeric shapes every supported decode backend can
// produce: plain Go numerics from yaml.v3, and the string-backed Number
// type goccy/go-json and encoding/json both use under UseNumber.
func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case uint64:
		return int(t), true
	case float64:
		return int(t), true
	}
	f, err := strconv.ParseFloat(fmt.Sprintf("%v", v), 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}
