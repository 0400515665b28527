// Package fixture provides a fluent builder DSL for constructing
// schema.Schema trees directly, without loading bytes, for use in tests.
// It is adapted from github.com/reoring/goskema's dsl builder style
// (dsl/object_builder.go, dsl/array.go, dsl/union.go): chained methods
// mutate a builder, Build returns the finished value.
package fixture

import "github.com/corebridge/schemaast/schema"

// String returns a STRING-typed leaf schema.
func String() *schema.Schema { return &schema.Schema{Type: "string"} }

// Number returns a NUMBER-typed leaf schema.
func Number() *schema.Schema { return &schema.Schema{Type: "number"} }

// Boolean returns a BOOLEAN-typed leaf schema.
func Boolean() *schema.Schema { return &schema.Schema{Type: "boolean"} }

// Null returns a NULL-typed leaf schema.
func Null() *schema.Schema { return &schema.Schema{Type: "null"} }

// Any returns a typeless schema, classified ANY.
func Any() *schema.Schema { return &schema.Schema{} }

// Never returns a never-typed leaf schema.
func Never() *schema.Schema { return &schema.Schema{Type: "never"} }

// Literal returns a raw literal leaf, which the translator turns into a
// LITERAL before classification, bypassing the normal schema shape entirely.
func Literal(v any) *schema.Schema { return &schema.Schema{Literal: v, IsLiteral: true} }

// Ref returns a schema node with an unresolved $ref, for exercising the
// translator's fatal CodeUnresolvedReference path.
func Ref(path string) *schema.Schema { return &schema.Schema{Ref: path} }

// TSType returns a custom-type leaf carrying a tsType escape hatch string.
func TSType(text string) *schema.Schema { return &schema.Schema{TSType: text} }
