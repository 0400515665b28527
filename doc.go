package schemaast

// Package schemaast converts a JSON Schema document into a language-neutral
// AST suitable for driving downstream type-declaration code generation.
//
// It provides:
//
// - Translate, the recursive translator that walks a linked schema tree
//   (schema.Schema) and produces an AST (ast.Node), memoizing and breaking
//   cycles as it goes.
// - A stable error model via Issues (path, code, message) for the fatal
//   conditions described in the package's error taxonomy.
// - Options to control the ANY/UNKNOWN sentinel and whether unreachable
//   definitions become interface params.
//
// Design policy:
// - Keep only public APIs in the root package; put the schema data model
//   under schema/ and the AST data model under ast/.
// - Place the schema loader under loader/, test fixtures under fixture/,
//   and the CLI under cmd/schemaast.
// - Prefer black-box testing against public APIs.
//
// Translate does not resolve $ref — the caller is expected to have already
// produced a fully-linked, dereferenced tree (loader parses a document into
// a linked tree but leaves every $ref unresolved). Translate also
// does not normalize defaults (e.g. required: [], additionalProperties:
// false); behavior on un-normalized input is unspecified.
//
// Typical usage:
//
//  root, diag, err := loader.LoadJSON(data)
//  tree, err := schemaast.Translate(root, schemaast.Options{})
