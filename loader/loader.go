// Package loader decodes a JSON or YAML document into a schema.Schema
// tree ready for the root package's Translate. It parses structure and
// links parents; it does not resolve $ref (including tsEnumRef) or
// normalize additionalProperties/required/minItems defaults — both are
// the external dereferencer/normalizer's job per the root package's doc
// comment. A document with an unresolved $ref loads without error; it
// only becomes an error once Translate reaches it.
package loader

import (
	"bytes"

	"github.com/corebridge/schemaast/schema"
)

// Diag carries non-fatal warnings observed while decoding, mirroring the
// Diag/simpleDiag split the kubeopenapi importer in the pack uses for the
// same purpose: surfacing soft problems (here, duplicate object keys)
// without failing the load.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ warnings []string }

func (d *simpleDiag) HasWarnings() bool  { return len(d.warnings) > 0 }
func (d *simpleDiag) Warnings() []string { return append([]string(nil), d.warnings...) }

// LoadJSON decodes a JSON Schema document via the active Driver (goccy/go-json
// by default; see SetJSONDriver).
func LoadJSON(data []byte) (*schema.Schema, Diag, error) {
	return load(data, getDriver().Decode)
}

// LoadYAML decodes a single-document YAML Schema document via yaml.v3.
func LoadYAML(data []byte) (*schema.Schema, Diag, error) {
	return load(data, decodeYAML)
}

// Load sniffs data's format by its first non-whitespace byte ('{' or '['
// means JSON) and dispatches to LoadJSON or LoadYAML. Schema documents are
// always an object at the root in practice, but the array case is sniffed
// too since nothing downstream depends on the root being an object.
func Load(data []byte) (*schema.Schema, Diag, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return LoadJSON(data)
	}
	return LoadYAML(data)
}

type decodeFunc func([]byte) (any, []string, error)

func load(data []byte, decode decodeFunc) (*schema.Schema, Diag, error) {
	v, warnings, err := decode(data)
	if err != nil {
		return nil, &simpleDiag{warnings: warnings}, err
	}
	root, err := build(v, nil)
	if err != nil {
		return nil, &simpleDiag{warnings: warnings}, err
	}
	return root, &simpleDiag{warnings: warnings}, nil
}
