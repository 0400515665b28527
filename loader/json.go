package loader

import (
	"bytes"
	"fmt"

	j "github.com/goccy/go-json"
)

// decodeJSON walks data with goccy/go-json's token reader, the same API the
// teacher's gojson source driver uses to stream tokens, and assembles an
// order-preserving value tree (*omap for objects, []any for arrays, scalars
// otherwise) instead of feeding an engine.TokenSource. A repeated key within
// one object is kept (last value wins, matching encoding/json) but recorded
// as a warning rather than silently dropped.
func decodeJSON(data []byte) (any, []string, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	d := &jsonWalker{dec: dec}
	v, err := d.value()
	if err != nil {
		return nil, d.warnings, err
	}
	return v, d.warnings, nil
}

type jsonWalker struct {
	dec      *j.Decoder
	warnings []string
	path     []string
}

func (d *jsonWalker) value() (any, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return nil, err
	}
	return d.valueFromToken(tok)
}

func (d *jsonWalker) valueFromToken(tok j.Token) (any, error) {
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			return d.object()
		case '[':
			return d.array()
		default:
			return nil, fmt.Errorf("loader: unexpected delimiter %q", v)
		}
	case j.Number:
		return v, nil
	default:
		return v, nil // string, bool, nil all decode to their Go type directly
	}
}

func (d *jsonWalker) object() (any, error) {
	out := newOmap()
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(j.Delim); ok && delim == '}' {
			return out, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("loader: expected object key, got %v", tok)
		}
		if out.has(key) {
			d.warnings = append(d.warnings, fmt.Sprintf("%s: duplicate key %q", d.currentPath(), key))
		}
		d.path = append(d.path, key)
		val, err := d.value()
		d.path = d.path[:len(d.path)-1]
		if err != nil {
			return nil, err
		}
		out.set(key, val)
	}
}

func (d *jsonWalker) array() (any, error) {
	var out []any
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(j.Delim); ok && delim == ']' {
			return out, nil
		}
		val, err := d.valueFromToken(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
}

func (d *jsonWalker) currentPath() string {
	if len(d.path) == 0 {
		return "/"
	}
	p := "/"
	for i, seg := range d.path {
		if i > 0 {
			p += "/"
		}
		p += seg
	}
	return p
}
