package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeJSONStdlib is decodeJSON's encoding/json counterpart, used when a
// caller pins StdlibJSONDriver. Same token-walking shape, stdlib decoder.
func decodeJSONStdlib(data []byte) (any, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	d := &stdlibWalker{dec: dec}
	v, err := d.value()
	if err != nil {
		return nil, d.warnings, err
	}
	return v, d.warnings, nil
}

type stdlibWalker struct {
	dec      *json.Decoder
	warnings []string
	path     []string
}

func (d *stdlibWalker) value() (any, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return nil, err
	}
	return d.valueFromToken(tok)
}

func (d *stdlibWalker) valueFromToken(tok json.Token) (any, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return d.object()
		case '[':
			return d.array()
		default:
			return nil, fmt.Errorf("loader: unexpected delimiter %q", v)
		}
	case json.Number:
		return v, nil
	default:
		return v, nil
	}
}

func (d *stdlibWalker) object() (any, error) {
	out := newOmap()
	for d.dec.More() {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
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
	if _, err := d.dec.Token(); err != nil { // consume '}'
		return nil, err
	}
	return out, nil
}

func (d *stdlibWalker) array() (any, error) {
	var out []any
	for d.dec.More() {
		val, err := d.value()
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	if _, err := d.dec.Token(); err != nil { // consume ']'
		return nil, err
	}
	return out, nil
}

func (d *stdlibWalker) currentPath() string {
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
