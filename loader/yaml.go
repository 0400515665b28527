package loader

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// decodeYAML decodes a single YAML document into the same order-preserving
// value tree decodeJSON produces. yaml.v3 exposes the parse tree through
// yaml.Node, whose MappingNode content alternates key/value nodes in
// document order — that ordering is what lets this build an *omap instead
// of the order-losing map[string]any yaml.Unmarshal would hand back.
func decodeYAML(data []byte) (any, []string, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, nil, err
	}
	w := &yamlWalker{}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	v, err := w.value(root)
	return v, w.warnings, err
}

type yamlWalker struct {
	warnings []string
}

func (w *yamlWalker) value(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return w.mapping(n)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := w.value(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	case yaml.AliasNode:
		return w.value(n.Alias)
	default:
		return nil, nil
	}
}

func (w *yamlWalker) mapping(n *yaml.Node) (any, error) {
	out := newOmap()
	for i := 0; i+1 < len(n.Content); i += 2 {
		var key string
		if err := n.Content[i].Decode(&key); err != nil {
			return nil, err
		}
		if out.has(key) {
			w.warnings = append(w.warnings, "duplicate key "+key)
		}
		val, err := w.value(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		out.set(key, val)
	}
	return out, nil
}
