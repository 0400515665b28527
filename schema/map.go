package schema

// Map is an insertion-ordered string-keyed map of *Schema. JSON object key
// order is not preserved by Go's map type, and the translator's param lists
// must mirror the input document's property order (see the root package's
// concurrency/ordering notes), so Properties, PatternProperties and
// Definitions use this instead of map[string]*Schema.
type Map struct {
	keys   []string
	values map[string]*Schema
}

// NewMap returns an empty ordered map.
func NewMap() *Map {
	return &Map{values: make(map[string]*Schema)}
}

// Set inserts or overwrites the schema at name, preserving the original
// position on overwrite.
func (m *Map) Set(name string, s *Schema) {
	if m.values == nil {
		m.values = make(map[string]*Schema)
	}
	if _, exists := m.values[name]; !exists {
		m.keys = append(m.keys, name)
	}
	m.values[name] = s
}

// Get looks up a schema by name.
func (m *Map) Get(name string) (*Schema, bool) {
	if m == nil {
		return nil, false
	}
	s, ok := m.values[name]
	return s, ok
}

// Keys returns property names in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len returns the number of entries, treating a nil Map as empty.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Each calls fn for every entry in insertion order.
func (m *Map) Each(fn func(name string, s *Schema)) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}
