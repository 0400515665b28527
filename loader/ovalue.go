package loader

// omap is an insertion-ordered string-keyed map of decoded values, the
// loader's raw decode target before a schema.Map conversion. JSON object
// key order must survive the decode step so the translator can later
// preserve it in param lists; map[string]any from a plain Unmarshal
// wouldn't keep it.
type omap struct {
	keys   []string
	values map[string]any
}

func newOmap() *omap {
	return &omap{values: make(map[string]any)}
}

func (o *omap) set(key string, v any) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

func (o *omap) get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *omap) has(key string) bool {
	_, ok := o.values[key]
	return ok
}
