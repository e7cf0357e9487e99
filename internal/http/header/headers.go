package header

import "sort"

// Headers maps case-sensitive header names to their Value. Names are stored
// exactly as given; no canonicalization is applied. The zero value is ready
// to use; a nil *Headers is read-only.
type Headers struct {
	values map[string]Value
}

func New() *Headers {
	return &Headers{values: make(map[string]Value, 16)}
}

func FromMap(m map[string]string) *Headers {
	h := New()
	for name, val := range m {
		h.values[name] = SingleValue(val)
	}
	return h
}

// FromMultiMap copies m, skipping names with no values.
func FromMultiMap(m map[string][]string) *Headers {
	h := New()
	for name, vals := range m {
		v := MultiValue(vals...)
		if v.IsAbsent() {
			continue
		}
		h.values[name] = v
	}
	return h
}

func (h *Headers) Get(name string) Value {
	if h == nil {
		return Value{}
	}
	return h.values[name]
}

// Add appends value to name: absent becomes single, single becomes multi and
// multi grows by one.
func (h *Headers) Add(name, value string) {
	h.init()
	h.values[name] = h.values[name].add(value)
}

func (h *Headers) Replace(name, value string) {
	h.init()
	h.values[name] = SingleValue(value)
}

func (h *Headers) Remove(name string) {
	if h == nil {
		return
	}
	delete(h.values, name)
}

func (h *Headers) init() {
	if h.values == nil {
		h.values = make(map[string]Value, 16)
	}
}

func (h *Headers) Len() int {
	if h == nil {
		return 0
	}
	return len(h.values)
}

// Names returns the stored names in sorted order.
func (h *Headers) Names() []string {
	if h == nil {
		return nil
	}
	names := make([]string, 0, len(h.values))
	for name := range h.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Each calls fn for every stored name in sorted order.
func (h *Headers) Each(fn func(name string, v Value)) {
	for _, name := range h.Names() {
		fn(name, h.values[name])
	}
}

func (h *Headers) Clone() *Headers {
	c := New()
	if h == nil {
		return c
	}
	for name, v := range h.values {
		c.values[name] = v.clone()
	}
	return c
}
