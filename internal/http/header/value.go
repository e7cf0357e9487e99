package header

import "strings"

// Kind tags which state a header Value is in.
type Kind uint8

const (
	Absent Kind = iota
	Single
	Multi
)

func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Single:
		return "single"
	case Multi:
		return "multi"
	default:
		return "unknown"
	}
}

// Value is the state of one header name: Absent, a Single string, or a Multi
// sequence of at least two strings in insertion order.
type Value struct {
	kind   Kind
	values []string
}

func SingleValue(v string) Value {
	return Value{kind: Single, values: []string{v}}
}

// MultiValue builds a Value from vs. Zero strings give Absent and one string
// gives Single, so a Multi always holds two or more entries.
func MultiValue(vs ...string) Value {
	switch len(vs) {
	case 0:
		return Value{}
	case 1:
		return SingleValue(vs[0])
	}
	values := make([]string, len(vs))
	copy(values, vs)
	return Value{kind: Multi, values: values}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsAbsent() bool {
	return v.kind == Absent
}

func (v Value) Len() int {
	return len(v.values)
}

// String returns the single value, the multi values joined with ", ", or ""
// when absent.
func (v Value) String() string {
	switch v.kind {
	case Single:
		return v.values[0]
	case Multi:
		return strings.Join(v.values, ", ")
	default:
		return ""
	}
}

// Values returns a copy of the stored strings, nil when absent.
func (v Value) Values() []string {
	if v.kind == Absent {
		return nil
	}
	out := make([]string, len(v.values))
	copy(out, v.values)
	return out
}

func (v Value) add(s string) Value {
	switch v.kind {
	case Absent:
		return SingleValue(s)
	case Single:
		return Value{kind: Multi, values: []string{v.values[0], s}}
	default:
		return Value{kind: Multi, values: append(v.values, s)}
	}
}

func (v Value) clone() Value {
	if v.kind == Absent {
		return Value{}
	}
	return Value{kind: v.kind, values: v.Values()}
}
