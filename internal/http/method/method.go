package method

import "fmt"

var (
	ErrUnknownMethod = fmt.Errorf("unknown method")
)

type Method string

const (
	GET     Method = "GET"
	POST    Method = "POST"
	PUT     Method = "PUT"
	DELETE  Method = "DELETE"
	PATCH   Method = "PATCH"
	OPTIONS Method = "OPTIONS"
	HEAD    Method = "HEAD"
	CONNECT Method = "CONNECT"
	TRACE   Method = "TRACE"
)

var all = []Method{GET, POST, PUT, DELETE, PATCH, OPTIONS, HEAD, CONNECT, TRACE}

// All returns every supported method in a fresh slice.
func All() []Method {
	out := make([]Method, len(all))
	copy(out, all)
	return out
}

func (m Method) String() string {
	return string(m)
}

func (m Method) Valid() bool {
	for _, v := range all {
		if v == m {
			return true
		}
	}
	return false
}

// Parse matches s against the method tokens exactly; tokens are case-sensitive.
func Parse(s string) (Method, error) {
	m := Method(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
	return m, nil
}
