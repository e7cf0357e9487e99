package wire

import (
	"httpmsg/internal/http/header"
	"httpmsg/internal/http/request"
)

const Version = "HTTP/1.1"

// Encode serializes req as an HTTP/1.1 message. Header names are written in
// sorted order with one line per value; nothing is added or validated.
func Encode(req *request.Request) []byte {
	payload := req.Body().Bytes()

	size := len(req.Method()) + 1 + len(req.URI()) + 1 + len(Version) + 2
	req.Headers().Each(func(name string, v header.Value) {
		for _, val := range v.Values() {
			size += len(name) + 2 + len(val) + 2
		}
	})
	size += 2 + len(payload)

	buf := make([]byte, 0, size)
	buf = append(buf, req.Method()...)
	buf = append(buf, ' ')
	buf = append(buf, req.URI()...)
	buf = append(buf, ' ')
	buf = append(buf, Version...)
	buf = append(buf, '\r', '\n')

	req.Headers().Each(func(name string, v header.Value) {
		for _, val := range v.Values() {
			buf = append(buf, name...)
			buf = append(buf, ':', ' ')
			buf = append(buf, val...)
			buf = append(buf, '\r', '\n')
		}
	})

	buf = append(buf, '\r', '\n')
	buf = append(buf, payload...)
	return buf
}
