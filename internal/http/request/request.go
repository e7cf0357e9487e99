// Package request holds the HTTP request message model shared by every
// collaborator that builds, inspects or serializes requests.
//
// A Request is mutated in place; each mutator returns the receiver so calls
// can be chained. It is meant for a single owner at a time and does no
// locking of its own.
package request

import (
	"httpmsg/internal/http/body"
	"httpmsg/internal/http/header"
	"httpmsg/internal/http/method"
)

type Request struct {
	method  string
	uri     string
	headers *header.Headers
	body    *body.Body
}

type Option func(*Request)

// WithBody sets the initial body. A nil body leaves the empty default.
func WithBody(b *body.Body) Option {
	return func(r *Request) {
		if b != nil {
			r.body = b
		}
	}
}

// WithHeaders sets the initial headers. Nil leaves an empty mapping.
func WithHeaders(h *header.Headers) Option {
	return func(r *Request) {
		if h != nil {
			r.headers = h
		}
	}
}

// New builds a request for m and uri. The uri is stored verbatim.
func New(m method.Method, uri string, opts ...Option) *Request {
	r := &Request{
		method:  m.String(),
		uri:     uri,
		headers: header.New(),
		body:    body.Empty(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Request) Method() string {
	return r.method
}

func (r *Request) URI() string {
	return r.uri
}

func (r *Request) SetURI(uri string) *Request {
	r.uri = uri
	return r
}

// Headers exposes the owned header mapping for readers.
func (r *Request) Headers() *header.Headers {
	return r.headers
}

func (r *Request) Header(name string) header.Value {
	return r.headers.Get(name)
}

// SetHeader appends value to name. Repeated calls on the same name build up
// a multi value in call order; use ReplaceHeader to overwrite.
func (r *Request) SetHeader(name, value string) *Request {
	r.headers.Add(name, value)
	return r
}

func (r *Request) ReplaceHeader(name, value string) *Request {
	r.headers.Replace(name, value)
	return r
}

func (r *Request) RemoveHeader(name string) *Request {
	r.headers.Remove(name)
	return r
}

func (r *Request) Body() *body.Body {
	return r.body
}

// SetBody swaps the owned body for b. A nil b is replaced with an empty body.
func (r *Request) SetBody(b *body.Body) *Request {
	if b == nil {
		b = body.Empty()
	}
	r.body = b
	return r
}

// SetBodyString overwrites the payload of the current body with s.
func (r *Request) SetBodyString(s string) *Request {
	r.body.SetString(s)
	return r
}

func (r *Request) BodyString() string {
	return r.body.String()
}
