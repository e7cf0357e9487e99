package wire

import (
	"bytes"
	"testing"

	"httpmsg/internal/http/body"
	"httpmsg/internal/http/method"
	"httpmsg/internal/http/request"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		req    *request.Request
		expect string
	}{
		{
			name:   "bare request",
			req:    request.New(method.GET, "/"),
			expect: "GET / HTTP/1.1\r\n\r\n",
		},
		{
			name: "sorted headers",
			req: request.New(method.GET, "/path").
				SetHeader("X-Custom", "value").
				SetHeader("Host", "example.com"),
			expect: "GET /path HTTP/1.1\r\nHost: example.com\r\nX-Custom: value\r\n\r\n",
		},
		{
			name: "multi value emits one line per value",
			req: request.New(method.POST, "/x").
				SetHeader("Accept", "a").
				SetHeader("Accept", "b").
				SetBodyString("hello"),
			expect: "POST /x HTTP/1.1\r\nAccept: a\r\nAccept: b\r\n\r\nhello",
		},
		{
			name: "replaced header emits once",
			req: request.New(method.PUT, "/y").
				SetHeader("Accept", "a").
				SetHeader("Accept", "b").
				ReplaceHeader("Accept", "c"),
			expect: "PUT /y HTTP/1.1\r\nAccept: c\r\n\r\n",
		},
		{
			name:   "binary body",
			req:    request.New(method.POST, "/bin", request.WithBody(body.New([]byte{0x00, 0xff}))),
			expect: "POST /bin HTTP/1.1\r\n\r\n\x00\xff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, string(Encode(tt.req)))
		})
	}
}

func TestEncodeExactCapacity(t *testing.T) {
	req := request.New(method.GET, "/").
		SetHeader("Accept", "a").
		SetHeader("Accept", "bb").
		SetBodyString("body")

	out := Encode(req)
	assert.Equal(t, len(out), cap(out))
	assert.True(t, bytes.HasSuffix(out, []byte("\r\n\r\nbody")))
}

func TestEncodeDoesNotMutate(t *testing.T) {
	req := request.New(method.GET, "/").SetHeader("Accept", "a")
	_ = Encode(req)
	assert.Equal(t, 1, req.Headers().Len())
	assert.True(t, req.Header("Content-Length").IsAbsent())
}
