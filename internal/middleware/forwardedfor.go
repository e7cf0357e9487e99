package middleware

import (
	"net"

	"httpmsg/internal/http/request"
)

type ForwardedFor struct {
	addr net.Addr
}

func NewForwardedFor(addr net.Addr) *ForwardedFor {
	return &ForwardedFor{addr: addr}
}

// HandleRequest appends the client host, so a chain of proxies accumulates
// one X-Forwarded-For value per hop.
func (ff *ForwardedFor) HandleRequest(req *request.Request) error {
	host, _, err := net.SplitHostPort(ff.addr.String())
	if err != nil {
		return err
	}
	req.SetHeader("X-Forwarded-For", host)
	return nil
}
