package middleware

import (
	"httpmsg/internal/http/request"

	"github.com/google/uuid"
)

type RequestID struct {
	header string
	gen    func() string
}

func NewRequestID(header string) *RequestID {
	return &RequestID{header: header, gen: uuid.NewString}
}

// HandleRequest overwrites any previous id so re-running the stage never
// leaves more than one.
func (rid *RequestID) HandleRequest(req *request.Request) error {
	req.ReplaceHeader(rid.header, rid.gen())
	return nil
}
