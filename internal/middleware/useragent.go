package middleware

import (
	"httpmsg/internal/http/request"
)

type UserAgent struct {
	value string
}

func NewUserAgent(value string) *UserAgent {
	return &UserAgent{value: value}
}

// HandleRequest leaves a caller supplied User-Agent untouched.
func (ua *UserAgent) HandleRequest(req *request.Request) error {
	if !req.Header("User-Agent").IsAbsent() {
		return nil
	}
	req.ReplaceHeader("User-Agent", ua.value)
	return nil
}
