package middleware

import (
	"fmt"

	"httpmsg/internal/http/request"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

type RequestMiddleware interface {
	HandleRequest(req *request.Request) error
}

type Stats struct {
	Applied uint64
	Failed  uint64
}

// Chain runs request middlewares in registration order. Stages should be
// registered before Apply is called concurrently; the counters are safe to
// read at any time.
type Chain struct {
	logger  zerolog.Logger
	stages  []RequestMiddleware
	applied atomic.Uint64
	failed  atomic.Uint64
}

func NewChain(logger zerolog.Logger) *Chain {
	return &Chain{logger: logger}
}

func (c *Chain) Use(mw RequestMiddleware) *Chain {
	c.stages = append(c.stages, mw)
	return c
}

func (c *Chain) Len() int {
	return len(c.stages)
}

// Apply stops at the first failing stage; stages before it have already
// mutated req.
func (c *Chain) Apply(req *request.Request) error {
	for i, mw := range c.stages {
		if err := mw.HandleRequest(req); err != nil {
			c.failed.Inc()
			c.logger.Warn().
				Err(err).
				Int("stage", i).
				Str("method", req.Method()).
				Str("uri", req.URI()).
				Msg("request middleware failed")
			return fmt.Errorf("middleware %T: %w", mw, err)
		}
	}
	c.applied.Inc()
	c.logger.Debug().
		Int("stages", len(c.stages)).
		Str("method", req.Method()).
		Str("uri", req.URI()).
		Msg("request middlewares applied")
	return nil
}

func (c *Chain) Stats() Stats {
	return Stats{Applied: c.applied.Load(), Failed: c.failed.Load()}
}
