package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"httpmsg/internal/config"
	"httpmsg/internal/http/method"
	"httpmsg/internal/http/request"
	"httpmsg/internal/http/wire"
	"httpmsg/internal/logger"
	"httpmsg/internal/middleware"
	"httpmsg/internal/render"
	"httpmsg/internal/version"

	"github.com/rs/zerolog"
)

type headerFlags []string

func (h *headerFlags) String() string {
	return strings.Join(*h, ", ")
}

func (h *headerFlags) Set(v string) error {
	*h = append(*h, v)
	return nil
}

type options struct {
	method   string
	add      headerFlags
	replace  headerFlags
	data     string
	from     string
	pretty   bool
	uri      string
	showVers bool
}

func main() {
	cfg, err := config.MustLoad()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}
	if opts.showVers {
		fmt.Println(version.GetVersion())
		return
	}

	if err := run(cfg, log, opts, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to build request")
	}
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("httpmsg", flag.ContinueOnError)
	fs.StringVar(&opts.method, "X", string(method.GET), "request method")
	fs.Var(&opts.add, "H", "append a header value, \"Name: value\" (repeatable)")
	fs.Var(&opts.replace, "R", "replace a header with a single value, \"Name: value\" (repeatable)")
	fs.StringVar(&opts.data, "d", "", "request body")
	fs.StringVar(&opts.from, "from", "", "client host:port recorded in X-Forwarded-For")
	fs.BoolVar(&opts.pretty, "pretty", false, "render a readable view instead of wire bytes")
	fs.BoolVar(&opts.showVers, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.showVers {
		return opts, nil
	}
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one URI argument, got %d", fs.NArg())
	}
	opts.uri = fs.Arg(0)
	return opts, nil
}

func splitHeader(raw string) (string, string, error) {
	idx := strings.IndexByte(raw, ':')
	if idx == -1 {
		return "", "", fmt.Errorf("header %q: missing colon", raw)
	}
	return strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+1:]), nil
}

func buildRequest(opts *options) (*request.Request, error) {
	m, err := method.Parse(opts.method)
	if err != nil {
		return nil, err
	}

	req := request.New(m, opts.uri)
	for _, raw := range opts.add {
		name, value, err := splitHeader(raw)
		if err != nil {
			return nil, err
		}
		req.SetHeader(name, value)
	}
	for _, raw := range opts.replace {
		name, value, err := splitHeader(raw)
		if err != nil {
			return nil, err
		}
		req.ReplaceHeader(name, value)
	}
	if opts.data != "" {
		req.SetBodyString(opts.data)
	}
	return req, nil
}

func buildChain(cfg config.Config, log zerolog.Logger, from string) (*middleware.Chain, error) {
	chain := middleware.NewChain(log).Use(middleware.NewUserAgent(cfg.UserAgent()))
	if cfg.RequestIDEnabled() {
		chain.Use(middleware.NewRequestID(cfg.RequestIDHeader()))
	}
	if from != "" {
		addr, err := net.ResolveTCPAddr("tcp", from)
		if err != nil {
			return nil, fmt.Errorf("resolve -from: %w", err)
		}
		chain.Use(middleware.NewForwardedFor(addr))
	}
	return chain, nil
}

func run(cfg config.Config, log zerolog.Logger, opts *options, out io.Writer) error {
	req, err := buildRequest(opts)
	if err != nil {
		return err
	}

	chain, err := buildChain(cfg, log, opts.from)
	if err != nil {
		return err
	}
	if err := chain.Apply(req); err != nil {
		return err
	}

	log.Debug().
		Str("method", req.Method()).
		Str("uri", req.URI()).
		Int("headers", req.Headers().Len()).
		Int("body", req.Body().Len()).
		Msg("request built")

	if opts.pretty {
		_, err = io.WriteString(out, render.New(out, cfg.NoColor()).Render(req))
		return err
	}
	_, err = out.Write(wire.Encode(req))
	return err
}
