package render

import (
	"io"
	"strings"

	"httpmsg/internal/http/header"
	"httpmsg/internal/http/request"
	"httpmsg/internal/http/wire"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Renderer produces a human-readable view of a request for terminals.
type Renderer struct {
	startLine lipgloss.Style
	name      lipgloss.Style
	value     lipgloss.Style
	body      lipgloss.Style
	absent    lipgloss.Style
}

// New builds a renderer for out. With plain set, no escape sequences are
// emitted regardless of what the terminal supports.
func New(out io.Writer, plain bool) *Renderer {
	r := lipgloss.NewRenderer(out)
	if plain {
		r.SetColorProfile(termenv.Ascii)
		return &Renderer{
			startLine: r.NewStyle(),
			name:      r.NewStyle(),
			value:     r.NewStyle(),
			body:      r.NewStyle(),
			absent:    r.NewStyle(),
		}
	}
	return newStyled(r)
}

func newStyled(r *lipgloss.Renderer) *Renderer {
	return &Renderer{
		startLine: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")),
		name: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")),
		value: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		body: r.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		absent: r.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#666666")),
	}
}

func (rd *Renderer) Render(req *request.Request) string {
	var b strings.Builder

	b.WriteString(rd.startLine.Render(req.Method() + " " + req.URI() + " " + wire.Version))
	b.WriteString("\n")

	req.Headers().Each(func(name string, v header.Value) {
		for _, val := range v.Values() {
			b.WriteString(rd.name.Render(name))
			b.WriteString(": ")
			b.WriteString(rd.value.Render(val))
			b.WriteString("\n")
		}
	})

	b.WriteString("\n")
	if req.Body().Len() == 0 {
		b.WriteString(rd.absent.Render("(empty body)"))
		b.WriteString("\n")
		return b.String()
	}

	payload := req.Body().Bytes()
	if gjson.ValidBytes(payload) {
		payload = pretty.Pretty(payload)
	}
	b.WriteString(rd.body.Render(strings.TrimRight(string(payload), "\n")))
	b.WriteString("\n")
	return b.String()
}
