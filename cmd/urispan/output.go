package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/kpumuk/urispan/internal/uri"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// styles holds color formatters for table output.
type styles struct {
	uri      *color.Color
	ok       *color.Color
	fallback *color.Color
	failure  *color.Color
	kind     *color.Color
	span     *color.Color
	text     *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		uri:      color.New(color.Bold),
		ok:       color.New(color.FgHiGreen),
		fallback: color.New(color.FgYellow),
		failure:  color.New(color.FgHiRed),
		kind:     color.New(color.FgHiBlue),
		span:     color.New(color.FgHiBlack),
		text:     color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{s.uri, s.ok, s.fallback, s.failure, s.kind, s.span, s.text} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// colorEnabled resolves --color. "auto" colors terminals unless NO_COLOR is set.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeTable(w io.Writer, results []result, st *styles) {
	for i, r := range results {
		if i > 0 {
			writef(w, "\n")
		}
		if r.err != nil {
			writef(w, "%s  %s\n", st.uri.Sprint(r.in.text), st.failure.Sprint("failed"))
			continue
		}

		status := st.ok.Sprint("relocated")
		if !r.relocated {
			status = st.fallback.Sprint("split again")
		}
		writef(w, "%s  %s\n", st.uri.Sprint(r.uri.String()), status)

		parts := r.uri.Parts()
		for _, k := range parts.Present() {
			s, _ := parts.Get(k).Span()
			writef(w, "  %s %s %s\n",
				st.kind.Sprintf("%-9s", k),
				st.span.Sprintf("%-9s", s.Range()),
				st.text.Sprintf("%q", s.Text()),
			)
		}
	}
}

type yamlResult struct {
	Source     string          `yaml:"source"`
	URI        string          `yaml:"uri"`
	Relocated  bool            `yaml:"relocated"`
	Fallback   string          `yaml:"fallback,omitempty"`
	Error      string          `yaml:"error,omitempty"`
	Components []yamlComponent `yaml:"components,omitempty"`
}

type yamlComponent struct {
	Kind  string `yaml:"kind"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Text  string `yaml:"text"`
}

func writeYAML(w io.Writer, results []result) error {
	docs := make([]yamlResult, 0, len(results))
	for _, r := range results {
		doc := yamlResult{
			Source:    r.in.location(0),
			URI:       r.in.text,
			Relocated: r.relocated,
		}
		if r.err != nil {
			doc.Error = r.err.Error()
			docs = append(docs, doc)
			continue
		}
		doc.URI = r.uri.String()
		if r.fallback != nil {
			doc.Fallback = r.fallback.Error()
		}
		doc.Components = components(r.uri.Parts())
		docs = append(docs, doc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func components(p uri.Parts) []yamlComponent {
	var out []yamlComponent
	for _, k := range p.Present() {
		s, _ := p.Get(k).Span()
		out = append(out, yamlComponent{
			Kind:  k.String(),
			Start: int(s.Range().Start),
			End:   int(s.Range().End),
			Text:  s.Text(),
		})
	}
	return out
}
