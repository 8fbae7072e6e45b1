// Package render renders the embedded HTML pages of the redirect service.
// Templates use {{dotted.key}} placeholders resolved from a flat map;
// placeholders without a value are left verbatim.
package render

import (
	"embed"
	"fmt"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer holds the parsed page templates
type Renderer struct {
	templates map[string]*fasttemplate.Template
}

// New parses all embedded templates
func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*fasttemplate.Template)}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("can't read embedded templates: %w", err)
	}

	for _, e := range entries {
		raw, err := templateFS.ReadFile("templates/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("can't read template %s: %w", e.Name(), err)
		}

		t, err := fasttemplate.NewTemplate(string(raw), "{{", "}}")
		if err != nil {
			return nil, fmt.Errorf("can't parse template %s: %w", e.Name(), err)
		}

		name := strings.TrimSuffix(e.Name(), ".html")
		r.templates[name] = t
	}

	return r, nil
}

// Render substitutes data into the named template. Unknown template names
// are an error, unknown placeholders are emitted unchanged.
func (r *Renderer) Render(name string, data map[string]string) (string, error) {
	t, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("template %q is not registered", name)
	}

	out := t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		key := strings.TrimSpace(tag)
		if v, ok := data[key]; ok {
			return w.Write([]byte(v))
		}
		return fmt.Fprintf(w, "{{%s}}", tag)
	})

	return out, nil
}
