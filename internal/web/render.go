package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/pkg/errors"

	"github.com/Zachkp/cyber-portfolio/internal/contact"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var embeddedStatic embed.FS

func staticFS() fs.FS {
	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// StaticFS exposes the embedded assets for the static export.
func StaticFS() fs.FS {
	return staticFS()
}

var funcs = template.FuncMap{
	"diameter": func(r float64) float64 { return 2 * r },
	"join":     strings.Join,
	"list":     func(v ...string) []string { return v },
	"panel":    func(s contact.Snapshot) formView { return formView{Form: s} },
}

// Renderer owns the parsed templates. gin renders through the same set.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template into w.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return errors.Wrapf(err, "failed to render %s", name)
	}
	return nil
}

// RenderPage writes the full composed page, as served on "/".
func (s *Server) RenderPage(w io.Writer) error {
	page, err := Compose(s.content, s.images, s.cfg.Spring)
	if err != nil {
		return err
	}
	return s.renderer.Render(w, "index.html", page)
}
