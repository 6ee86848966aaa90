// Package view owns the page templates and static assets, and assembles the data the
// server and the static exporter render.
package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Template names.
const (
	PageTemplate    = "index.html"
	GalleryTemplate = "gallery"
)

// Templates parses the embedded template set.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"asset":      StaticURL,
		"asset_path": ResolveAsset,
		"outbound":   Outbound,
	}).ParseFS(templateFS, "templates/*.html")
}

// Static returns the embedded static assets rooted at their directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Renderer executes templates outside of gin.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := Templates()
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Template exposes the parsed set, for engines that execute it themselves.
func (r *Renderer) Template() *template.Template { return r.tmpl }

// Page writes the full page.
func (r *Renderer) Page(w io.Writer, p *Page) error {
	return r.tmpl.ExecuteTemplate(w, PageTemplate, p)
}

// Gallery writes the gallery fragment.
func (r *Renderer) Gallery(w io.Writer, g GalleryView) error {
	return r.tmpl.ExecuteTemplate(w, GalleryTemplate, g)
}

// StaticURL is the URL of an embedded asset under base.
func StaticURL(base, name string) string {
	return base + "static/" + strings.TrimPrefix(name, "/")
}

// ResolveAsset places a relative asset path under base. Absolute URLs and
// root-relative paths pass through.
func ResolveAsset(base, p string) string {
	if p == "" {
		return ""
	}
	if u, err := url.Parse(p); err == nil && u.Scheme != "" {
		return p
	}
	if strings.HasPrefix(p, "/") {
		return p
	}
	return base + strings.TrimPrefix(p, "./")
}

// Outbound marks a content link as a trusted href. Only relative references and
// the http, https, mailto and tel schemes are accepted; anything else becomes "#".
func Outbound(raw string) template.URL {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return "#"
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return template.URL(raw)
	}
	return "#"
}
