// Package gallery holds the project grid and the single active-project selection
// shown in the detail drawer.
package gallery

import (
	"errors"
	"html/template"
	"slices"

	"github.com/mahdifarro/portfolio/internal/content"
)

// ErrUnknownProject is returned when a selection names no project in the gallery.
var ErrUnknownProject = errors.New("unknown project")

// DescriptionRenderer turns a bullet-formatted description into HTML.
type DescriptionRenderer interface {
	Render(text string) (template.HTML, error)
}

// Gallery is one visitor's view of the project list. It is not safe for concurrent
// mutation; build one per request.
type Gallery struct {
	projects []content.Project
	active   int
}

// Card is a grid entry.
type Card struct {
	Project  content.Project
	Slug     string
	Selected bool
}

// Detail is what the drawer shows for the active project.
type Detail struct {
	Name        string
	Slug        string
	Description template.HTML
	Tags        []string
	Link        string
	Image       string
}

// New starts with the first project active, or nothing active when empty.
func New(projects []content.Project) *Gallery {
	g := &Gallery{projects: slices.Clone(projects), active: -1}
	if len(g.projects) > 0 {
		g.active = 0
	}
	return g
}

// SelectProject makes p active. p must be one of the gallery's projects, matched by name.
func (g *Gallery) SelectProject(p content.Project) error {
	for i := range g.projects {
		if g.projects[i].Name == p.Name {
			g.active = i
			return nil
		}
	}
	return ErrUnknownProject
}

// SelectBySlug makes the project with the given URL key active.
func (g *Gallery) SelectBySlug(slug string) error {
	for i := range g.projects {
		if g.projects[i].Slug() == slug {
			g.active = i
			return nil
		}
	}
	return ErrUnknownProject
}

// Active returns the active project.
func (g *Gallery) Active() (content.Project, bool) {
	if g.active < 0 || g.active >= len(g.projects) {
		return content.Project{}, false
	}
	return g.projects[g.active], true
}

// Cards lists every project in order; only the active one is Selected.
func (g *Gallery) Cards() []Card {
	cards := make([]Card, len(g.projects))
	for i, p := range g.projects {
		cards[i] = Card{Project: p, Slug: p.Slug(), Selected: i == g.active}
	}
	return cards
}

// Detail describes the active project, or returns nil when nothing is active.
func (g *Gallery) Detail(r DescriptionRenderer) (*Detail, error) {
	p, ok := g.Active()
	if !ok {
		return nil, nil
	}
	d := &Detail{
		Name:  p.Name,
		Slug:  p.Slug(),
		Tags:  slices.Clone(p.Tags),
		Link:  p.Link,
		Image: p.Image,
	}
	if r != nil {
		html, err := r.Render(p.Description)
		if err != nil {
			return nil, err
		}
		d.Description = html
	} else {
		d.Description = template.HTML(template.HTMLEscapeString(p.Description))
	}
	return d, nil
}
