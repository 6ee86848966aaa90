package view

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mahdifarro/portfolio/internal/animation"
	"github.com/mahdifarro/portfolio/internal/content"
	"github.com/mahdifarro/portfolio/internal/gallery"
	"github.com/mahdifarro/portfolio/internal/theme"
	"github.com/mahdifarro/portfolio/internal/timeline"
)

// Page is the data for the full page template.
type Page struct {
	Base         string
	Static       bool
	Profile      content.Profile
	Roles        string
	Sections     []content.Section
	Gallery      GalleryView
	Timeline     timeline.Layout
	Publications []content.Publication
	Honors       []content.Honor
	Theme        *theme.Settings
	Motion       string
	CVHref       string
	Year         int
}

// GalleryView is the data for the gallery fragment.
type GalleryView struct {
	Base   string
	Static bool
	Cards  []gallery.Card
	Detail *gallery.Detail
}

// Builder assembles pages from one registry. The timeline layout is computed once.
type Builder struct {
	reg      *content.Registry
	md       gallery.DescriptionRenderer
	base     string
	static   bool
	timeline timeline.Layout
	now      func() time.Time
}

// NewBuilder creates a Builder for pages served under base. Static pages link to
// per-project pages instead of posting selections.
func NewBuilder(reg *content.Registry, md gallery.DescriptionRenderer, base string, static bool) *Builder {
	return &Builder{
		reg:      reg,
		md:       md,
		base:     base,
		static:   static,
		timeline: timeline.Build(reg.Timeline()),
		now:      time.Now,
	}
}

// NewGallery returns a fresh gallery for the registry's projects.
func (b *Builder) NewGallery() *gallery.Gallery {
	return gallery.New(b.reg.Projects())
}

// GalleryView renders g's current state.
func (b *Builder) GalleryView(g *gallery.Gallery) (GalleryView, error) {
	detail, err := g.Detail(b.md)
	if err != nil {
		return GalleryView{}, fmt.Errorf("rendering project detail: %w", err)
	}
	return GalleryView{Base: b.base, Static: b.static, Cards: g.Cards(), Detail: detail}, nil
}

// Page assembles the full page for the given settings and gallery state.
func (b *Builder) Page(settings *theme.Settings, g *gallery.Gallery) (*Page, error) {
	gv, err := b.GalleryView(g)
	if err != nil {
		return nil, err
	}
	motion, err := heroMotion()
	if err != nil {
		return nil, err
	}
	profile := b.reg.Profile()
	cv := ""
	if profile.CV != "" {
		cv = ResolveAsset(b.base, profile.CV)
	}
	return &Page{
		Base:         b.base,
		Static:       b.static,
		Profile:      profile,
		Roles:        strings.Join(profile.Roles, " · "),
		Sections:     b.reg.Sections(),
		Gallery:      gv,
		Timeline:     b.timeline,
		Publications: b.reg.Publications(),
		Honors:       b.reg.Honors(),
		Theme:        settings,
		Motion:       motion,
		CVHref:       cv,
		Year:         b.now().Year(),
	}, nil
}

// heroMotion mounts the hero effects for one render, serialises them and unmounts.
func heroMotion() (string, error) {
	manifest := animation.NewManifest()
	scope := animation.NewScope(manifest)
	defer scope.Close()

	if err := animation.MountHero(scope); err != nil {
		return "", fmt.Errorf("registering hero motion: %w", err)
	}
	raw, err := json.Marshal(manifest)
	if err != nil {
		return "", fmt.Errorf("encoding motion manifest: %w", err)
	}
	return string(raw), nil
}
