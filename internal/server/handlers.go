package server

import (
	"errors"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/mahdifarro/portfolio/internal/gallery"
	"github.com/mahdifarro/portfolio/internal/session"
	"github.com/mahdifarro/portfolio/internal/theme"
	"github.com/mahdifarro/portfolio/internal/view"
)

func (s *Server) handleIndex(c *gin.Context) {
	settings, g := s.state(c)
	if slug := c.Query("project"); slug != "" {
		// Unknown keys fall back to the stored or default selection.
		_ = g.SelectBySlug(slug)
	}
	s.renderPage(c, settings, g)
}

func (s *Server) handleProject(c *gin.Context) {
	settings, g := s.state(c)
	if err := g.SelectBySlug(c.Param("slug")); err != nil {
		c.String(http.StatusNotFound, "project not found")
		return
	}
	if isHTMX(c) {
		s.renderGallery(c, g)
		return
	}
	s.renderPage(c, settings, g)
}

func (s *Server) handleSelectProject(c *gin.Context) {
	_, g := s.state(c)
	slug := c.PostForm("project")
	if err := g.SelectBySlug(slug); err != nil {
		if errors.Is(err, gallery.ErrUnknownProject) {
			c.String(http.StatusNotFound, "project not found")
			return
		}
		c.String(http.StatusBadRequest, "invalid selection")
		return
	}

	if s.store != nil {
		if id, ok := session.Ensure(c, s.cookieOptions()); ok {
			if err := s.store.SaveProject(c.Request.Context(), id, slug); err != nil {
				s.logger.Warn("saving project selection", "error", err)
			}
		}
	}

	if isHTMX(c) {
		s.renderGallery(c, g)
		return
	}
	c.Redirect(http.StatusSeeOther, s.opts.BasePath+"?project="+url.QueryEscape(slug)+"#projects")
}

func (s *Server) handleToggleTheme(c *gin.Context) {
	settings, _ := s.state(c)
	mode := settings.Toggle()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(themeCookie, string(mode), 0, s.opts.BasePath, "", s.opts.CookieSecure, true)
	if s.store != nil {
		if id, ok := session.Ensure(c, s.cookieOptions()); ok {
			if err := s.store.SaveTheme(c.Request.Context(), id, mode); err != nil {
				s.logger.Warn("saving theme", "error", err)
			}
		}
	}

	if isHTMX(c) {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, s.opts.BasePath)
}

func (s *Server) handleCV(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := filepath.Join(s.opts.AssetsDir, name)
		if !fileExists(path) {
			c.String(http.StatusNotFound, "CV not available")
			return
		}
		c.FileAttachment(path, name)
	}
}

func (s *Server) renderPage(c *gin.Context, settings *theme.Settings, g *gallery.Gallery) {
	page, err := s.builder.Page(settings, g)
	if err != nil {
		s.logger.Error("building page", "error", err)
		c.String(http.StatusInternalServerError, "Sorry, the page could not be rendered.")
		return
	}
	c.HTML(http.StatusOK, view.PageTemplate, page)
}

func (s *Server) renderGallery(c *gin.Context, g *gallery.Gallery) {
	gv, err := s.builder.GalleryView(g)
	if err != nil {
		s.logger.Error("building gallery", "error", err)
		c.String(http.StatusInternalServerError, "Sorry, the projects could not be rendered.")
		return
	}
	c.HTML(http.StatusOK, view.GalleryTemplate, gv)
}
