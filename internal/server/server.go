// Package server serves the portfolio page, its HTMX fragments and assets over gin.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/mahdifarro/portfolio/internal/content"
	"github.com/mahdifarro/portfolio/internal/gallery"
	"github.com/mahdifarro/portfolio/internal/logging"
	"github.com/mahdifarro/portfolio/internal/markup"
	"github.com/mahdifarro/portfolio/internal/session"
	"github.com/mahdifarro/portfolio/internal/theme"
	"github.com/mahdifarro/portfolio/internal/view"
)

const (
	themeCookie   = "portfolio_theme"
	sessionMaxAge = 3600 * 24 * 365
)

// PreferenceStore persists a visitor's choices between page loads.
type PreferenceStore interface {
	Get(ctx context.Context, sessionID string) (session.Preferences, bool, error)
	SaveTheme(ctx context.Context, sessionID string, mode theme.Mode) error
	SaveProject(ctx context.Context, sessionID, slug string) error
}

// Options configures a Server. A nil Store disables persistence.
type Options struct {
	BasePath     string
	AssetsDir    string
	CookieSecure bool
	Logger       *slog.Logger
	Store        PreferenceStore
}

// Server renders the portfolio for each request from an immutable registry.
type Server struct {
	reg      *content.Registry
	builder  *view.Builder
	renderer *view.Renderer
	store    PreferenceStore
	logger   *slog.Logger
	opts     Options
	engine   *gin.Engine
}

// New builds the gin engine and registers every route under the base path.
func New(reg *content.Registry, opts Options) (*Server, error) {
	if opts.BasePath == "" {
		opts.BasePath = "/"
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	s := &Server{
		reg:      reg,
		builder:  view.NewBuilder(reg, markup.New(), opts.BasePath, false),
		renderer: renderer,
		store:    opts.Store,
		logger:   opts.Logger,
		opts:     opts,
	}
	s.engine = s.routes()
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(s.logger), session.Middleware())
	r.SetHTMLTemplate(s.renderer.Template())

	base := r.Group(s.opts.BasePath)
	base.GET("/", s.handleIndex)
	base.GET("/projects/:slug", s.handleProject)
	base.POST("/projects/select", s.handleSelectProject)
	base.POST("/theme/toggle", s.handleToggleTheme)
	base.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	base.StaticFS("/static", http.FS(view.Static()))
	if s.opts.AssetsDir != "" {
		base.Static("/images", s.opts.AssetsDir)
	}
	if cv := s.reg.Profile().CV; cv != "" && filepath.Base(cv) == cv {
		base.GET("/"+cv, s.handleCV(cv))
	}
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", addr, "base_path", s.opts.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// state resolves the visitor's theme and gallery from cookie and store.
func (s *Server) state(c *gin.Context) (*theme.Settings, *gallery.Gallery) {
	mode := theme.Default
	g := s.builder.NewGallery()

	if prefs, ok := s.loadPreferences(c); ok {
		mode = prefs.Theme
		if prefs.ProjectSlug != "" {
			_ = g.SelectBySlug(prefs.ProjectSlug)
		}
	}
	if v, err := c.Cookie(themeCookie); err == nil {
		if m, err := theme.ParseMode(v); err == nil {
			mode = m
		}
	}
	return theme.NewSettings(mode), g
}

func (s *Server) loadPreferences(c *gin.Context) (session.Preferences, bool) {
	if s.store == nil {
		return session.Preferences{}, false
	}
	id, ok := session.ID(c)
	if !ok {
		return session.Preferences{}, false
	}
	prefs, found, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		s.logger.Warn("loading preferences", "error", err)
		return session.Preferences{}, false
	}
	return prefs, found
}

func (s *Server) cookieOptions() session.CookieOptions {
	return session.CookieOptions{Path: s.opts.BasePath, Secure: s.opts.CookieSecure, MaxAge: sessionMaxAge}
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
