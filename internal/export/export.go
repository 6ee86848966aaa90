// Package export writes the portfolio as a static site for hosts without a server.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/mahdifarro/portfolio/internal/content"
	"github.com/mahdifarro/portfolio/internal/markup"
	"github.com/mahdifarro/portfolio/internal/theme"
	"github.com/mahdifarro/portfolio/internal/view"
)

// DefaultBasePath is where the site is published on GitHub Pages.
const DefaultBasePath = "/mahdifarro.github.io/"

// DefaultIncludes selects the asset files copied next to the pages.
var DefaultIncludes = []string{"**/*.{png,jpg,jpeg,gif,svg,webp,ico}"}

// Options configures a Generator.
type Options struct {
	OutDir    string
	BasePath  string
	AssetsDir string
	Include   []string
	Workers   int
	Reporter  Reporter
	Logger    *slog.Logger
}

// Result summarises an export.
type Result struct {
	Pages  int
	Assets int
}

// Generator renders every page state of the portfolio to disk.
type Generator struct {
	reg      *content.Registry
	opts     Options
	builder  *view.Builder
	renderer *view.Renderer
}

type pageJob struct {
	rel  string
	slug string
}

// New creates a Generator. Empty options fall back to the package defaults.
func New(reg *content.Registry, opts Options) (*Generator, error) {
	if opts.OutDir == "" {
		return nil, errors.New("output directory is required")
	}
	if opts.BasePath == "" {
		opts.BasePath = DefaultBasePath
	}
	if len(opts.Include) == 0 {
		opts.Include = DefaultIncludes
	}
	for _, pattern := range opts.Include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern %q", pattern)
		}
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	return &Generator{
		reg:      reg,
		opts:     opts,
		builder:  view.NewBuilder(reg, markup.New(), opts.BasePath, true),
		renderer: renderer,
	}, nil
}

// Generate writes index.html, one page per project selection, the embedded
// static files and the matching asset files.
func (g *Generator) Generate(ctx context.Context) (Result, error) {
	if err := os.MkdirAll(g.opts.OutDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating output dir: %w", err)
	}

	jobs := []pageJob{{rel: "index.html"}}
	for _, p := range g.reg.Projects() {
		jobs = append(jobs, pageJob{rel: path.Join("projects", p.Slug(), "index.html"), slug: p.Slug()})
	}

	rep := g.opts.Reporter
	rep.Start(len(jobs))
	var (
		mu   sync.Mutex
		done int
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Workers)
	for _, job := range jobs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := g.writePage(job); err != nil {
				return fmt.Errorf("rendering %s: %w", job.rel, err)
			}
			mu.Lock()
			done++
			rep.Update(done, job.rel)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}
	rep.Finish()

	if err := copyFS(view.Static(), filepath.Join(g.opts.OutDir, "static")); err != nil {
		return Result{}, fmt.Errorf("copying static files: %w", err)
	}

	assets, err := g.copyAssets()
	if err != nil {
		return Result{}, err
	}

	g.opts.Logger.Info("site exported",
		"out", g.opts.OutDir,
		"base_path", g.opts.BasePath,
		"pages", len(jobs),
		"assets", assets,
	)
	return Result{Pages: len(jobs), Assets: assets}, nil
}

func (g *Generator) writePage(job pageJob) error {
	gal := g.builder.NewGallery()
	if job.slug != "" {
		if err := gal.SelectBySlug(job.slug); err != nil {
			return err
		}
	}
	page, err := g.builder.Page(theme.NewSettings(theme.Default), gal)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := g.renderer.Page(&buf, page); err != nil {
		return err
	}
	return writeFile(filepath.Join(g.opts.OutDir, filepath.FromSlash(job.rel)), buf.Bytes())
}

// copyAssets copies files under AssetsDir matching the include globs into
// images/, and the CV into the site root.
func (g *Generator) copyAssets() (int, error) {
	if g.opts.AssetsDir == "" {
		return 0, nil
	}
	if _, err := os.Stat(g.opts.AssetsDir); errors.Is(err, fs.ErrNotExist) {
		g.opts.Logger.Warn("assets dir not found, skipping", "dir", g.opts.AssetsDir)
		return 0, nil
	}

	root := os.DirFS(g.opts.AssetsDir)
	count := 0
	err := fs.WalkDir(root, ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !g.included(rel) {
			return nil
		}
		count++
		return copyFile(root, rel, filepath.Join(g.opts.OutDir, "images", filepath.FromSlash(rel)))
	})
	if err != nil {
		return 0, fmt.Errorf("copying assets: %w", err)
	}

	if cv := g.reg.Profile().CV; cv != "" {
		if _, err := fs.Stat(root, cv); err != nil {
			g.opts.Logger.Warn("CV not found in assets dir", "file", cv)
		} else {
			if err := copyFile(root, cv, filepath.Join(g.opts.OutDir, cv)); err != nil {
				return 0, fmt.Errorf("copying CV: %w", err)
			}
			count++
		}
	}
	return count, nil
}

func (g *Generator) included(rel string) bool {
	for _, pattern := range g.opts.Include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func copyFS(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		return copyFile(src, rel, filepath.Join(dst, filepath.FromSlash(rel)))
	})
}

func copyFile(src fs.FS, rel, dst string) error {
	in, err := src.Open(rel)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeFile(dst string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
