package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdifarro/portfolio/internal/content"
)

type recordingReporter struct {
	total    int
	updates  []string
	finished bool
}

func (r *recordingReporter) Start(total int)              { r.total = total }
func (r *recordingReporter) Update(_ int, message string) { r.updates = append(r.updates, message) }
func (r *recordingReporter) Finish()                      { r.finished = true }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeAsset(t *testing.T, dir, rel string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(rel), 0o644))
}

func readDoc(t *testing.T, p string) *goquery.Document {
	t.Helper()
	f, err := os.Open(p)
	require.NoError(t, err)
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	return doc
}

func TestGenerate(t *testing.T) {
	reg, err := content.Default()
	require.NoError(t, err)

	assets := t.TempDir()
	writeAsset(t, assets, "logo.png")
	writeAsset(t, assets, "projects/churn.jpg")
	writeAsset(t, assets, "notes.txt")
	writeAsset(t, assets, reg.Profile().CV)

	out := t.TempDir()
	rep := &recordingReporter{}
	gen, err := New(reg, Options{
		OutDir:    out,
		AssetsDir: assets,
		Reporter:  rep,
		Logger:    quietLogger(),
	})
	require.NoError(t, err)

	res, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(reg.Projects())+1, res.Pages)
	assert.Equal(t, 3, res.Assets)

	assert.Equal(t, res.Pages, rep.total)
	assert.Len(t, rep.updates, res.Pages)
	assert.True(t, rep.finished)

	index := readDoc(t, filepath.Join(out, "index.html"))
	assert.Equal(t, reg.Projects()[0].Slug(), index.Find(".card.card--active").AttrOr("data-project", ""))
	assert.Equal(t, 0, index.Find("form").Length())
	assert.Equal(t, "/mahdifarro.github.io/static/site.css", index.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))

	for _, p := range reg.Projects() {
		page := filepath.Join(out, "projects", p.Slug(), "index.html")
		doc := readDoc(t, page)
		assert.Equal(t, p.Slug(), doc.Find(".card.card--active").AttrOr("data-project", ""), p.Slug())
		assert.Equal(t, p.Name, strings.TrimSpace(doc.Find(".projects__drawer h4").Text()))
	}

	assert.FileExists(t, filepath.Join(out, "static", "site.css"))
	assert.FileExists(t, filepath.Join(out, "static", "motion.js"))
	assert.FileExists(t, filepath.Join(out, "images", "logo.png"))
	assert.FileExists(t, filepath.Join(out, "images", "projects", "churn.jpg"))
	assert.NoFileExists(t, filepath.Join(out, "images", "notes.txt"))
	assert.FileExists(t, filepath.Join(out, reg.Profile().CV))
}

func TestGenerate_CustomBaseAndIncludes(t *testing.T) {
	reg, err := content.Default()
	require.NoError(t, err)

	assets := t.TempDir()
	writeAsset(t, assets, "logo.png")
	writeAsset(t, assets, "notes.txt")

	out := t.TempDir()
	gen, err := New(reg, Options{
		OutDir:    out,
		BasePath:  "/",
		AssetsDir: assets,
		Include:   []string{"*.txt"},
		Logger:    quietLogger(),
	})
	require.NoError(t, err)

	res, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Assets)
	assert.FileExists(t, filepath.Join(out, "images", "notes.txt"))
	assert.NoFileExists(t, filepath.Join(out, "images", "logo.png"))

	doc := readDoc(t, filepath.Join(out, "index.html"))
	href := doc.Find(".card a.card__select").First().AttrOr("href", "")
	assert.Equal(t, "/projects/"+reg.Projects()[0].Slug()+"/#projects", href)
}

func TestGenerate_MissingAssetsDir(t *testing.T) {
	reg, err := content.Default()
	require.NoError(t, err)

	gen, err := New(reg, Options{
		OutDir:    t.TempDir(),
		AssetsDir: filepath.Join(t.TempDir(), "missing"),
		Logger:    quietLogger(),
	})
	require.NoError(t, err)

	res, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Assets)
}

func TestGenerate_Cancelled(t *testing.T) {
	reg, err := content.Default()
	require.NoError(t, err)

	gen, err := New(reg, Options{OutDir: t.TempDir(), Logger: quietLogger()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gen.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_Validation(t *testing.T) {
	reg, err := content.Default()
	require.NoError(t, err)

	_, err = New(reg, Options{})
	assert.Error(t, err)

	_, err = New(reg, Options{OutDir: t.TempDir(), Include: []string{"[unclosed"}})
	assert.Error(t, err)
}

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{w: &buf}
	r.Start(2)
	r.Update(1, "index.html")
	r.Update(2, "projects/a/index.html")
	r.Finish()

	assert.Equal(t, "Exporting 2 pages\n[1/2] index.html\n[2/2] projects/a/index.html\nExport complete\n", buf.String())
}

func TestNewReporter_CI(t *testing.T) {
	t.Setenv("CI", "true")
	_, ok := NewReporter(io.Discard).(*LineReporter)
	assert.True(t, ok)
}
