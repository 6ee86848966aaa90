package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdifarro/portfolio/internal/content"
)

func TestLoadContent_Default(t *testing.T) {
	contentFile = ""
	reg, err := loadContent("")
	require.NoError(t, err)

	def, err := content.Default()
	require.NoError(t, err)
	assert.Equal(t, def.Profile().Name, reg.Profile().Name)
}

func TestLoadContent_MissingFile(t *testing.T) {
	contentFile = ""
	_, err := loadContent(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	contentFile = filepath.Join(t.TempDir(), "flag.yaml")
	t.Cleanup(func() { contentFile = "" })
	_, err = loadContent("")
	assert.ErrorContains(t, err, "flag.yaml")
}

func TestExportCommand(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("CI", "true")
	out := filepath.Join(t.TempDir(), "dist")

	rootCmd.SetArgs([]string{"export", "--out", out, "--assets", t.TempDir(), "--base-path", "site"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	require.NoError(t, Execute())

	data, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `href="/site/static/site.css"`)
	assert.DirExists(t, filepath.Join(out, "projects"))
}
