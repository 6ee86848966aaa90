package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mahdifarro/portfolio/internal/content"
)

var contentFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `Serves the portfolio page with project selection and theme preferences,
or exports it as a static site for GitHub Pages.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "content YAML file (overrides CONTENT_FILE, defaults to the embedded content)")
}

// loadContent reads the registry from the flag, the configured file, or the embedded default.
func loadContent(configured string) (*content.Registry, error) {
	path := contentFile
	if path == "" {
		path = configured
	}
	if path == "" {
		return content.Default()
	}
	reg, err := content.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading content from %s: %w", path, err)
	}
	return reg, nil
}
