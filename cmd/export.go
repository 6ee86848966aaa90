package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mahdifarro/portfolio/internal/config"
	"github.com/mahdifarro/portfolio/internal/export"
	"github.com/mahdifarro/portfolio/internal/logging"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the portfolio as a static site",
	Long: `Renders the default page and one page per project selection under the
given base path, then copies the static files and matching assets.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("out", "dist", "output directory")
	exportCmd.Flags().String("base-path", export.DefaultBasePath, "URL prefix the site is published under")
	exportCmd.Flags().String("assets", "", "assets directory (overrides ASSETS_DIR)")
	exportCmd.Flags().StringSlice("include", nil, "asset glob patterns to copy (default images only)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	reg, err := loadContent(cfg.ContentFile)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	base, _ := cmd.Flags().GetString("base-path")
	include, _ := cmd.Flags().GetStringSlice("include")
	assets, _ := cmd.Flags().GetString("assets")
	if assets == "" {
		assets = cfg.AssetsDir
	}

	gen, err := export.New(reg, export.Options{
		OutDir:    out,
		BasePath:  config.NormalizeBasePath(base),
		AssetsDir: assets,
		Include:   include,
		Reporter:  export.NewReporter(os.Stderr),
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	res, err := gen.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}
	fmt.Printf("Static site exported: %s (%d pages, %d assets)\n", out, res.Pages, res.Assets)
	return nil
}
