package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mahdifarro/portfolio/internal/config"
	"github.com/mahdifarro/portfolio/internal/logging"
	"github.com/mahdifarro/portfolio/internal/server"
	"github.com/mahdifarro/portfolio/internal/session"
)

const cleanupInterval = time.Hour

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio web server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("port", "", "listen port (overrides PORT)")
	serveCmd.Flags().String("base-path", "", "URL prefix the site is mounted under (overrides BASE_PATH)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}
	if base, _ := cmd.Flags().GetString("base-path"); base != "" {
		cfg.BasePath = config.NormalizeBasePath(base)
	}

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	reg, err := loadContent(cfg.ContentFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := server.Options{
		BasePath:     cfg.BasePath,
		AssetsDir:    cfg.AssetsDir,
		CookieSecure: cfg.CookieSecure,
		Logger:       logger,
	}
	if cfg.PersistenceEnabled() {
		store, err := session.Open(ctx, cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()
		opts.Store = store
		logger.Info("preference store ready", "path", cfg.DatabasePath)

		if cfg.SessionRetention > 0 {
			go store.RunCleanup(ctx, cleanupInterval, cfg.SessionRetention, logger)
		}
	} else {
		logger.Info("preference persistence disabled")
	}

	srv, err := server.New(reg, opts)
	if err != nil {
		return err
	}
	return srv.Run(ctx, cfg.Addr())
}
