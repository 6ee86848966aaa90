// Package config loads runtime settings from the environment. A .env file in the
// working directory is applied first.
package config

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

// Config holds server and export settings.
type Config struct {
	Port             string        `env:"PORT" envDefault:"8080"`
	BasePath         string        `env:"BASE_PATH" envDefault:"/"`
	Persist          bool          `env:"PERSIST_PREFERENCES" envDefault:"true"`
	DatabasePath     string        `env:"DATABASE_PATH" envDefault:"portfolio.db"`
	ContentFile      string        `env:"CONTENT_FILE"`
	AssetsDir        string        `env:"ASSETS_DIR" envDefault:"./images"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	GinMode          string        `env:"GIN_MODE" envDefault:"release"`
	CookieSecure     bool          `env:"COOKIE_SECURE" envDefault:"false"`
	SessionRetention time.Duration `env:"SESSION_RETENTION" envDefault:"8760h"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate normalises the base path and checks ranges.
func (c *Config) Validate() error {
	c.BasePath = NormalizeBasePath(c.BasePath)
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("config error: PORT must not be empty")
	}
	if c.SessionRetention < 0 {
		return fmt.Errorf("config error: SESSION_RETENTION must be non-negative")
	}
	return nil
}

// PersistenceEnabled reports whether visitor preferences are stored.
func (c *Config) PersistenceEnabled() bool {
	return c.Persist && strings.TrimSpace(c.DatabasePath) != ""
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// NormalizeBasePath returns a cleaned path that starts and ends with "/".
func NormalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	p = path.Clean("/" + p)
	if p == "/" {
		return p
	}
	return p + "/"
}
