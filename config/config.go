// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mytheresa/go-inventory/pagination"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL     string        `envconfig:"DATABASE_URL"      required:"true"`
	HTTPAddr        string        `envconfig:"HTTP_ADDR"         default:":8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL"         default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT"        default:"json"`
	DefaultPageSize int           `envconfig:"DEFAULT_PAGE_SIZE" default:"3"`
	MaxPageSize     int           `envconfig:"MAX_PAGE_SIZE"     default:"0"` // 0 leaves page size unbounded
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE"      default:"true"`
	DBMaxOpenConns  int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	DBMaxIdleConns  int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT"  default:"10s"`
}

// Load reads the given env files (".env" when none are named) into the
// process environment and decodes it. Missing env files are ignored;
// variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if cfg.DefaultPageSize < 1 {
		return nil, fmt.Errorf("DEFAULT_PAGE_SIZE must be positive, got %d", cfg.DefaultPageSize)
	}
	return &cfg, nil
}

// PageLimits returns the paging rules for list endpoints.
func (c *Config) PageLimits() pagination.Limits {
	return pagination.Limits{
		DefaultSize: c.DefaultPageSize,
		MaxSize:     c.MaxPageSize,
	}
}

// NewLogger builds the process logger. format is "json" or "text".
func NewLogger(level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	return logger, nil
}
