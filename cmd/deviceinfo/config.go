package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/deviceinfo/pkg/logger"
	"github.com/dmitrymomot/deviceinfo/pkg/stats"
)

// Config is loaded from the environment (and ./.env) by config.Load.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"deviceinfo"`
	LogLevel  string `env:"LOG_LEVEL"`  // empty keeps the environment default
	LogFormat string `env:"LOG_FORMAT"` // json or text, empty keeps the environment default

	HTTPAddr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	TrustedProxyHeaders []string      `env:"HTTP_TRUSTED_PROXY_HEADERS" envSeparator:","`

	// Classified when the command is run without a user agent argument.
	DefaultUserAgent string `env:"DEVICEINFO_DEFAULT_USER_AGENT" envDefault:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36"`

	Stats stats.Config
}

// newLogger writes to stderr so stdout carries only classification output.
func newLogger(cfg Config, extractors ...logger.ContextExtractor) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(extractors...),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	return logger.New(opts...)
}
