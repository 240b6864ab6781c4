// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: an
// optional ./.env file is read on first use, then the environment is parsed
// into any struct annotated with `env` tags. Parsed values are cached per Go
// type, so calling Load for the same struct from several packages parses the
// environment once.
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Tests that change the environment between loads call ResetCache.
package config
