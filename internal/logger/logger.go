// Package logger configures the application's logging.
//
// It uses zerolog for structured logging. In the development
// environment logs are written in a human-friendly console format;
// everywhere else they are emitted as JSON for log collectors.
package logger

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/storefront-labs/catalog-api/internal/config"
)

// New builds the application's root logger from config.
//
// The level comes from primary.log_level (defaults to info upstream);
// an unparseable level falls back to info rather than failing startup.
func New(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Primary.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Primary.Env == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(level).With().
		Timestamp().
		Str("service", "catalog-api").
		Str("env", cfg.Primary.Env).
		Logger()
}
