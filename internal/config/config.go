// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), loads them into structured Go types, and
// validates that required values are present so the app fails fast on
// bad or missing configuration.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file (if present) into the
	// process environment before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from, and the
// `validate:"..."` tags are enforced by go-playground/validator after
// unmarshaling.
type Config struct {
	Primary Primary      `koanf:"primary" validate:"required"`
	Server  ServerConfig `koanf:"server" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env      string `koanf:"env" validate:"required"`
	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as whole seconds; BodyLimit uses Echo's size
// syntax ("2M", "500K").
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	BodyLimit          string   `koanf:"body_limit" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// envPrefix namespaces this service's environment variables.
//
// Nesting uses a double underscore so single underscores stay usable
// inside key names:
//
//	CATALOG_SERVER__READ_TIMEOUT -> server.read_timeout -> Config.Server.ReadTimeout
const envPrefix = "CATALOG_"

// Load reads configuration from the environment, unmarshals it into
// Config, validates it, and returns the result.
//
// Any load or validation error is fatal: the service cannot run with a
// broken config, so Load logs the error and exits.
func Load() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load env variables")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal config")
	}

	if cfg.Primary.LogLevel == "" {
		cfg.Primary.LogLevel = "info"
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}

	return cfg, nil
}
