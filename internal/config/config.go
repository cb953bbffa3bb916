// Package config loads the jwtparse command configuration from the
// environment. A .env file in the working directory is read first when
// present; variables already set in the environment take precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/cybergodev/jwtparser"
)

// ErrMissingSecret is returned by RequireSecret when JWT_SECRET is unset or
// empty.
var ErrMissingSecret = errors.New("JWT_SECRET is required")

// Config holds the settings of the jwtparse command. Secret may be empty;
// commands that sign or verify call RequireSecret.
type Config struct {
	Secret       string `env:"JWT_SECRET"`
	Algorithm    string `env:"JWT_ALGORITHM" envDefault:"sha256"`
	HeaderNaming string `env:"JWT_HEADER_NAMING" envDefault:"hash"`
	MaxTokenSize int    `env:"JWT_MAX_TOKEN_SIZE" envDefault:"0"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the optional .env file, parses the environment into a Config
// and validates it.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that every value can be turned into a parser setting.
func (c Config) Validate() error {
	if _, err := c.Alg(); err != nil {
		return err
	}
	if _, err := c.Naming(); err != nil {
		return err
	}
	if c.MaxTokenSize < 0 {
		return fmt.Errorf("%w: JWT_MAX_TOKEN_SIZE must not be negative", jwtparser.ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// RequireSecret fails with ErrMissingSecret when no secret is configured.
func (c Config) RequireSecret() error {
	if c.Secret == "" {
		return ErrMissingSecret
	}
	return nil
}

// Key returns the secret as bytes.
func (c Config) Key() []byte {
	return []byte(c.Secret)
}

// Alg resolves JWT_ALGORITHM. Both "sha256" and "HS256" forms are accepted.
func (c Config) Alg() (jwtparser.Algorithm, error) {
	alg, err := jwtparser.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return 0, fmt.Errorf("%w: JWT_ALGORITHM: %w", jwtparser.ErrInvalidConfig, err)
	}
	return alg, nil
}

// Naming resolves JWT_HEADER_NAMING.
func (c Config) Naming() (jwtparser.HeaderNaming, error) {
	switch strings.ToLower(c.HeaderNaming) {
	case "hash":
		return jwtparser.HeaderNamingHash, nil
	case "jose":
		return jwtparser.HeaderNamingJOSE, nil
	default:
		return 0, fmt.Errorf("%w: JWT_HEADER_NAMING must be hash or jose, got %q", jwtparser.ErrInvalidConfig, c.HeaderNaming)
	}
}

// Level resolves LOG_LEVEL (debug, info, warn, error).
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: LOG_LEVEL: %w", jwtparser.ErrInvalidConfig, err)
	}
	return level, nil
}

// Options returns the parser options described by the configuration.
func (c Config) Options(logger *slog.Logger) ([]jwtparser.Option, error) {
	naming, err := c.Naming()
	if err != nil {
		return nil, err
	}
	return []jwtparser.Option{
		jwtparser.WithHeaderNaming(naming),
		jwtparser.WithMaxTokenSize(c.MaxTokenSize),
		jwtparser.WithLogger(logger),
	}, nil
}

// LogValue keeps the secret out of structured logs.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("algorithm", c.Algorithm),
		slog.String("header_naming", c.HeaderNaming),
		slog.Int("max_token_size", c.MaxTokenSize),
		slog.String("log_level", c.LogLevel),
	)
}
