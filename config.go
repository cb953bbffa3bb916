package jwtparser

import (
	"fmt"
	"log/slog"
	"time"
)

// Config represents Parser configuration. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// HeaderNaming selects the "alg" identifiers written and accepted
	HeaderNaming HeaderNaming `yaml:"header_naming" json:"header_naming"`

	// MaxTokenSize rejects longer tokens as malformed; 0 disables the limit
	MaxTokenSize int `yaml:"max_token_size" json:"max_token_size"`

	// Logger receives debug records for rejected tokens; keys and claim
	// contents are never logged
	Logger *slog.Logger `yaml:"-" json:"-"`

	// Clock supplies the current time for the issued-at check
	Clock func() time.Time `yaml:"-" json:"-"`
}

// DefaultConfig returns the configuration used by the package-level
// Serialize and Unserialize functions.
func DefaultConfig() Config {
	return Config{
		HeaderNaming: HeaderNamingHash,
		MaxTokenSize: 0,
		Logger:       slog.New(slog.DiscardHandler),
		Clock:        time.Now,
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c == nil {
		return ErrInvalidConfig
	}

	switch c.HeaderNaming {
	case HeaderNamingHash, HeaderNamingJOSE:
	default:
		return fmt.Errorf("%w: unknown header naming %d", ErrInvalidConfig, c.HeaderNaming)
	}

	if c.MaxTokenSize < 0 {
		return fmt.Errorf("%w: max token size must not be negative", ErrInvalidConfig)
	}

	if c.Logger == nil {
		return fmt.Errorf("%w: logger is required", ErrInvalidConfig)
	}

	if c.Clock == nil {
		return fmt.Errorf("%w: clock is required", ErrInvalidConfig)
	}

	return nil
}

// Option configures a Parser.
type Option func(*Config)

// WithHeaderNaming selects the identifiers used in the "alg" header.
func WithHeaderNaming(n HeaderNaming) Option {
	return func(c *Config) {
		c.HeaderNaming = n
	}
}

// WithMaxTokenSize rejects tokens longer than n characters; 0 means no limit.
func WithMaxTokenSize(n int) Option {
	return func(c *Config) {
		c.MaxTokenSize = n
	}
}

// WithLogger enables debug logging of rejected tokens.
// A nil logger keeps the default discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithClock overrides the time source used for the issued-at check.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		if now != nil {
			c.Clock = now
		}
	}
}
