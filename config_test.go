package jwtparser

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, HeaderNamingHash, cfg.HeaderNaming)
	assert.Equal(t, 0, cfg.MaxTokenSize)
	assert.NotNil(t, cfg.Logger)
	assert.NotNil(t, cfg.Clock)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown naming", func(c *Config) { c.HeaderNaming = 9 }},
		{"negative max size", func(c *Config) { c.MaxTokenSize = -1 }},
		{"nil logger", func(c *Config) { c.Logger = nil }},
		{"nil clock", func(c *Config) { c.Clock = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	var nilCfg *Config
	assert.ErrorIs(t, nilCfg.Validate(), ErrInvalidConfig)
}

func TestNewWithOptions(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	clock := fixedClock(42)

	p, err := New(
		WithHeaderNaming(HeaderNamingJOSE),
		WithMaxTokenSize(512),
		WithLogger(logger),
		WithClock(clock),
	)
	require.NoError(t, err)

	assert.Equal(t, HeaderNamingJOSE, p.naming)
	assert.Equal(t, 512, p.maxTokenSize)
	assert.Same(t, logger, p.logger)
	assert.Equal(t, time.Unix(42, 0), p.now())
}

func TestNewIgnoresNilOptions(t *testing.T) {
	p, err := New(WithLogger(nil), WithClock(nil))
	require.NoError(t, err)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.now)
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	_, err := New(WithMaxTokenSize(-5))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(WithHeaderNaming(HeaderNaming(7)))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestMaxTokenSize(t *testing.T) {
	key := []byte("k")
	token, err := Serialize(map[string]any{"sub": "u1", "iat": 1000}, key, HS256)
	require.NoError(t, err)

	exact, err := New(WithMaxTokenSize(len(token)))
	require.NoError(t, err)
	_, err = exact.Unserialize(token, key, true)
	assert.NoError(t, err)

	short, err := New(WithMaxTokenSize(len(token) - 1))
	require.NoError(t, err)
	_, err = short.Unserialize(token, key, true)
	assert.ErrorIs(t, err, ErrMalformedToken)
	assert.Contains(t, err.Error(), "token too large")
}

func TestHeaderNamingJOSE(t *testing.T) {
	key := []byte("k")
	jose, err := New(WithHeaderNaming(HeaderNamingJOSE))
	require.NoError(t, err)

	for _, alg := range []Algorithm{HS256, HS384, HS512} {
		token, err := jose.Serialize(map[string]any{"iat": 1000}, key, alg)
		require.NoError(t, err)

		headerSegment, _, _ := strings.Cut(token, ".")
		header, err := Decode(headerSegment)
		require.NoError(t, err)
		assert.Equal(t, `{"typ":"JWT","alg":"`+alg.JOSEName()+`"}`, string(header))

		_, err = jose.Unserialize(token, key, true)
		assert.NoError(t, err)

		// A hash-named parser does not accept JOSE names, and vice versa.
		_, err = Unserialize(token, key, true)
		assert.ErrorIs(t, err, ErrSignature)

		hashToken, err := Serialize(map[string]any{"iat": 1000}, key, alg)
		require.NoError(t, err)
		_, err = jose.Unserialize(hashToken, key, true)
		assert.ErrorIs(t, err, ErrSignature)
	}
}
