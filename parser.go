package jwtparser

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cybergodev/jwtparser/internal/core"
	"github.com/cybergodev/jwtparser/internal/logattr"
	"github.com/cybergodev/jwtparser/internal/signing"
)

// Parser serializes payloads into compact tokens and parses them back.
// It holds no keys and no per-token state, so one Parser may be shared
// between goroutines.
type Parser struct {
	naming       HeaderNaming
	maxTokenSize int
	logger       *slog.Logger
	now          func() time.Time
}

// New creates a Parser from DefaultConfig and the given options.
func New(opts ...Option) (*Parser, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &Parser{
		naming:       cfg.HeaderNaming,
		maxTokenSize: cfg.MaxTokenSize,
		logger:       cfg.Logger,
		now:          cfg.Clock,
	}, nil
}

// Serialize encodes payload as a compact token signed with secretKey.
// payload must be a non-empty map with string keys or a struct (or a
// pointer to either) whose JSON form is an object. Invalid arguments fail
// with an *ArgumentError before any signing work.
func (p *Parser) Serialize(payload any, secretKey []byte, alg Algorithm) (string, error) {
	if err := validateKey(secretKey); err != nil {
		return "", err
	}
	if err := validateAlgorithm(alg); err != nil {
		return "", err
	}

	raw, err := encodePayload(payload)
	if err != nil {
		return "", err
	}

	token, err := core.SignedString(core.NewHeader(alg, p.naming), raw, alg, secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to serialize token: %w", err)
	}

	return token, nil
}

// Unserialize decodes token and returns its claims. With verify set the
// signature is checked against secretKey and the "iat" claim must be an
// integer not later than the current time; without it secretKey and the
// "alg" header are ignored and the claims are returned unauthenticated.
// A malformed token is reported as such before secretKey is looked at.
//
// Errors match ErrInvalidArgument, ErrMalformedToken, ErrSignature or
// ErrClaim.
func (p *Parser) Unserialize(token string, secretKey []byte, verify bool) (Claims, error) {
	if token == "" {
		return nil, &ArgumentError{Field: "token", Message: "must not be empty"}
	}

	parsed, err := core.Parse(token, p.maxTokenSize)
	if err != nil {
		p.reject("malformed", "", len(token), verify)
		return nil, err
	}

	if !verify {
		return Claims(parsed.Claims), nil
	}

	if err := validateKey(secretKey); err != nil {
		return nil, err
	}

	alg, ok := parsed.Alg()
	if !ok {
		p.reject("signature", "", len(token), verify)
		return nil, fmt.Errorf("%w: missing or non-string alg header", ErrSignature)
	}
	if err := p.verifySignature(parsed, alg, secretKey); err != nil {
		p.reject("signature", alg, len(token), verify)
		return nil, err
	}

	iat, ok := issuedAt(parsed.Claims)
	if !ok {
		err := fmt.Errorf("%w: missing or non-integer iat claim", ErrClaim)
		p.reject("claim", alg, len(token), verify)
		return nil, err
	}
	if p.now().Unix() < iat {
		err := fmt.Errorf("%w: token issued in the future", ErrClaim)
		p.reject("claim", alg, len(token), verify)
		return nil, err
	}

	return Claims(parsed.Claims), nil
}

// verifySignature maps the outcome of the HMAC check onto ErrSignature, or
// ErrMalformedToken when the signature segment is not valid base64url.
func (p *Parser) verifySignature(parsed *core.Core, alg string, secretKey []byte) error {
	ok, err := signing.Verify(alg, p.naming, parsed.Signature, parsed.SignedParts(), secretKey)
	if err != nil {
		var decErr *DecodeError
		if errors.As(err, &decErr) {
			return fmt.Errorf("failed to decode signature: %w", err)
		}
		return fmt.Errorf("%w: %v", ErrSignature, err)
	}
	if !ok {
		return ErrSignature
	}
	return nil
}

// reject logs a failed Unserialize. Error text may quote token content, so
// only its class is recorded.
func (p *Parser) reject(reason, alg string, tokenLen int, verify bool) {
	p.logger.Debug("token rejected",
		logattr.Reason(reason),
		logattr.Alg(alg),
		logattr.TokenLen(tokenLen),
		logattr.Verify(verify),
	)
}
