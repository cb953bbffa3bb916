package jwtparser

import (
	"errors"
	"fmt"

	"github.com/cybergodev/jwtparser/internal/signing"
)

// Predefined errors for token operations. Match them with errors.Is.
var (
	// Caller errors
	ErrInvalidArgument  = signing.ErrInvalidArgument
	ErrInvalidAlgorithm = signing.ErrInvalidAlgorithm
	ErrInvalidConfig    = errors.New("invalid configuration")

	// Token errors
	ErrMalformedToken = signing.ErrMalformed
	ErrSignature      = errors.New("signature verification failed")
	ErrClaim          = errors.New("token verification failed")
)

// DecodeError reports a segment that is not valid unpadded base64url.
// It matches ErrMalformedToken.
type DecodeError = signing.DecodeError

// ArgumentError describes a rejected caller-supplied argument.
// It matches ErrInvalidArgument.
type ArgumentError struct {
	Field   string // The argument that failed validation
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid argument '%s': %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("invalid argument '%s': %s", e.Field, e.Message)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
