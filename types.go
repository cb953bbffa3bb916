package jwtparser

import (
	"fmt"

	"github.com/cybergodev/jwtparser/internal/signing"
)

// Algorithm represents the supported HMAC signing algorithms.
// It is a closed set; the zero value is invalid.
type Algorithm = signing.Algorithm

const (
	// HS256 uses HMAC with SHA-256 (the default).
	HS256 = signing.HS256

	// HS384 uses HMAC with SHA-384.
	HS384 = signing.HS384

	// HS512 uses HMAC with SHA-512.
	HS512 = signing.HS512
)

// HeaderNaming selects the identifiers written to and accepted from the
// "alg" header parameter.
type HeaderNaming = signing.Naming

const (
	// HeaderNamingHash writes the hash function name (sha256, sha384,
	// sha512). This is the default wire format.
	HeaderNamingHash = signing.NamingHash

	// HeaderNamingJOSE writes the registered JWS codes (HS256, HS384,
	// HS512) understood by other JWT libraries.
	HeaderNamingJOSE = signing.NamingJOSE
)

// IsValidAlgorithm reports whether identifier exactly matches one of the
// registered header identifiers: sha256, sha384 or sha512. Any other input,
// including the empty string, returns false.
func IsValidAlgorithm(identifier string) bool {
	return signing.IsValid(identifier)
}

// ParseAlgorithm resolves an algorithm from either its hash name ("sha256")
// or its JWS code ("HS256"). It is meant for configuration input; incoming
// token headers are matched only against the parser's HeaderNaming.
func ParseAlgorithm(name string) (Algorithm, error) {
	if alg, ok := signing.Lookup(name, signing.NamingHash); ok {
		return alg, nil
	}
	if alg, ok := signing.Lookup(name, signing.NamingJOSE); ok {
		return alg, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, name)
}

// Claims is the decoded payload of a token. Integer JSON numbers decode to
// int64, other numbers to float64.
type Claims map[string]any
