package jwtparser

import (
	"github.com/cybergodev/jwtparser/internal/signing"
)

// Encode returns the URL-safe base64 form of data without padding.
func Encode(data []byte) string {
	return signing.Encode(data)
}

// Decode reverses Encode. Characters outside [A-Za-z0-9_-], impossible
// lengths and non-canonical trailing bits fail with a *DecodeError.
func Decode(s string) ([]byte, error) {
	return signing.Decode(s)
}

// Sign returns the raw HMAC of data under secretKey. Empty data, an empty
// key or an invalid algorithm fail with ErrInvalidArgument.
func Sign(data, secretKey []byte, alg Algorithm) ([]byte, error) {
	return signing.Sign(data, secretKey, alg)
}

// VerifySignature reports whether encodedSignature is the HMAC of
// signedParts joined with "." under secretKey. algName is a header
// identifier such as "sha256". The comparison runs in constant time.
func VerifySignature(algName, encodedSignature string, signedParts []string, secretKey []byte) (bool, error) {
	return signing.Verify(algName, signing.NamingHash, encodedSignature, signedParts, secretKey)
}
