package core

import (
	"fmt"
	"strings"

	"github.com/cybergodev/jwtparser/internal/security"
	"github.com/cybergodev/jwtparser/internal/signing"
)

var (
	errInvalidTokenFormat = fmt.Errorf("%w: token must have exactly 3 segments", signing.ErrMalformed)
)

// NewHeader returns the header for a token signed with alg under naming n.
func NewHeader(alg signing.Algorithm, n signing.Naming) Header {
	return Header{Typ: HeaderType, Alg: alg.Name(n)}
}

// split3 splits s into exactly three parts; any other separator count
// fails.
func split3(s string, sep byte) (string, string, string, bool) {
	first := strings.IndexByte(s, sep)
	if first < 0 {
		return "", "", "", false
	}
	second := strings.IndexByte(s[first+1:], sep)
	if second < 0 {
		return "", "", "", false
	}
	second += first + 1

	if strings.IndexByte(s[second+1:], sep) >= 0 {
		return "", "", "", false
	}

	return s[:first], s[first+1 : second], s[second+1:], true
}

// Parse splits tokenString and decodes its header and payload without
// checking the signature or reading any header parameter. maxSize <= 0
// disables the length check.
func Parse(tokenString string, maxSize int) (*Core, error) {
	if maxSize > 0 && len(tokenString) > maxSize {
		return nil, fmt.Errorf("%w: token too large: maximum %d characters allowed", signing.ErrMalformed, maxSize)
	}

	part1, part2, part3, ok := split3(tokenString, signing.Separator[0])
	if !ok {
		return nil, errInvalidTokenFormat
	}

	header, err := DecodeSegment(part1)
	if err != nil {
		return nil, fmt.Errorf("failed to decode header: %w", err)
	}

	claims, err := DecodeSegment(part2)
	if err != nil {
		return nil, fmt.Errorf("failed to decode claims: %w", err)
	}

	return &Core{
		Raw:            tokenString,
		HeaderSegment:  part1,
		PayloadSegment: part2,
		Signature:      part3,
		Header:         header,
		Claims:         claims,
	}, nil
}

// SignedString serializes header and claims, signs the encoded segments
// and returns the compact token.
func SignedString(header Header, claims any, alg signing.Algorithm, key []byte) (string, error) {
	headerSegment, err := EncodeSegment(header)
	if err != nil {
		return "", fmt.Errorf("failed to encode header: %w", err)
	}

	claimsSegment, err := EncodeSegment(claims)
	if err != nil {
		return "", fmt.Errorf("failed to encode claims: %w", err)
	}

	signingString := headerSegment + signing.Separator + claimsSegment

	sig, err := signing.Sign([]byte(signingString), key, alg)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	defer security.ZeroBytes(sig)

	return signingString + signing.Separator + signing.Encode(sig), nil
}
