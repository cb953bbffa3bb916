package signing

import (
	"crypto/hmac"
	"errors"
	"fmt"
	"strings"

	"github.com/cybergodev/jwtparser/internal/security"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidAlgorithm = fmt.Errorf("%w: unsupported algorithm", ErrInvalidArgument)
	ErrMalformed        = errors.New("malformed token")
)

// Sign returns the raw HMAC of data under secretKey using alg.
func Sign(data, secretKey []byte, alg Algorithm) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrInvalidArgument)
	}
	if len(secretKey) == 0 {
		return nil, fmt.Errorf("%w: empty secret key", ErrInvalidArgument)
	}
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAlgorithm, alg)
	}

	h := alg.Hash()
	if !h.Available() {
		return nil, fmt.Errorf("hash function %v not available", h)
	}

	mac := hmac.New(h.New, secretKey)
	mac.Write(data)
	return mac.Sum(nil), nil
}

// Verify decodes encodedSignature and compares it in constant time against
// the HMAC of signedParts joined with Separator. algName is resolved under
// the given naming; an unknown name fails before any hashing.
func Verify(algName string, n Naming, encodedSignature string, signedParts []string, secretKey []byte) (bool, error) {
	if algName == "" {
		return false, fmt.Errorf("%w: empty algorithm", ErrInvalidArgument)
	}
	if encodedSignature == "" {
		return false, fmt.Errorf("%w: empty signature", ErrInvalidArgument)
	}
	if len(signedParts) == 0 {
		return false, fmt.Errorf("%w: no signed parts", ErrInvalidArgument)
	}

	alg, ok := Lookup(algName, n)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, algName)
	}

	sig, err := Decode(encodedSignature)
	if err != nil {
		return false, err
	}
	defer security.ZeroBytes(sig)

	expected, err := Sign([]byte(strings.Join(signedParts, Separator)), secretKey, alg)
	if err != nil {
		return false, err
	}
	defer security.ZeroBytes(expected)

	return security.Equal(sig, expected), nil
}
