package signing

import (
	"crypto"
	"fmt"

	_ "crypto/sha256"
	_ "crypto/sha512"
)

// Algorithm identifies one of the supported HMAC hash functions.
// The zero value is not a valid algorithm.
type Algorithm uint8

const (
	HS256 Algorithm = iota + 1
	HS384
	HS512
)

// Naming selects which identifiers appear in (and are accepted from) the
// "alg" header parameter.
type Naming uint8

const (
	// NamingHash uses the hash function name: sha256, sha384, sha512.
	NamingHash Naming = iota
	// NamingJOSE uses the registered JWS codes: HS256, HS384, HS512.
	NamingJOSE
)

type algorithmInfo struct {
	hashName string
	joseName string
	hash     crypto.Hash
}

var registry = [...]algorithmInfo{
	HS256: {hashName: "sha256", joseName: "HS256", hash: crypto.SHA256},
	HS384: {hashName: "sha384", joseName: "HS384", hash: crypto.SHA384},
	HS512: {hashName: "sha512", joseName: "HS512", hash: crypto.SHA512},
}

// Valid reports whether a is one of the registered algorithms.
func (a Algorithm) Valid() bool {
	return a >= HS256 && a <= HS512
}

// HashName returns the hash function name, e.g. "sha256".
func (a Algorithm) HashName() string {
	if !a.Valid() {
		return ""
	}
	return registry[a].hashName
}

// JOSEName returns the conventional JWS code, e.g. "HS256".
func (a Algorithm) JOSEName() string {
	if !a.Valid() {
		return ""
	}
	return registry[a].joseName
}

// Name returns the header identifier of a under the given naming.
func (a Algorithm) Name(n Naming) string {
	if n == NamingJOSE {
		return a.JOSEName()
	}
	return a.HashName()
}

// Hash returns the crypto.Hash backing a, or 0 for an invalid algorithm.
func (a Algorithm) Hash() crypto.Hash {
	if !a.Valid() {
		return 0
	}
	return registry[a].hash
}

func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
	return registry[a].hashName
}

// Lookup resolves an exact header identifier under the given naming.
// Identifiers are matched byte for byte: no trimming, no case folding.
func Lookup(name string, n Naming) (Algorithm, bool) {
	for _, a := range [...]Algorithm{HS256, HS384, HS512} {
		if a.Name(n) == name {
			return a, true
		}
	}
	return 0, false
}

// IsValid reports whether name is a registered hash-named identifier.
func IsValid(name string) bool {
	_, ok := Lookup(name, NamingHash)
	return ok
}
