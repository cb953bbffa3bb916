package jwtparser

import (
	"sync"
)

var defaultParser = sync.OnceValue(func() *Parser {
	p, err := New()
	if err != nil {
		panic("jwtparser: invalid default configuration: " + err.Error())
	}
	return p
})

// Serialize encodes payload as a compact token using the default
// configuration. See Parser.Serialize.
func Serialize(payload any, secretKey []byte, alg Algorithm) (string, error) {
	return defaultParser().Serialize(payload, secretKey, alg)
}

// Unserialize decodes token using the default configuration.
// See Parser.Unserialize.
func Unserialize(token string, secretKey []byte, verify bool) (Claims, error) {
	return defaultParser().Unserialize(token, secretKey, verify)
}
