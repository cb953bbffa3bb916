package jwtparser

import (
	"testing"
	"time"

	gbjwt "github.com/gbrlsnchs/jwt/v3"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tokens written with JOSE header names are standard HS256/384/512 JWTs.

var interopKey = []byte("interop-secret-key-with-enough-length-0123456789")

func newJOSEParser(t *testing.T) *Parser {
	t.Helper()
	p, err := New(WithHeaderNaming(HeaderNamingJOSE))
	require.NoError(t, err)
	return p
}

func TestInteropGolangJWTVerifiesOurTokens(t *testing.T) {
	p := newJOSEParser(t)

	for _, alg := range []Algorithm{HS256, HS384, HS512} {
		t.Run(alg.JOSEName(), func(t *testing.T) {
			token, err := p.Serialize(map[string]any{"sub": "u1", "iat": 1000}, interopKey, alg)
			require.NoError(t, err)

			parsed, err := gojwt.Parse(token, func(*gojwt.Token) (any, error) {
				return interopKey, nil
			}, gojwt.WithValidMethods([]string{alg.JOSEName()}))
			require.NoError(t, err)
			assert.True(t, parsed.Valid)

			claims, ok := parsed.Claims.(gojwt.MapClaims)
			require.True(t, ok)
			assert.Equal(t, "u1", claims["sub"])
			assert.Equal(t, "JWT", parsed.Header["typ"])
		})
	}
}

func TestInteropGolangJWTRejectsHashNames(t *testing.T) {
	token, err := Serialize(map[string]any{"sub": "u1", "iat": 1000}, interopKey, HS256)
	require.NoError(t, err)

	_, err = gojwt.Parse(token, func(*gojwt.Token) (any, error) {
		return interopKey, nil
	})
	assert.Error(t, err)
}

func TestInteropWeVerifyGolangJWTTokens(t *testing.T) {
	p := newJOSEParser(t)

	methods := map[Algorithm]gojwt.SigningMethod{
		HS256: gojwt.SigningMethodHS256,
		HS384: gojwt.SigningMethodHS384,
		HS512: gojwt.SigningMethodHS512,
	}

	for alg, method := range methods {
		t.Run(alg.JOSEName(), func(t *testing.T) {
			token, err := gojwt.NewWithClaims(method, gojwt.MapClaims{
				"sub": "u1",
				"iat": 1000,
			}).SignedString(interopKey)
			require.NoError(t, err)

			claims, err := p.Unserialize(token, interopKey, true)
			require.NoError(t, err)
			assert.Equal(t, Claims{"sub": "u1", "iat": int64(1000)}, claims)

			_, err = p.Unserialize(token, []byte("wrong"), true)
			assert.ErrorIs(t, err, ErrSignature)

			// The default hash naming does not accept HS* identifiers.
			_, err = Unserialize(token, interopKey, true)
			assert.ErrorIs(t, err, ErrSignature)
		})
	}
}

func TestInteropGbrlsnchsJWT(t *testing.T) {
	p := newJOSEParser(t)
	hs := gbjwt.NewHS256(interopKey)
	issued := time.Unix(1000, 0)

	// gbrlsnchs signs, we verify.
	pl := gbjwt.Payload{
		Subject:  "u1",
		IssuedAt: gbjwt.NumericDate(issued),
	}
	raw, err := gbjwt.Sign(pl, hs)
	require.NoError(t, err)

	claims, err := p.Unserialize(string(raw), interopKey, true)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims["sub"])
	assert.Equal(t, int64(1000), claims["iat"])

	// We sign, gbrlsnchs verifies.
	token, err := p.Serialize(map[string]any{"sub": "u2", "iat": 2000}, interopKey, HS256)
	require.NoError(t, err)

	var got gbjwt.Payload
	hd, err := gbjwt.Verify([]byte(token), hs, &got)
	require.NoError(t, err)
	assert.Equal(t, "HS256", hd.Algorithm)
	assert.Equal(t, "u2", got.Subject)
	require.NotNil(t, got.IssuedAt)
	assert.Equal(t, int64(2000), got.IssuedAt.Unix())

	// A different key fails on their side as well.
	_, err = gbjwt.Verify([]byte(token), gbjwt.NewHS256([]byte("wrong")), &got)
	assert.Error(t, err)
}
