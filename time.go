package jwtparser

import (
	"encoding/json"
	"maps"
	"math"
	"time"

	"github.com/google/uuid"
)

// Registered claim names handled by this package.
const (
	ClaimIssuedAt = "iat"
	ClaimID       = "jti"
)

// issuedAt returns the "iat" claim as unix seconds. Any Go integer kind and
// integral json.Number values are accepted; decoded tokens carry int64.
// Unsigned values above math.MaxInt64 and floats are rejected.
func issuedAt(claims map[string]any) (int64, bool) {
	switch v := claims[ClaimIssuedAt].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case uint64:
		return fromUnsigned(v)
	case uint:
		return fromUnsigned(uint64(v))
	case uint32:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint8:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	default:
		return 0, false
	}
}

func fromUnsigned(v uint64) (int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// IssuedAt returns the "iat" claim as a UTC time. The second result is false
// when the claim is absent or not an integer.
func (c Claims) IssuedAt() (time.Time, bool) {
	sec, ok := issuedAt(c)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(sec, 0).UTC(), true
}

// StampClaims returns a copy of payload with "iat" set to now and "jti" set
// to a random UUID, each only when absent. payload itself is not modified.
func StampClaims(payload map[string]any, now time.Time) Claims {
	claims := make(Claims, len(payload)+2)
	maps.Copy(claims, payload)

	if _, ok := claims[ClaimIssuedAt]; !ok {
		claims[ClaimIssuedAt] = now.Unix()
	}
	if _, ok := claims[ClaimID]; !ok {
		claims[ClaimID] = uuid.NewString()
	}

	return claims
}
