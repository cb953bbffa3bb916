package jwtparser

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampClaims(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	payload := map[string]any{"sub": "u1"}

	claims := StampClaims(payload, now)

	assert.Equal(t, map[string]any{"sub": "u1"}, payload, "input must not be modified")
	assert.Equal(t, "u1", claims["sub"])
	assert.Equal(t, now.Unix(), claims[ClaimIssuedAt])

	id, ok := claims[ClaimID].(string)
	require.True(t, ok)
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestStampClaimsKeepsExisting(t *testing.T) {
	payload := map[string]any{"iat": int64(5), "jti": "fixed"}

	claims := StampClaims(payload, time.Now())
	assert.Equal(t, Claims{"iat": int64(5), "jti": "fixed"}, claims)
}

func TestStampClaimsUniqueIDs(t *testing.T) {
	seen := make(map[any]bool)
	for range 100 {
		claims := StampClaims(nil, time.Now())
		assert.False(t, seen[claims[ClaimID]])
		seen[claims[ClaimID]] = true
	}
}

func TestStampedTokenVerifies(t *testing.T) {
	now := time.Now()
	p, err := New(WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	token, err := p.Serialize(StampClaims(map[string]any{"sub": "u1"}, now), []byte("k"), HS256)
	require.NoError(t, err)

	claims, err := p.Unserialize(token, []byte("k"), true)
	require.NoError(t, err)

	iat, ok := claims.IssuedAt()
	require.True(t, ok)
	assert.Equal(t, now.Unix(), iat.Unix())
	assert.Equal(t, time.UTC, iat.Location())
}

func TestClaimsIssuedAt(t *testing.T) {
	tests := []struct {
		name   string
		claims Claims
		want   int64
		ok     bool
	}{
		{"int64", Claims{"iat": int64(1000)}, 1000, true},
		{"int", Claims{"iat": 1000}, 1000, true},
		{"negative", Claims{"iat": int64(-1)}, -1, true},
		{"int8", Claims{"iat": int8(100)}, 100, true},
		{"int16", Claims{"iat": int16(1000)}, 1000, true},
		{"int32", Claims{"iat": int32(1000)}, 1000, true},
		{"uint", Claims{"iat": uint(1000)}, 1000, true},
		{"uint8", Claims{"iat": uint8(200)}, 200, true},
		{"uint16", Claims{"iat": uint16(1000)}, 1000, true},
		{"uint32", Claims{"iat": uint32(1000)}, 1000, true},
		{"uint64", Claims{"iat": uint64(1000)}, 1000, true},
		{"uint64 overflow", Claims{"iat": uint64(math.MaxInt64) + 1}, 0, false},
		{"json number", Claims{"iat": json.Number("1000")}, 1000, true},
		{"json number fraction", Claims{"iat": json.Number("1000.5")}, 0, false},
		{"json number exponent", Claims{"iat": json.Number("1e3")}, 0, false},
		{"float", Claims{"iat": 1000.0}, 0, false},
		{"string", Claims{"iat": "1000"}, 0, false},
		{"missing", Claims{"sub": "u1"}, 0, false},
		{"nil claims", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.claims.IssuedAt()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.Unix())
			} else {
				assert.True(t, got.IsZero())
			}
		})
	}
}

func TestIssuedAtAcrossTimezones(t *testing.T) {
	key := []byte("k")
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, name := range []string{"UTC", "America/New_York", "Asia/Tokyo"} {
		loc, err := time.LoadLocation(name)
		if err != nil {
			t.Skipf("timezone %s unavailable: %v", name, err)
		}

		p, err := New(WithClock(func() time.Time { return issued.In(loc) }))
		require.NoError(t, err)

		token, err := p.Serialize(map[string]any{"iat": issued.Unix()}, key, HS256)
		require.NoError(t, err)

		_, err = p.Unserialize(token, key, true)
		assert.NoError(t, err, name)
	}
}
