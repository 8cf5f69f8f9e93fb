package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Run("ClaimsSurviveTheTrip", func(t *testing.T) {
		token, err := GenerateJWT("64b0c1d2e3f4a5b6c7d8e9f0", "ann@example.com", "admin")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := ParseJWT(token)
		assert.NoError(t, err)
		assert.Equal(t, "64b0c1d2e3f4a5b6c7d8e9f0", claims.UserID)
		assert.Equal(t, "ann@example.com", claims.Email)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("TokenCarriesAnExpiry", func(t *testing.T) {
		token, err := GenerateJWT("u1", "u1@example.com", "user")
		assert.NoError(t, err)

		claims, err := ParseJWT(token)
		assert.NoError(t, err)
		assert.NotNil(t, claims.ExpiresAt)
		assert.True(t, claims.ExpiresAt.After(time.Now()))
	})

	t.Run("EmptyTokenRejected", func(t *testing.T) {
		_, err := ParseJWT("")
		assert.Error(t, err)
	})

	t.Run("TamperedTokenRejected", func(t *testing.T) {
		token, err := GenerateJWT("u1", "u1@example.com", "user")
		assert.NoError(t, err)

		_, err = ParseJWT(token + "x")
		assert.Error(t, err)
	})
}

func TestRedisFallbacksWithoutClient(t *testing.T) {
	// ไม่มี Redis = dev mode: blacklist เงียบ, rate limit ปล่อยผ่าน
	t.Run("BlacklistIsANoOp", func(t *testing.T) {
		assert.NoError(t, BlacklistToken("some-token", time.Hour))

		blacklisted, err := IsTokenBlacklisted("some-token")
		assert.NoError(t, err)
		assert.False(t, blacklisted)
	})

	t.Run("RateLimiterNeverLimits", func(t *testing.T) {
		limiter := NewRedisRateLimiter()
		for i := 0; i < 5; i++ {
			limited, err := limiter.Check(Ctx, "login:ann@example.com", 2, time.Minute)
			assert.NoError(t, err)
			assert.False(t, limited)
		}
	})
}
