package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	SetJWTSecret("test-secret")
	t.Cleanup(func() { SetJWTSecret("") })

	token, err := GenerateJWT("admin", "Admin", "session-1", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, "session-1", claims.SessionID())
	assert.InDelta(t, time.Hour.Seconds(), claims.RemainingTTL().Seconds(), 5)
}

func TestParseJWTRejectsBadTokens(t *testing.T) {
	SetJWTSecret("test-secret")
	t.Cleanup(func() { SetJWTSecret("") })

	_, err := ParseJWT("")
	assert.Error(t, err)

	_, err = ParseJWT("not-a-token")
	assert.Error(t, err)

	expired, err := GenerateJWT("admin", "Admin", "session-1", time.Nanosecond)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	_, err = ParseJWT(expired)
	assert.Error(t, err)

	token, err := GenerateJWT("admin", "Admin", "session-1", time.Hour)
	require.NoError(t, err)
	SetJWTSecret("other-secret")
	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestParseJWTRequiresSessionID(t *testing.T) {
	SetJWTSecret("test-secret")
	t.Cleanup(func() { SetJWTSecret("") })

	claims := JWTClaims{
		Username: "admin",
		Role:     "Admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestRedisHelpersWithoutRedis(t *testing.T) {
	require.NoError(t, BlacklistToken("tok", time.Minute))

	blacklisted, err := IsTokenBlacklisted("tok")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	count, err := RecordFailedLogin("admin")
	require.NoError(t, err)
	assert.Zero(t, count)

	_, locked := LoginCooldown("admin")
	assert.False(t, locked)
	ResetLoginAttempts("admin")
}
