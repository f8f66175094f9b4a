package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker_GenerateAndParseToken(t *testing.T) {
	tokenTTL := 15 * time.Minute
	maker := NewJWTMaker("test_secret_key_1234567890", tokenTTL)

	token, err := maker.GenerateToken("user-1", "jane@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
	assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
}

func TestJWTMaker_NoTTL(t *testing.T) {
	maker := NewJWTMaker("secret", 0)

	token, err := maker.GenerateToken("user-1", "jane@example.com")
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	maker := NewJWTMaker("secret", time.Minute)

	foreign, err := NewJWTMaker("other-secret", time.Minute).GenerateToken("user-1", "a@b.c")
	require.NoError(t, err)

	expired, err := NewJWTMaker("secret", -time.Minute).GenerateToken("user-1", "a@b.c")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Email: "a@b.c"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":          "",
		"garbage":        "not.a.token",
		"foreign secret": foreign,
		"expired":        expired,
		"alg none":       none,
	} {
		t.Run(name, func(t *testing.T) {
			claims, err := maker.ParseToken(token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
