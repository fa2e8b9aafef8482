package jwt

import (
	"spice-garden/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewJWTService()

	token, err := svc.GenerateTokenUser("u-1", "a@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.GetUserByToken(token)
	require.NoError(t, err)
	assert.Equal(t, UserClaim{UserID: "u-1", Email: "a@example.com", Role: domain.RoleAdmin}, claims)
}

func TestGetUserByTokenRejectsBadTokens(t *testing.T) {
	svc := &jwtService{secretKey: "test-secret", issuer: "SPICE_GARDEN", ttl: time.Hour}

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.GetUserByToken("not-a-token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := &jwtService{secretKey: "other", issuer: "SPICE_GARDEN", ttl: time.Hour}
		token, err := other.GenerateTokenUser("u-1", "a@example.com", domain.RoleUser)
		require.NoError(t, err)

		_, err = svc.GetUserByToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		expired := &jwtService{secretKey: "test-secret", issuer: "SPICE_GARDEN", ttl: -time.Minute}
		token, err := expired.GenerateTokenUser("u-1", "a@example.com", domain.RoleUser)
		require.NoError(t, err)

		_, err = svc.GetUserByToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("none algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwtUserClaim{UserClaim: UserClaim{UserID: "u-1"}})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.GetUserByToken(signed)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("no secret configured", func(t *testing.T) {
		_, err := (&jwtService{ttl: time.Hour}).GenerateTokenUser("u-1", "a@example.com", domain.RoleUser)
		assert.Error(t, err)
	})
}
