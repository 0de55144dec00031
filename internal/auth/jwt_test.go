package auth_test

import (
	"testing"
	"time"

	"equiedge/config"
	"equiedge/internal/auth"

	"github.com/stretchr/testify/assert"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 168 * time.Hour,
		Issuer:        "equiedge",
	}
}

func TestAccessToken_RoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	token, err := auth.GenerateAccessToken(cfg, 42, "rider@example.com", "prof-uuid-1", true)
	assert.NoError(t, err)

	claims, err := auth.ParseAccessToken(cfg, token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "rider@example.com", claims.Email)
	assert.Equal(t, "prof-uuid-1", claims.ProfileID)
	assert.True(t, claims.IsExpert)
}

func TestAccessToken_WrongSecretRejected(t *testing.T) {
	cfg := testJWTConfig()
	token, err := auth.GenerateAccessToken(cfg, 1, "a@b.c", "p1", false)
	assert.NoError(t, err)

	other := testJWTConfig()
	other.AccessSecret = "different"
	_, err = auth.ParseAccessToken(other, token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	token, err := auth.GenerateRefreshToken(cfg, 7)
	assert.NoError(t, err)

	id, err := auth.ParseRefreshToken(cfg, token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), id)
}

func TestRefreshToken_NotValidAsAccess(t *testing.T) {
	cfg := testJWTConfig()
	token, err := auth.GenerateRefreshToken(cfg, 7)
	assert.NoError(t, err)

	_, err = auth.ParseAccessToken(cfg, token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
