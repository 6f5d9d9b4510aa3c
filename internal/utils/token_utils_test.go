package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
	"github.com/wazeer/wazeer_backend/internal/utils"
)

const testSecret = "test-secret-key-that-is-long-enough"

func testUser() *domain.User {
	return &domain.User{
		UserID:   "user-1",
		Username: "clerk",
		Name:     "Clerk",
		Role:     domain.RoleNormalAdmin,
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := utils.GenerateJWT(testUser(), testSecret, time.Hour, "wazeer-test")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "wazeer-test", claims.Issuer)

	principal := claims.Principal()
	assert.Equal(t, "user-1", principal.UserID)
	assert.Equal(t, "clerk", principal.Username)
	assert.Equal(t, domain.RoleNormalAdmin, principal.Role)
	assert.False(t, principal.CanDelete())
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT(testUser(), testSecret, time.Hour, "wazeer-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "a-different-secret")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT(testUser(), testSecret, -time.Minute, "wazeer-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestRefreshTokenHashing(t *testing.T) {
	raw, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.Len(t, raw, 64)

	hash := utils.HashRefreshToken(raw)
	assert.True(t, utils.CompareRefreshTokenHash(raw, hash))
	assert.False(t, utils.CompareRefreshTokenHash(raw+"x", hash))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("ChangeMe123!")
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("ChangeMe123!", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}
