package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-123", testSecret, time.Hour, "cardwise-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "cardwise-test", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-123", testSecret, time.Hour, "cardwise-test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "another-secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("user-123", testSecret, -time.Minute, "cardwise-test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, testSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseAndValidateJWT_Garbage(t *testing.T) {
	_, err := ParseAndValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)
}
