package security

import (
	"testing"
	"time"

	"studybuddy/internal/platform/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWT() {
	config.AppConfig = &config.Config{
		JWTKey:      []byte("test-secret"),
		JWTIssuer:   "studybuddy-api",
		JWTAudience: "studybuddy-web",
		JWTExp:      time.Hour,
	}
	InitJWT()
}

func parseClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return config.AppConfig.JWTKey, nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestGenerateTokenClaims(t *testing.T) {
	setupJWT()

	tokenString, err := GenerateToken("user-123", "ada@example.com", "Ada Lovelace")
	require.NoError(t, err)

	claims := parseClaims(t, tokenString)
	assert.Equal(t, "user-123", claims["sub"])
	assert.Equal(t, "ada@example.com", claims["email"])
	assert.Equal(t, "Ada Lovelace", claims["name"])
	assert.Equal(t, "studybuddy-api", claims["iss"])
}

func TestGenerateTokenExpiryIsFixedOffset(t *testing.T) {
	setupJWT()

	tokenString, err := GenerateToken("user-123", "ada@example.com", "Ada Lovelace")
	require.NoError(t, err)

	claims := parseClaims(t, tokenString)
	iat, ok := claims["iat"].(float64)
	require.True(t, ok)
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)

	assert.Equal(t, time.Hour, time.Duration(exp-iat)*time.Second)
}

func TestClaimHelpers(t *testing.T) {
	claims := jwt.MapClaims{"sub": "user-123", "email": "ada@example.com"}

	sub, err := GetSubjectFromClaims(claims)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", sub)

	email, err := GetEmailFromClaims(claims)
	assert.NoError(t, err)
	assert.Equal(t, "ada@example.com", email)

	_, err = GetSubjectFromClaims(jwt.MapClaims{})
	assert.Error(t, err)
	_, err = GetEmailFromClaims(jwt.MapClaims{"email": 42})
	assert.Error(t, err)
}
