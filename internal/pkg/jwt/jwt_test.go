package jwt

import (
	"strings"
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken("5f1b2c3d4e5f60718293a4b5", secret)
	require.NoError(t, err)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, "5f1b2c3d4e5f60718293a4b5", claims.UserID)
	require.Equal(t, AccessAuth, claims.Access)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", []byte("secret-a"))
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("secret-b"))
	require.Error(t, err)
}

func TestTokenTampered(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken("user-1", secret)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[1] = parts[1] + "xx"
	_, err = ParseToken(strings.Join(parts, "."), secret)
	require.Error(t, err)
}

func TestTokenWrongAccessLabel(t *testing.T) {
	secret := []byte("test-secret")
	raw := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, Claims{UserID: "user-1", Access: "reset"})
	token, err := raw.SignedString(secret)
	require.NoError(t, err)

	_, err = ParseToken(token, secret)
	require.Error(t, err)
}

func TestTokensAreDistinctPerIssue(t *testing.T) {
	secret := []byte("test-secret")
	first, err := GenerateToken("user-1", secret)
	require.NoError(t, err)
	second, err := GenerateToken("user-1", secret)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestTokenHasNoExpiry(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken("user-1", secret)
	require.NoError(t, err)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	require.Nil(t, claims.ExpiresAt)
}
