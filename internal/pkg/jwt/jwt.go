package jwt

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// AccessAuth is the only access label issued; tokens with any other
// label are rejected on parse.
const AccessAuth = "auth"

type Claims struct {
	UserID string `json:"user_id"`
	Access string `json:"access"`
	jwtlib.RegisteredClaims
}

// GenerateToken signs a session token for userID. Tokens carry no
// expiry: a token stays valid until it is removed from the user's
// stored session list on logout.
func GenerateToken(userID string, secret []byte) (string, error) {
	claims := Claims{
		UserID: userID,
		Access: AccessAuth,
		RegisteredClaims: jwtlib.RegisteredClaims{
			// a random id keeps concurrent sessions of one user
			// distinct, so logout of one cannot pull the others
			ID:       newTokenID(),
			IssuedAt: jwtlib.NewNumericDate(time.Now()),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func newTokenID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenString, &Claims{}, func(token *jwtlib.Token) (interface{}, error) {
		if token.Method.Alg() != jwtlib.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == "" || claims.Access != AccessAuth {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
