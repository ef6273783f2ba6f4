package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims of a gateway token. The subject is the session id;
// the ERP bearer token itself never leaves the session store.
type SessionClaims struct {
	UserName string `json:"userName,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT generates a new gateway token for the given session.
func GenerateJWT(sessionID string, userName string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserName: userName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a gateway token string, validates its signature and standard claims.
func ParseAndValidateJWT(tokenString string, secretKey string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err // expired, signature invalid, etc.
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
