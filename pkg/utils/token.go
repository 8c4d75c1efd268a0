package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	appErrors "sentiment-analysis-api/pkg/errors"
)

// signingMethod resolves the configured algorithm name to an HMAC method.
// Only HMAC algorithms are supported; the secret is a shared symmetric key.
func signingMethod(algorithm string) (*jwt.SigningMethodHMAC, error) {
	switch algorithm {
	case "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("unsupported signing algorithm: %s", algorithm)
	}
}

// GenerateToken issues a signed access token with the username as subject.
func GenerateToken(username, secret, algorithm string, ttl time.Duration) (string, error) {
	method, err := signingMethod(algorithm)
	if err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	return token.SignedString([]byte(secret))
}

// ValidateToken verifies signature and expiry and returns the decoded claims.
// Any failure (bad signature, malformed structure, expiry in the past, or a
// token signed with a different method) is reported as ErrInvalidToken.
func ValidateToken(tokenString, secret, algorithm string) (*jwt.RegisteredClaims, error) {
	method, err := signingMethod(algorithm)
	if err != nil {
		return nil, err
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != method {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, appErrors.ErrInvalidToken
	}

	return claims, nil
}
