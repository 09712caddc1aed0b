package token

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// TimeClaims carries the registered time claims of a JWT-shaped access token.
// A nil field means the token does not carry that claim.
type TimeClaims struct {
	ExpiresAt *time.Time
	IssuedAt  *time.Time
}

// UnverifiedClaims extracts the exp and iat claims from a JWT-shaped access
// token WITHOUT verifying its signature. Some servers omit expires_in and
// encode the lifetime only inside the token; this gives callers that hint.
// The result is advisory only and never feeds IsExpired.
func UnverifiedClaims(accessToken string) (*TimeClaims, error) {
	parsed, _, err := jwtlib.NewParser().ParseUnverified(accessToken, jwtlib.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.New("error extracting claims")
	}

	tc := &TimeClaims{}
	if exp, ok := claims["exp"].(float64); ok {
		v := time.Unix(int64(exp), 0)
		tc.ExpiresAt = &v
	}
	if iat, ok := claims["iat"].(float64); ok {
		v := time.Unix(int64(iat), 0)
		tc.IssuedAt = &v
	}
	return tc, nil
}
