package token

import (
	"errors"
	"fmt"
)

// ErrInvalidToken is the sentinel every construction failure unwraps to.
var ErrInvalidToken = errors.New("invalid token")

// Field names used to tag validation failures.
const (
	FieldIssuedAt     = "issued_at"
	FieldAccessToken  = "access_token"
	FieldTokenType    = "token_type"
	FieldExpiresIn    = "expires_in"
	FieldRefreshToken = "refresh_token"
	FieldScope        = "scope"
)

// InvalidTokenError reports which field of a prospective access token failed
// validation, so callers can branch on Field instead of matching message text.
type InvalidTokenError struct {
	Field  string
	Reason string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token: %s: %s", e.Field, e.Reason)
}

func (e *InvalidTokenError) Unwrap() error {
	return ErrInvalidToken
}

func invalidField(field, reason string) error {
	return &InvalidTokenError{Field: field, Reason: reason}
}
