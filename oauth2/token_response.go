package oauth2

import (
	"encoding/json"
	"fmt"
)

// TokenResponse represents the response from an OAuth2 token request.
// This is the standard OAuth2 token endpoint response format as defined in
// RFC 6749 §5.1. Optional fields are pointers so an omitted field stays
// distinguishable from a zero value; per the RFC, omission means "unchanged"
// or "as requested", never "none".
//
// The fields here are decoded, not validated: RFC grammar checks happen when
// a token.AccessToken is derived from this response.
type TokenResponse struct {
	// AccessToken is the credential used to access protected resources.
	// Usage: Include in Authorization header: "Bearer <access_token>"
	AccessToken string `json:"access_token"`

	// TokenType indicates how to use the access token.
	// Only bearer tokens (RFC 6750) are supported by this library.
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token.
	// Example: 3600 (for 1 hour). Servers may omit it entirely.
	ExpiresIn *int64 `json:"expires_in,omitempty"`

	// RefreshToken is an opaque token used to obtain new access tokens.
	// Example: "tGzv3JOkF0XG5Qx2TlKWIA"
	// A refresh response may omit it, meaning the previous one stays valid.
	RefreshToken *string `json:"refresh_token,omitempty"`

	// Scope is the space-separated list of granted permissions.
	// Example: "openid profile email api.read"
	// Omitted when the granted scope equals the requested scope.
	Scope *string `json:"scope,omitempty"`
}

// ParseTokenResponse decodes a token endpoint JSON reply into typed fields.
// Unknown members are ignored, as the RFC requires of clients.
func ParseTokenResponse(data []byte) (*TokenResponse, error) {
	var tr TokenResponse
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	return &tr, nil
}
