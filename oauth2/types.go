package oauth2

// GrantType represents the OAuth 2.0 grant type used at the token endpoint.
// Determines which derivation rules apply to the resulting access token.
type GrantType string

const (
	// AuthorizationCodeGrant exchanges an authorization code for tokens.
	// Used in: Authorization Code Flow
	// A token derived from this exchange falls back to the requested scope
	// when the server omits one (RFC 6749 §3.3).
	AuthorizationCodeGrant GrantType = "authorization_code"

	// RefreshTokenCodeGrant exchanges a refresh token for a new access token.
	// Used in: Token refresh flow (get a new access token without re-authenticating)
	// Fields the server omits carry forward from the token being refreshed.
	RefreshTokenCodeGrant GrantType = "refresh_token"
)
