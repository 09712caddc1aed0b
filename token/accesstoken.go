package token

import (
	"time"

	"github.com/jrsteele09/go-oauth-client/oauth2"
)

// AccessToken is a validated OAuth2 bearer access token as issued by a
// provider's token endpoint (RFC 6749, RFC 6750). Instances are immutable:
// every field is checked against the RFC grammar on construction and never
// written afterwards, so a malformed token cannot exist in the system and
// values can be shared across goroutines without synchronisation.
type AccessToken struct {
	providerID   string
	issuedAt     time.Time
	accessToken  string
	tokenType    string
	expiresIn    *int64
	refreshToken *string
	scope        *string
}

// New builds an AccessToken from raw field values. Fields are validated in
// declaration order and the first violation fails construction with an
// *InvalidTokenError naming the field; no partially valid instance is ever
// returned. providerID is opaque and accepted as-is. issuedAt must be encoded
// as IssuedAtLayout.
func New(providerID, issuedAt, accessToken, tokenType string, expiresIn *int64, refreshToken, scope *string) (*AccessToken, error) {
	t := &AccessToken{providerID: providerID}

	issued, err := parseIssuedAt(issuedAt)
	if err != nil {
		return nil, err
	}
	t.issuedAt = issued

	if !validTokenString(accessToken) {
		return nil, invalidField(FieldAccessToken, "must be one or more printable ASCII characters")
	}
	t.accessToken = accessToken

	if !validTokenType(tokenType) {
		return nil, invalidField(FieldTokenType, `must be "bearer" or "Bearer"`)
	}
	t.tokenType = tokenType

	if expiresIn != nil {
		if *expiresIn <= 0 {
			return nil, invalidField(FieldExpiresIn, "must be a positive number of seconds")
		}
		v := *expiresIn
		t.expiresIn = &v
	}

	if refreshToken != nil {
		if !validTokenString(*refreshToken) {
			return nil, invalidField(FieldRefreshToken, "must be one or more printable ASCII characters")
		}
		v := *refreshToken
		t.refreshToken = &v
	}

	if scope != nil {
		if !validScope(*scope) {
			return nil, invalidField(FieldScope, "must be space-separated scope tokens")
		}
		v := *scope
		t.scope = &v
	}

	return t, nil
}

// FromCodeResponse derives the access token issued by an authorization-code
// exchange. When the response omits scope the requested scope applies: per
// RFC 6749 §3.3 an omitted scope means the full requested scope was granted,
// not that no scope was granted.
func FromCodeResponse(provider *oauth2.Provider, now time.Time, response *oauth2.TokenResponse, requestedScope *string) (*AccessToken, error) {
	scope := response.Scope
	if scope == nil {
		scope = requestedScope
	}
	return New(
		provider.ProviderID(),
		now.Format(IssuedAtLayout),
		response.AccessToken,
		response.TokenType,
		response.ExpiresIn,
		response.RefreshToken,
		scope,
	)
}

// FromRefreshResponse derives the access token issued by a refresh-token
// exchange. Fields the server omitted carry forward from previous: an omitted
// refresh token means the existing one remains valid, and an omitted scope
// means the granted scope is unchanged. previous is only read, never mutated
// or retained by the result.
func FromRefreshResponse(provider *oauth2.Provider, now time.Time, response *oauth2.TokenResponse, previous *AccessToken) (*AccessToken, error) {
	refreshToken := response.RefreshToken
	if refreshToken == nil {
		refreshToken = previous.refreshToken
	}
	scope := response.Scope
	if scope == nil {
		scope = previous.scope
	}
	return New(
		provider.ProviderID(),
		now.Format(IssuedAtLayout),
		response.AccessToken,
		response.TokenType,
		response.ExpiresIn,
		refreshToken,
		scope,
	)
}

// IsExpired reports whether the token has expired at now. The boundary is
// inclusive: a token is expired exactly at issuedAt + expiresIn seconds.
// Tokens without a declared lifetime never expire.
func (t *AccessToken) IsExpired(now time.Time) bool {
	if t.expiresIn == nil {
		return false
	}
	expiresAt := t.issuedAt.Add(time.Duration(*t.expiresIn) * time.Second)
	return !now.Before(expiresAt)
}

// ProviderID identifies the provider configuration that issued the token.
func (t *AccessToken) ProviderID() string {
	return t.providerID
}

// IssuedAt returns when the token was issued.
func (t *AccessToken) IssuedAt() time.Time {
	return t.issuedAt
}

// Token returns the access token string presented to resource servers.
func (t *AccessToken) Token() string {
	return t.accessToken
}

// TokenType returns the declared token type, one of the two bearer spellings.
func (t *AccessToken) TokenType() string {
	return t.tokenType
}

// ExpiresIn returns the declared lifetime in seconds, if the server declared one.
func (t *AccessToken) ExpiresIn() (int64, bool) {
	if t.expiresIn == nil {
		return 0, false
	}
	return *t.expiresIn, true
}

// RefreshToken returns the refresh token, if one was granted.
func (t *AccessToken) RefreshToken() (string, bool) {
	if t.refreshToken == nil {
		return "", false
	}
	return *t.refreshToken, true
}

// Scope returns the granted scope, if one is known.
func (t *AccessToken) Scope() (string, bool) {
	if t.scope == nil {
		return "", false
	}
	return *t.scope, true
}
