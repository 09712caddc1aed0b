package token

import "encoding/json"

type tokenJSON struct {
	ProviderID   string  `json:"provider_id"`
	IssuedAt     string  `json:"issued_at"`
	AccessToken  string  `json:"access_token"`
	TokenType    string  `json:"token_type"`
	ExpiresIn    *int64  `json:"expires_in,omitempty"`
	RefreshToken *string `json:"refresh_token,omitempty"`
	Scope        *string `json:"scope,omitempty"`
}

// MarshalJSON encodes the token with issued_at in the fixed IssuedAtLayout
// encoding, so the output round-trips through UnmarshalJSON.
func (t *AccessToken) MarshalJSON() ([]byte, error) {
	return json.Marshal(tokenJSON{
		ProviderID:   t.providerID,
		IssuedAt:     t.issuedAt.Format(IssuedAtLayout),
		AccessToken:  t.accessToken,
		TokenType:    t.tokenType,
		ExpiresIn:    t.expiresIn,
		RefreshToken: t.refreshToken,
		Scope:        t.scope,
	})
}

// UnmarshalJSON decodes through the validating constructor, so a token read
// back from a caller's storage honours the same invariants as a freshly
// derived one. Malformed fields fail with the same field-tagged error.
func (t *AccessToken) UnmarshalJSON(data []byte) error {
	var raw tokenJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := New(raw.ProviderID, raw.IssuedAt, raw.AccessToken, raw.TokenType, raw.ExpiresIn, raw.RefreshToken, raw.Scope)
	if err != nil {
		return err
	}
	*t = *decoded
	return nil
}
