package oauth2

import (
	"crypto/sha256"
	"encoding/base64"
)

// Provider describes one OAuth server configuration a client talks to.
type Provider struct {
	// AuthorizationEndpoint is where the user agent is sent to authorize.
	// Example: "https://auth.example.com/oauth/authorize"
	AuthorizationEndpoint string

	// TokenEndpoint exchanges authorization codes and refresh tokens for tokens.
	// Example: "https://auth.example.com/oauth/token"
	TokenEndpoint string

	// ClientID identifies this client at the provider.
	ClientID string

	// ClientSecret is the secret credential for confidential clients.
	// Security: never log or expose this value.
	ClientSecret string
}

// ProviderID returns an opaque identifier of this provider configuration.
// The same endpoints and client ID always map to the same identifier, so
// tokens can be matched back to the configuration that issued them across
// restarts. The client secret is not part of the identity.
func (p *Provider) ProviderID() string {
	h := sha256.New()
	h.Write([]byte(p.AuthorizationEndpoint))
	h.Write([]byte{0})
	h.Write([]byte(p.TokenEndpoint))
	h.Write([]byte{0})
	h.Write([]byte(p.ClientID))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
