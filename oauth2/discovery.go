package oauth2

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/rs/zerolog/log"
)

// Discover builds a Provider from an issuer's OIDC discovery document
// (/.well-known/openid-configuration). Only metadata is fetched; the token
// endpoint itself is never called.
func Discover(ctx context.Context, issuer, clientID, clientSecret string) (*Provider, error) {
	oidcProvider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover issuer %q: %w", issuer, err)
	}

	endpoint := oidcProvider.Endpoint()
	provider := &Provider{
		AuthorizationEndpoint: endpoint.AuthURL,
		TokenEndpoint:         endpoint.TokenURL,
		ClientID:              clientID,
		ClientSecret:          clientSecret,
	}

	log.Debug().
		Str("issuer", issuer).
		Str("token_endpoint", provider.TokenEndpoint).
		Str("provider_id", provider.ProviderID()).
		Msg("Discovered provider configuration")

	return provider, nil
}
