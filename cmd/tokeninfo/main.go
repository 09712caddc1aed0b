package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-oauth-client/internal/config"
	"github.com/jrsteele09/go-oauth-client/internal/utils"
	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/jrsteele09/go-oauth-client/token"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// tokeninfo derives a validated access token from a captured token-endpoint
// response and reports its fields and expiry status. Provider and client
// settings come from the OAUTH_* environment variables.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Str("run_id", uuid.NewString()).Logger()

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("tokeninfo failed")
	}
}

func run() error {
	grant := flag.String("grant", string(oauth2.AuthorizationCodeGrant), "grant the response came from: authorization_code or refresh_token")
	responsePath := flag.String("response", "-", "token endpoint JSON response file, - for stdin")
	previousPath := flag.String("previous", "", "previously stored token JSON file, required for refresh_token")
	flag.Parse()

	cfg := config.New()
	provider, err := resolveProvider(context.Background(), cfg)
	if err != nil {
		return err
	}

	data, err := readInput(*responsePath)
	if err != nil {
		return fmt.Errorf("failed to read token response: %w", err)
	}
	response, err := oauth2.ParseTokenResponse(data)
	if err != nil {
		return err
	}

	now := time.Now()
	accessToken, err := deriveToken(oauth2.GrantType(*grant), provider, now, response, *previousPath, cfg.GetRequestedScope())
	if err != nil {
		return err
	}

	return report(accessToken, now)
}

func resolveProvider(ctx context.Context, cfg config.Config) (*oauth2.Provider, error) {
	if issuer := cfg.GetIssuer(); issuer != "" {
		return oauth2.Discover(ctx, issuer, cfg.GetClientID(), cfg.GetClientSecret())
	}
	return &oauth2.Provider{
		AuthorizationEndpoint: cfg.GetAuthorizationEndpoint(),
		TokenEndpoint:         cfg.GetTokenEndpoint(),
		ClientID:              cfg.GetClientID(),
		ClientSecret:          cfg.GetClientSecret(),
	}, nil
}

func deriveToken(grant oauth2.GrantType, provider *oauth2.Provider, now time.Time, response *oauth2.TokenResponse, previousPath, requestedScope string) (*token.AccessToken, error) {
	switch grant {
	case oauth2.AuthorizationCodeGrant:
		var scope *string
		if requestedScope != "" {
			scope = utils.Ptr(requestedScope)
		}
		return token.FromCodeResponse(provider, now, response, scope)

	case oauth2.RefreshTokenCodeGrant:
		if previousPath == "" {
			return nil, errors.New("refresh_token grant requires -previous")
		}
		data, err := os.ReadFile(previousPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read previous token: %w", err)
		}
		previous := &token.AccessToken{}
		if err := json.Unmarshal(data, previous); err != nil {
			return nil, fmt.Errorf("failed to decode previous token: %w", err)
		}
		return token.FromRefreshResponse(provider, now, response, previous)

	default:
		return nil, fmt.Errorf("unsupported grant %q", grant)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func report(accessToken *token.AccessToken, now time.Time) error {
	if expiresIn, ok := accessToken.ExpiresIn(); ok {
		log.Info().
			Int64("expires_in", expiresIn).
			Bool("expired", accessToken.IsExpired(now)).
			Msg("Token lifetime")
	} else {
		log.Info().Msg("No expires_in declared, token never expires")
		if claims, err := token.UnverifiedClaims(accessToken.Token()); err == nil && claims.ExpiresAt != nil {
			log.Info().Time("exp_claim", *claims.ExpiresAt).Msg("JWT exp claim present (unverified hint)")
		}
	}

	out, err := json.MarshalIndent(accessToken, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
