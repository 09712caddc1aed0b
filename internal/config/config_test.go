package config_test

import (
	"testing"

	"github.com/jrsteele09/go-oauth-client/internal/config"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnvironment(t *testing.T) {
	t.Run("defaults are empty", func(t *testing.T) {
		for _, envVar := range []string{"OAUTH_ISSUER", "OAUTH_AUTHORIZATION_ENDPOINT", "OAUTH_TOKEN_ENDPOINT", "OAUTH_CLIENT_ID", "OAUTH_CLIENT_SECRET", "OAUTH_REQUESTED_SCOPE"} {
			t.Setenv(envVar, "")
		}

		cfg := config.New()
		require.Empty(t, cfg.GetIssuer())
		require.Empty(t, cfg.GetAuthorizationEndpoint())
		require.Empty(t, cfg.GetTokenEndpoint())
		require.Empty(t, cfg.GetClientID())
		require.Empty(t, cfg.GetClientSecret())
		require.Empty(t, cfg.GetRequestedScope())
	})

	t.Run("values come from environment", func(t *testing.T) {
		t.Setenv("OAUTH_ISSUER", "https://auth.example.org")
		t.Setenv("OAUTH_TOKEN_ENDPOINT", "https://auth.example.org/oauth/token")
		t.Setenv("OAUTH_CLIENT_ID", "web-app-client")
		t.Setenv("OAUTH_REQUESTED_SCOPE", "read write")

		cfg := config.New()
		require.Equal(t, "https://auth.example.org", cfg.GetIssuer())
		require.Equal(t, "https://auth.example.org/oauth/token", cfg.GetTokenEndpoint())
		require.Equal(t, "web-app-client", cfg.GetClientID())
		require.Equal(t, "read write", cfg.GetRequestedScope())
	})
}
