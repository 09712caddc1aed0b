package oauth2_test

import (
	"testing"

	"github.com/jrsteele09/go-oauth-client/oauth2"
	"github.com/stretchr/testify/require"
)

func TestParseTokenResponse(t *testing.T) {
	t.Run("full response", func(t *testing.T) {
		tr, err := oauth2.ParseTokenResponse([]byte(`{
			"access_token": "2YotnFZFEjr1zCsicMWpAA",
			"token_type": "bearer",
			"expires_in": 3600,
			"refresh_token": "tGzv3JOkF0XG5Qx2TlKWIA",
			"scope": "read write"
		}`))
		require.NoError(t, err)
		require.Equal(t, "2YotnFZFEjr1zCsicMWpAA", tr.AccessToken)
		require.Equal(t, "bearer", tr.TokenType)
		require.NotNil(t, tr.ExpiresIn)
		require.Equal(t, int64(3600), *tr.ExpiresIn)
		require.NotNil(t, tr.RefreshToken)
		require.Equal(t, "tGzv3JOkF0XG5Qx2TlKWIA", *tr.RefreshToken)
		require.NotNil(t, tr.Scope)
		require.Equal(t, "read write", *tr.Scope)
	})

	t.Run("omitted optionals stay nil", func(t *testing.T) {
		tr, err := oauth2.ParseTokenResponse([]byte(`{
			"access_token": "2YotnFZFEjr1zCsicMWpAA",
			"token_type": "Bearer"
		}`))
		require.NoError(t, err)
		require.Nil(t, tr.ExpiresIn)
		require.Nil(t, tr.RefreshToken)
		require.Nil(t, tr.Scope)
	})

	t.Run("unknown members ignored", func(t *testing.T) {
		tr, err := oauth2.ParseTokenResponse([]byte(`{
			"access_token": "AT",
			"token_type": "bearer",
			"example_parameter": "example_value"
		}`))
		require.NoError(t, err)
		require.Equal(t, "AT", tr.AccessToken)
	})

	t.Run("malformed JSON rejected", func(t *testing.T) {
		_, err := oauth2.ParseTokenResponse([]byte(`{"access_token": `))
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to decode token response")
	})
}
