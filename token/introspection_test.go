package token_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-oauth-client/token"
	"github.com/stretchr/testify/require"
)

func signedTestJWT(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestUnverifiedClaims(t *testing.T) {
	t.Run("extracts exp and iat", func(t *testing.T) {
		issued := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		expires := issued.Add(time.Hour)
		raw := signedTestJWT(t, jwtlib.MapClaims{
			"iat": issued.Unix(),
			"exp": expires.Unix(),
			"sub": "user-1",
		})

		claims, err := token.UnverifiedClaims(raw)
		require.NoError(t, err)
		require.NotNil(t, claims.IssuedAt)
		require.NotNil(t, claims.ExpiresAt)
		require.Equal(t, issued.Unix(), claims.IssuedAt.Unix())
		require.Equal(t, expires.Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("missing time claims stay nil", func(t *testing.T) {
		raw := signedTestJWT(t, jwtlib.MapClaims{"sub": "user-1"})

		claims, err := token.UnverifiedClaims(raw)
		require.NoError(t, err)
		require.Nil(t, claims.IssuedAt)
		require.Nil(t, claims.ExpiresAt)
	})

	t.Run("opaque token is not a JWT", func(t *testing.T) {
		_, err := token.UnverifiedClaims("tGzv3JOkF0XG5Qx2TlKWIA")
		require.Error(t, err)
	})
}
