package token

import (
	"time"

	xoauth2 "golang.org/x/oauth2"
)

// OAuth2Token converts the token into a golang.org/x/oauth2 Token so it can
// feed oauth2.NewClient and TokenSource plumbing directly. Expiry is computed
// from the issue time and declared lifetime; it stays zero when no lifetime
// was declared, which that package treats as never expiring.
func (t *AccessToken) OAuth2Token() *xoauth2.Token {
	out := &xoauth2.Token{
		AccessToken: t.accessToken,
		TokenType:   t.tokenType,
	}
	if t.refreshToken != nil {
		out.RefreshToken = *t.refreshToken
	}
	if t.expiresIn != nil {
		out.ExpiresIn = *t.expiresIn
		out.Expiry = t.issuedAt.Add(time.Duration(*t.expiresIn) * time.Second)
	}
	return out
}
