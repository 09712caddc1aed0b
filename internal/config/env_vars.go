package config

import "os"

const (
	issuerEnvVar        = "OAUTH_ISSUER"
	authzEndpointEnvVar = "OAUTH_AUTHORIZATION_ENDPOINT"
	tokenEndpointEnvVar = "OAUTH_TOKEN_ENDPOINT"
	clientIDEnvVar      = "OAUTH_CLIENT_ID"
	clientSecretEnvVar  = "OAUTH_CLIENT_SECRET"
	scopeEnvVar         = "OAUTH_REQUESTED_SCOPE"
)

type EnvVars struct{}

var _ ProviderConfig = EnvVars{}
var _ ClientConfig = EnvVars{}

func (EnvVars) GetIssuer() string {
	return GetEnv(issuerEnvVar, "")
}

func (EnvVars) GetAuthorizationEndpoint() string {
	return GetEnv(authzEndpointEnvVar, "")
}

func (EnvVars) GetTokenEndpoint() string {
	return GetEnv(tokenEndpointEnvVar, "")
}

func (EnvVars) GetClientID() string {
	return GetEnv(clientIDEnvVar, "")
}

func (EnvVars) GetClientSecret() string {
	return GetEnv(clientSecretEnvVar, "")
}

// GetRequestedScope returns the scope this client asks for in authorization
// requests. It is the fallback scope for tokens issued without one.
func (EnvVars) GetRequestedScope() string {
	return GetEnv(scopeEnvVar, "")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
