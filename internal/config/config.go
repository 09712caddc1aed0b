package config

type Config interface {
	ProviderConfig
	ClientConfig
}

// ProviderConfig describes where the OAuth server lives. When an issuer is
// set, endpoints are resolved through OIDC discovery and the explicit
// endpoint values act as fallbacks.
type ProviderConfig interface {
	GetIssuer() string
	GetAuthorizationEndpoint() string
	GetTokenEndpoint() string
}

// ClientConfig describes this client's registration at the provider.
type ClientConfig interface {
	GetClientID() string
	GetClientSecret() string
	GetRequestedScope() string
}

type mainConfig struct {
	EnvVars
}

func New() Config {
	return mainConfig{}
}
