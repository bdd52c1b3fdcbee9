package infakt

// Base URLs of the two inFakt environments.
const (
	ProductionBaseURL = "https://api.infakt.pl/api/v3"
	SandboxBaseURL    = "https://api.sandbox-infakt.pl/api/v3"
)

// APIKeyHeader carries the API key on every request.
const APIKeyHeader = "X-inFakt-ApiKey"

// Environment selects the API host.
type Environment string

const (
	EnvProduction Environment = "production"
	EnvSandbox    Environment = "sandbox"
)

// Config is the session configuration of a Client. It is copied by New, so
// later changes to the caller's value have no effect.
type Config struct {
	// APIKey is sent as X-inFakt-ApiKey. Required.
	APIKey string
	// Sandbox selects the sandbox host instead of production.
	Sandbox bool
	// Fetcher performs HTTP requests. Defaults to NewHTTPFetcher().
	Fetcher Fetcher
}

// Environment reports which API environment the configuration targets.
func (c Config) Environment() Environment {
	if c.Sandbox {
		return EnvSandbox
	}
	return EnvProduction
}

// BaseURL returns the API base URL for the configured environment.
func (c Config) BaseURL() string {
	if c.Sandbox {
		return SandboxBaseURL
	}
	return ProductionBaseURL
}

func (c Config) validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
