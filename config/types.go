package config

// Config represents the complete configuration structure
type Config struct {
	OAuth   OAuthConfig   `mapstructure:"oauth"`
	API     APIConfig     `mapstructure:"api"`
	Filters FilterConfig  `mapstructure:"filters"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OAuthConfig holds the xREL OAuth2 application credentials
type OAuthConfig struct {
	ClientID     string   `mapstructure:"client_id"`
	ClientSecret string   `mapstructure:"client_secret"`
	RedirectURI  string   `mapstructure:"redirect_uri"`
	Scopes       []string `mapstructure:"scopes"`
}

// APIConfig holds client-level API settings
type APIConfig struct {
	// Format is the payload representation, "json" or "xml"
	Format string `mapstructure:"format"`
	// TimeoutSeconds is the HTTP timeout per request
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// FilterConfig maps preset names to filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
