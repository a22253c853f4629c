package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		API: APIConfig{
			Format:         "json",
			TimeoutSeconds: 30,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{
			name:    "Valid format - json",
			format:  "json",
			wantErr: false,
		},
		{
			name:    "Valid format - xml",
			format:  "xml",
			wantErr: false,
		},
		{
			name:    "Invalid format - yaml",
			format:  "yaml",
			wantErr: true,
		},
		{
			name:    "Empty format",
			format:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.API.Format = tt.format

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateOAuthPairing(t *testing.T) {
	tests := []struct {
		name         string
		clientID     string
		clientSecret string
		wantErr      bool
	}{
		{
			name:    "Neither set",
			wantErr: false,
		},
		{
			name:         "Both set",
			clientID:     "id",
			clientSecret: "secret",
			wantErr:      false,
		},
		{
			name:     "Only id set",
			clientID: "id",
			wantErr:  true,
		},
		{
			name:         "Only secret set",
			clientSecret: "secret",
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.OAuth.ClientID = tt.clientID
			cfg.OAuth.ClientSecret = tt.clientSecret

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"
	if err := validate(cfg); err == nil {
		t.Error("validate() expected error for invalid logging level")
	}

	cfg = validConfig()
	cfg.Logging.Format = "text"
	if err := validate(cfg); err == nil {
		t.Error("validate() expected error for invalid logging format")
	}
}

func TestValidateTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.API.TimeoutSeconds = 0
	if err := validate(cfg); err == nil {
		t.Error("validate() expected error for zero timeout")
	}
}
