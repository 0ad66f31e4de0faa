package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int  `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP `envPrefix:"HTTP_"`
	Auth     Auth `envPrefix:"AUTH_"`
	Seed     Seed `envPrefix:"SEED_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Auth contains the shared-secret token the API expects on every request.
type Auth struct {
	Token string `env:"TOKEN" envDefault:"your-secret-token"`
}

// Seed controls the synthetic users loaded into the store at startup.
type Seed struct {
	StartID int64 `env:"START_ID" envDefault:"1"`
	Count   int   `env:"COUNT" envDefault:"10"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
