package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	// Application settings
	Port            string `envconfig:"PORT" default:"8080"`
	GinMode         string `envconfig:"GIN_MODE" default:"debug"`
	MongodbURL      string `envconfig:"MONGODB_URL" required:"true"`
	MongodbDatabase string `envconfig:"MONGODB_DATABASE" default:"tunerec"`

	// Catalog service connection
	CatalogURL     string `envconfig:"CATALOG_URL" required:"true"`
	CatalogTimeout int    `envconfig:"CATALOG_TIMEOUT" default:"10"` // seconds

	// Optional OAuth2 client credentials for the catalog
	CatalogClientID     string `envconfig:"CATALOG_CLIENT_ID"`
	CatalogClientSecret string `envconfig:"CATALOG_CLIENT_SECRET"`
	CatalogTokenURL     string `envconfig:"CATALOG_TOKEN_URL"`

	// Authentication
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	ServiceToken string `envconfig:"SERVICE_TOKEN"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CatalogTimeoutDuration returns the catalog timeout as a duration
func (c *Config) CatalogTimeoutDuration() time.Duration {
	return time.Duration(c.CatalogTimeout) * time.Second
}
