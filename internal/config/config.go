package config

import (
	"errors"
	"os"
)

type Config struct {
	SquareAccessToken   string
	SquareEnvironment   string // "production" or "sandbox"
	SquareLocationID    string
	AdminKey            string
	RegisterAppleDomain bool
	ApplePayDomain      string
	Port                string
}

// Load reads configuration from the environment. Processor credentials are
// required; everything else has a default or is optional.
func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	env := os.Getenv("SQUARE_ENVIRONMENT")
	if env == "" {
		env = "production"
	}

	cfg := &Config{
		SquareAccessToken:   os.Getenv("SQUARE_ACCESS_TOKEN"),
		SquareEnvironment:   env,
		SquareLocationID:    os.Getenv("SQUARE_LOCATION_ID"),
		AdminKey:            os.Getenv("ADMIN_KEY"),
		RegisterAppleDomain: os.Getenv("REGISTER_APPLE_DOMAIN") == "true",
		ApplePayDomain:      os.Getenv("APPLE_PAY_DOMAIN"),
		Port:                port,
	}

	if cfg.SquareAccessToken == "" {
		return nil, errors.New("SQUARE_ACCESS_TOKEN is required")
	}
	if cfg.SquareLocationID == "" {
		return nil, errors.New("SQUARE_LOCATION_ID is required")
	}

	return cfg, nil
}
