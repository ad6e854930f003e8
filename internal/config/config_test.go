package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SQUARE_ACCESS_TOKEN", "tok")
	t.Setenv("SQUARE_LOCATION_ID", "LOC1")
	t.Setenv("SQUARE_ENVIRONMENT", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "production", cfg.SquareEnvironment)
	assert.False(t, cfg.RegisterAppleDomain)
}

func TestLoadMissingCredentialsFails(t *testing.T) {
	t.Setenv("SQUARE_ACCESS_TOKEN", "")
	t.Setenv("SQUARE_LOCATION_ID", "LOC1")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("SQUARE_ACCESS_TOKEN", "tok")
	t.Setenv("SQUARE_LOCATION_ID", "")
	_, err = Load()
	require.Error(t, err)
}

func TestLoadAppleDomainFlags(t *testing.T) {
	t.Setenv("SQUARE_ACCESS_TOKEN", "tok")
	t.Setenv("SQUARE_LOCATION_ID", "LOC1")
	t.Setenv("REGISTER_APPLE_DOMAIN", "true")
	t.Setenv("APPLE_PAY_DOMAIN", "give.example.org")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.RegisterAppleDomain)
	assert.Equal(t, "give.example.org", cfg.ApplePayDomain)
}
