package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, defaultRunAddress, cfg.Server.RunAddress)
	assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, EnvLocal, cfg.Env)
	assert.True(t, cfg.Seed)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "127.0.0.1:9999")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("SEED_DEMO", "false")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.Server.RunAddress)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Seed)
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("TOKEN_TTL", "0s")
	_, err := Load(viper.New())
	assert.Error(t, err)
}
