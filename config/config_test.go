package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blink/config"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := config.FromEnv()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "https://api.devnet.solana.com", cfg.RPCURL)
	assert.Equal(t, "devnet", cfg.Cluster)
	assert.Empty(t, cfg.IconURL)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("BLINK_ADDR", ":9090")
	t.Setenv("BLINK_RPC_URL", "https://api.mainnet-beta.solana.com")
	t.Setenv("BLINK_CLUSTER", "mainnet")
	t.Setenv("BLINK_ICON_URL", "https://cdn.example.com/icon.png")

	cfg := config.FromEnv()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "https://api.mainnet-beta.solana.com", cfg.RPCURL)
	assert.Equal(t, "mainnet", cfg.Cluster)
	assert.Equal(t, "https://cdn.example.com/icon.png", cfg.IconURL)
}
