package config

import "github.com/spf13/viper"

// Config holds the process-wide settings. Everything comes from the
// environment with the BLINK_ prefix.
type Config struct {
	Addr    string // listen address for the HTTP server
	RPCURL  string // Solana RPC endpoint
	Cluster string // mainnet, devnet, testnet
	IconURL string // absolute icon URL override; derived from the request host when empty
}

// FromEnv reads the configuration from environment variables, falling back
// to devnet defaults.
func FromEnv() Config {
	v := viper.New()
	v.SetEnvPrefix("blink")
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("rpc_url", "https://api.devnet.solana.com")
	v.SetDefault("cluster", "devnet")
	v.SetDefault("icon_url", "")

	return Config{
		Addr:    v.GetString("addr"),
		RPCURL:  v.GetString("rpc_url"),
		Cluster: v.GetString("cluster"),
		IconURL: v.GetString("icon_url"),
	}
}
