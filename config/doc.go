// Package config loads Orchid client settings from YAML files, .env files,
// and environment variables.
//
// Viper handles file parsing and env binding; godotenv loads .env files
// into the process environment first so both sources compose. Environment
// variables use the ORCHID_ prefix with underscore-separated paths
// (e.g. ORCHID_ADDRESS, ORCHID_TLS_CA_FILE).
//
// # Usage
//
//	var cfg orchid.Config
//	err := config.Load("orchid", &cfg)
//	client, err := orchid.NewFromConfig(cfg)
package config
