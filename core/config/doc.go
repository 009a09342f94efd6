// File: doc.go
// Title: Package Documentation for config
// Description: Package overview for configuration loading.

// Package config loads configuration for the lingua command-line tool
// from TOML or YAML files, with environment variable overrides and
// dot-notation access to nested keys.
//
//	cfg, err := config.LoadWithOptions("configs/lingua.toml", config.Options{
//		EnvPrefix: "LINGUA",
//	})
//	locale := cfg.GetString("format.locale", "en-US")
//
// With the prefix "LINGUA" the key "format.locale" is overridden by the
// LINGUA_FORMAT_LOCALE environment variable when it is set.
package config
