// Package config handles configuration management for durp.
// It layers embedded defaults, an optional TOML or YAML config file, a .env
// file and DURP_* environment variables, in that order of precedence.
package config
