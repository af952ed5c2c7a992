// Package config loads virtualias settings from defaults, an optional YAML
// config file and VIRTUALIAS_* environment variables.
package config
