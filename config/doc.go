// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// When no file is found the built-in defaults are used, so the tool runs
// against the three standard city extracts without any setup.
package config
