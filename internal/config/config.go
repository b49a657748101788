// Package config resolves the Outline server location and credentials.
// Environment variables take precedence; a YAML file in the user's home
// directory is the fallback.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// EnvBaseURL is the environment variable naming the server base URL.
	EnvBaseURL = "OUTLINE_BASE_URL"
	// EnvAPIKey is the environment variable holding the API key.
	EnvAPIKey = "OUTLINE_API_KEY"
	// FileName is the fallback config file in the user's home directory.
	FileName = ".outline-cli.yml"
)

// Config holds the resolved client configuration.
type Config struct {
	BaseURL string
	APIKey  string
}

// Error is a configuration resolution failure. It is raised before any
// network call is attempted.
type Error struct {
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// DefaultPath returns the location of the fallback config file.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, FileName)
}

// Load resolves configuration from the environment and the default
// fallback file.
func Load() (*Config, error) {
	return LoadFile(DefaultPath())
}

// LoadFile resolves configuration from the environment and the given
// fallback file. The file is optional; environment variables win when both
// are present.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	_ = v.BindEnv("base_url", EnvBaseURL)
	_ = v.BindEnv("api_key", EnvAPIKey)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	cfg := &Config{
		BaseURL: v.GetString("base_url"),
		APIKey:  v.GetString("api_key"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that both settings resolved, naming both remediation
// paths in the failure message.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return &Error{Message: fmt.Sprintf(
			"Missing base URL. Set %s environment variable or add 'base_url' to ~/%s",
			EnvBaseURL, FileName)}
	}
	if c.APIKey == "" {
		return &Error{Message: fmt.Sprintf(
			"Missing API key. Set %s environment variable or add 'api_key' to ~/%s",
			EnvAPIKey, FileName)}
	}
	return nil
}
