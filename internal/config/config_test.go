package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadFile_FromEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://wiki.example.com")
	t.Setenv(EnvAPIKey, "ol_api_123")

	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, "https://wiki.example.com", cfg.BaseURL)
	assert.Equal(t, "ol_api_123", cfg.APIKey)
}

func TestLoadFile_FromFile(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvAPIKey, "")

	path := writeConfigFile(t, "base_url: https://wiki.example.com\napi_key: ol_api_456\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://wiki.example.com", cfg.BaseURL)
	assert.Equal(t, "ol_api_456", cfg.APIKey)
}

func TestLoadFile_EnvWinsOverFile(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://env.example.com")
	t.Setenv(EnvAPIKey, "env_key")

	path := writeConfigFile(t, "base_url: https://file.example.com\napi_key: file_key\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.BaseURL)
	assert.Equal(t, "env_key", cfg.APIKey)
}

func TestLoadFile_MixedSources(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://env.example.com")
	t.Setenv(EnvAPIKey, "")

	path := writeConfigFile(t, "api_key: file_key\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.BaseURL)
	assert.Equal(t, "file_key", cfg.APIKey)
}

func TestLoadFile_MissingBaseURL(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvAPIKey, "some_key")

	_, err := LoadFile("")
	require.Error(t, err)

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	// The message names both remediation paths.
	assert.Contains(t, cfgErr.Message, EnvBaseURL)
	assert.Contains(t, cfgErr.Message, FileName)
}

func TestLoadFile_MissingAPIKey(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://wiki.example.com")
	t.Setenv(EnvAPIKey, "")

	_, err := LoadFile("")
	require.Error(t, err)

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Message, EnvAPIKey)
	assert.Contains(t, cfgErr.Message, FileName)
}

func TestLoadFile_MalformedFile(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvAPIKey, "")

	path := writeConfigFile(t, "{not yaml: [")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadFile_MissingFileIsOptional(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://wiki.example.com")
	t.Setenv(EnvAPIKey, "ol_api_123")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.NoError(t, err)
	assert.Equal(t, "https://wiki.example.com", cfg.BaseURL)
}

func TestConfig_Validate(t *testing.T) {
	valid := &Config{BaseURL: "https://wiki.example.com", APIKey: "k"}
	assert.NoError(t, valid.Validate())

	missing := &Config{}
	assert.Error(t, missing.Validate())
}
