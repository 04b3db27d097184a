package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that the Load function sets the expected default
// values when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"ECOFARM_SERVER_PORT":        "",
		"ECOFARM_SERVER_LOG_LEVEL":   "",
		"ECOFARM_LLM_GEMINI_API_KEY": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "gemini-pro", cfg.LLM.ModelName, "Default model should be gemini-pro")
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.LLM.BaseURL)
	assert.Equal(t, "http://localhost:8080/api/gemini", cfg.Client.Endpoint)
	assert.Equal(t, 3, cfg.Client.MaxRetries)
	assert.Equal(t, 1000, cfg.Client.RetryDelayMs)
}

// TestLoadMissingAPIKey verifies that an absent Gemini API key does not fail
// loading: the server must start and report a configuration failure per
// request instead.
func TestLoadMissingAPIKey(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"ECOFARM_LLM_GEMINI_API_KEY": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should succeed without an API key")
	assert.Empty(t, cfg.LLM.GeminiAPIKey, "API key should be empty, never a fallback literal")
}

// TestLoadFromEnv verifies that the Load function correctly reads values from
// environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"ECOFARM_SERVER_PORT":           "9090",
		"ECOFARM_SERVER_LOG_LEVEL":      "debug",
		"ECOFARM_LLM_GEMINI_API_KEY":    "test-api-key",
		"ECOFARM_LLM_MODEL_NAME":        "gemini-1.5-flash",
		"ECOFARM_CLIENT_ENDPOINT":       "https://ecofarm.example.com/api/gemini",
		"ECOFARM_CLIENT_MAX_RETRIES":    "5",
		"ECOFARM_CLIENT_RETRY_DELAY_MS": "250",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-1.5-flash", cfg.LLM.ModelName)
	assert.Equal(t, "https://ecofarm.example.com/api/gemini", cfg.Client.Endpoint)
	assert.Equal(t, 5, cfg.Client.MaxRetries)
	assert.Equal(t, 250, cfg.Client.RetryDelayMs)
}

// TestLoadValidationErrors verifies that the Load function rejects invalid
// configuration values.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"ECOFARM_SERVER_PORT": "999999",
			},
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"ECOFARM_SERVER_LOG_LEVEL": "verbose",
			},
		},
		{
			name: "Invalid client endpoint",
			envVars: map[string]string{
				"ECOFARM_CLIENT_ENDPOINT": "not-a-url",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			require.Error(t, err, "Load() should return a validation error")
			assert.Nil(t, cfg, "Load() should not return a config on validation failure")
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}
