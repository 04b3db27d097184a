package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Client ClientConfig `mapstructure:"client" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all settings for the upstream generative-AI service.
//
// GeminiAPIKey is deliberately not marked required: the server must start
// without it and report a configuration failure per request instead. The key
// lives exclusively here — there is no fallback value anywhere in the
// codebase.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name" validate:"required"`
	BaseURL      string `mapstructure:"base_url"   validate:"required,url"`
}

// ClientConfig contains settings for the client request wrapper and CLI.
type ClientConfig struct {
	// Endpoint is the proxy endpoint the client wrapper calls.
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`

	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0"`

	// RetryDelayMs is the initial backoff delay in milliseconds; it doubles
	// after each failed attempt.
	RetryDelayMs int `mapstructure:"retry_delay_ms" validate:"gt=0"`
}
