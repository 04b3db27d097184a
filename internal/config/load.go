package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults keep the service runnable with nothing but the API key set.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	// Empty default registers the key with viper so AutomaticEnv can bind
	// ECOFARM_LLM_GEMINI_API_KEY during Unmarshal.
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", "gemini-pro")
	v.SetDefault("llm.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("client.endpoint", "http://localhost:8080/api/gemini")
	v.SetDefault("client.max_retries", 3)
	v.SetDefault("client.retry_delay_ms", 1000)

	// Optional config file in the working directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Missing file is fine; environment variables and defaults apply.
	}

	// Environment variables use the ECOFARM_ prefix with underscores for
	// nesting, e.g. ECOFARM_LLM_GEMINI_API_KEY.
	v.SetEnvPrefix("ECOFARM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
