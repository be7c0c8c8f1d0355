package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of
// the system: the HTTP server, the upstream completion API, and the mock
// series generator defaults.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	LLM_API_KEY=sk-...
//	LLM_API_URL=https://api.openai.com/v1
//	LLM_MODEL=gpt-4o-mini
//	LLM_TIMEOUT_SECONDS=30
//	LLM_TEMPERATURE=0.2
//	MOCK_DEFAULT_DAYS=30
type Config struct {
	Server ServerConfig // HTTP server configuration
	LLM    LLMConfig    // Upstream completion API settings
	Mock   MockConfig   // Mock data generation defaults
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// LLMConfig defines how to reach the OpenAI-compatible completion API.
//
// Fields:
//   - APIKey: bearer token. Empty means the upstream is unconfigured and
//     every advisory response is served from the mock fallback.
//   - BaseURL: API base, e.g. "https://api.openai.com/v1". The client
//     appends "/chat/completions".
//   - Model: model identifier sent with each request.
//   - Timeout: per-request HTTP timeout.
//   - Temperature: sampling temperature for completions.
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	Temperature float64
}

// Configured reports whether an API key is present. The service layer
// uses it to decide between live completions and mock fallback without
// attempting a doomed request.
func (c LLMConfig) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// MockConfig holds defaults for synthesized market data.
//
// Fields:
//   - DefaultDays: history length used when a request omits the "days"
//     query parameter.
type MockConfig struct {
	DefaultDays int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the
// application. All packages should read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate
//     the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_API_URL", "https://api.openai.com/v1")
	viper.SetDefault("LLM_MODEL", "gpt-4o-mini")
	viper.SetDefault("LLM_TIMEOUT_SECONDS", 30)
	viper.SetDefault("LLM_TEMPERATURE", 0.2)

	viper.SetDefault("MOCK_DEFAULT_DAYS", 30)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		LLM: LLMConfig{
			APIKey:      viper.GetString("LLM_API_KEY"),
			BaseURL:     strings.TrimRight(viper.GetString("LLM_API_URL"), "/"),
			Model:       viper.GetString("LLM_MODEL"),
			Timeout:     time.Duration(viper.GetInt("LLM_TIMEOUT_SECONDS")) * time.Second,
			Temperature: viper.GetFloat64("LLM_TEMPERATURE"),
		},
		Mock: MockConfig{
			DefaultDays: viper.GetInt("MOCK_DEFAULT_DAYS"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// The LLM API key is deliberately not required: an empty key selects mock
// mode, which is a supported way to run the service.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.LLM.BaseURL == "" {
		missing = append(missing, "LLM_API_URL")
	}
	if AppConfig.LLM.Model == "" {
		missing = append(missing, "LLM_MODEL")
	}
	if AppConfig.Mock.DefaultDays <= 0 {
		missing = append(missing, "MOCK_DEFAULT_DAYS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
