package config

import (
	"os"
	"os/exec"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are loaded when no
// environment variables are set.
func TestLoadConfig_Defaults(t *testing.T) {
	// Clear relevant env vars to ensure defaults are used
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("LLM_API_KEY")
	_ = os.Unsetenv("LLM_API_URL")
	_ = os.Unsetenv("LLM_MODEL")
	_ = os.Unsetenv("LLM_TIMEOUT_SECONDS")
	_ = os.Unsetenv("LLM_TEMPERATURE")
	_ = os.Unsetenv("MOCK_DEFAULT_DAYS")

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.LLM.BaseURL != "https://api.openai.com/v1" || AppConfig.LLM.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected LLM defaults: %+v", AppConfig.LLM)
	}
	if AppConfig.LLM.Timeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %v", AppConfig.LLM.Timeout)
	}
	if AppConfig.LLM.Configured() {
		t.Fatalf("empty API key must report unconfigured")
	}
	if AppConfig.Mock.DefaultDays != 30 {
		t.Fatalf("expected MOCK_DEFAULT_DAYS=30, got %d", AppConfig.Mock.DefaultDays)
	}
}

// TestLoadConfig_EnvOverrides verifies environment variables take
// precedence over defaults and that trailing slashes are trimmed from the
// API URL.
func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("LLM_API_URL", "http://localhost:9999/v1/")
	t.Setenv("MOCK_DEFAULT_DAYS", "14")

	LoadConfig()

	if !AppConfig.LLM.Configured() {
		t.Fatalf("expected configured LLM")
	}
	if AppConfig.LLM.BaseURL != "http://localhost:9999/v1" {
		t.Fatalf("trailing slash not trimmed: %q", AppConfig.LLM.BaseURL)
	}
	if AppConfig.Mock.DefaultDays != 14 {
		t.Fatalf("expected MOCK_DEFAULT_DAYS=14, got %d", AppConfig.Mock.DefaultDays)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig
// triggers a fatal exit when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		// In child process: set empty AppConfig and call validateConfig() to trigger log.Fatalf (os.Exit)
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
