package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/botlist-space/dlspace/constants"
)

func validConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:       constants.BaseURL,
			LegacyBaseURL: constants.LegacyBaseURL,
			Timeout:       constants.APITimeout,
			Transport:     constants.TransportHTTP,
			PoolSize:      constants.DefaultPoolSize,
		},
		Logging: LoggingConfig{Level: constants.LogLevelInfo},
		Health:  HealthConfig{Port: constants.DefaultHTTPPort},
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		modify    func(*Config)
		wantField string
		desc      string
	}{
		{func(c *Config) {}, "", "default config"},
		{func(c *Config) { c.API.BaseURL = "api.discordlist.space" }, "API.BaseURL", "base URL without scheme"},
		{func(c *Config) { c.API.LegacyBaseURL = "ftp://botlist.space/api" }, "API.LegacyBaseURL", "legacy URL with unsupported scheme"},
		{func(c *Config) { c.API.Timeout = 0 }, "API.Timeout", "zero timeout"},
		{func(c *Config) { c.API.Transport = "grpc" }, "API.Transport", "unknown transport"},
		{func(c *Config) { c.API.Transport = constants.TransportFastHTTP; c.API.PoolSize = 0 }, "API.PoolSize", "empty fasthttp pool"},
		{func(c *Config) { c.API.PoolSize = 0 }, "", "pool size ignored for http transport"},
		{func(c *Config) { c.Credentials.BotToken = "token" }, "Credentials.BotID", "bot token without id"},
		{func(c *Config) { c.Credentials.ServerToken = "token" }, "Credentials.ServerID", "server token without id"},
		{func(c *Config) { c.Logging.Level = "TRACE" }, "Logging.Level", "unknown log level"},
		{func(c *Config) { c.Logging.Level = "debug" }, "", "lowercase log level"},
		{func(c *Config) { c.Health.Enabled = true; c.Health.Port = "70000" }, "Health.Port", "port out of range"},
		{func(c *Config) { c.Health.Port = "abc" }, "", "port ignored when health is disabled"},
		{func(c *Config) { c.Telemetry.Enabled = true }, "Telemetry.ProjectID", "telemetry without project"},
	}

	for _, test := range tests {
		config := validConfig()
		test.modify(config)
		err := config.Validate()

		if test.wantField == "" {
			if err != nil {
				t.Errorf("%s: expected no error, got %v", test.desc, err)
			}
			continue
		}

		var configErr *ConfigError
		if !errors.As(err, &configErr) {
			t.Errorf("%s: expected ConfigError, got %v", test.desc, err)
			continue
		}
		if configErr.Field != test.wantField {
			t.Errorf("%s: expected field %s, got %s", test.desc, test.wantField, configErr.Field)
		}
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{
		Field:   "API.Timeout",
		Message: "must be positive",
	}

	expected := "config error in API.Timeout: must be positive"
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}
}

func TestIsDebugMode(t *testing.T) {
	config := validConfig()
	if config.IsDebugMode() {
		t.Error("INFO level without DEBUG_MODE should not be debug mode")
	}

	config.Logging.Level = constants.LogLevelDebug
	if !config.IsDebugMode() {
		t.Error("DEBUG level should enable debug mode")
	}

	config = validConfig()
	config.Logging.DebugMode = true
	if !config.IsDebugMode() {
		t.Error("DEBUG_MODE should enable debug mode")
	}
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		desc     string
	}{
		{"30s", 30 * time.Second, "duration string"},
		{"15", 15 * time.Second, "plain seconds"},
		{" 2m ", 2 * time.Minute, "surrounding spaces"},
		{"soon", 0, "invalid value"},
	}

	for _, test := range tests {
		if got := parseTimeout(test.input); got != test.expected {
			t.Errorf("%s: expected %v, got %v", test.desc, test.expected, got)
		}
	}
}

// 환경변수를 통한 설정 로드 테스트
func TestLoadFromEnv(t *testing.T) {
	t.Setenv(constants.EnvBotID, "123456789012345678")
	t.Setenv(constants.EnvBotToken, "bot_token")
	t.Setenv(constants.EnvTransport, "FASTHTTP")
	t.Setenv(constants.EnvPoolSize, "8")
	t.Setenv(constants.EnvTimeout, "10s")
	t.Setenv(constants.EnvLogLevel, "DEBUG")

	config := LoadFrom(t.TempDir())

	if config.Credentials.BotID != "123456789012345678" {
		t.Errorf("Expected bot id '123456789012345678', got '%s'", config.Credentials.BotID)
	}

	if config.API.Transport != constants.TransportFastHTTP {
		t.Errorf("Expected transport 'fasthttp', got '%s'", config.API.Transport)
	}

	if config.API.PoolSize != 8 {
		t.Errorf("Expected pool size 8, got %d", config.API.PoolSize)
	}

	if config.API.Timeout != 10*time.Second {
		t.Errorf("Expected timeout 10s, got %v", config.API.Timeout)
	}

	if config.API.BaseURL != constants.BaseURL {
		t.Errorf("Expected default base URL, got '%s'", config.API.BaseURL)
	}

	if !config.HasBotCredentials() {
		t.Error("bot credentials should be present")
	}

	// 로드된 설정이 유효한지 확인
	if err := config.Validate(); err != nil {
		t.Errorf("Loaded config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "DLSPACE_SERVER_ID=876543210987654321\nDLSPACE_SERVER_TOKEN=file_token\nHEALTH_ENABLED=true\nPORT=9090\n"
	if err := os.WriteFile(filepath.Join(dir, constants.ConfigFileName+".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	// 환경변수가 파일보다 우선
	t.Setenv(constants.EnvPort, "9191")

	config := LoadFrom(dir)

	if config.Credentials.ServerToken != "file_token" {
		t.Errorf("Expected server token from file, got '%s'", config.Credentials.ServerToken)
	}

	if !config.Health.Enabled {
		t.Error("health should be enabled from file")
	}

	if config.Health.Port != "9191" {
		t.Errorf("Expected port '9191', got '%s'", config.Health.Port)
	}
}
