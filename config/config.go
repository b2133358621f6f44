package config

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/utils"
	"github.com/spf13/viper"
)

// Config 클라이언트와 예제 애플리케이션의 전체 설정을 관리합니다
type Config struct {
	API         APIConfig
	Credentials CredentialsConfig
	Logging     LoggingConfig
	Health      HealthConfig
	Telemetry   TelemetryConfig
}

type APIConfig struct {
	BaseURL       string
	LegacyBaseURL string
	Timeout       time.Duration
	Transport     string
	PoolSize      int
}

type CredentialsConfig struct {
	BotID       string
	BotToken    string
	ServerID    string
	ServerToken string
}

type LoggingConfig struct {
	Level     string
	DebugMode bool
	JSON      bool
}

type HealthConfig struct {
	Enabled bool
	Port    string
}

type TelemetryConfig struct {
	Enabled         bool
	ProjectID       string
	CredentialsJSON string
}

var envKeys = []string{
	constants.EnvBaseURL,
	constants.EnvLegacyBaseURL,
	constants.EnvTimeout,
	constants.EnvTransport,
	constants.EnvPoolSize,
	constants.EnvBotID,
	constants.EnvBotToken,
	constants.EnvServerID,
	constants.EnvServerToken,
	constants.EnvLogLevel,
	constants.EnvDebugMode,
	constants.EnvJSONLogging,
	constants.EnvHealthEnabled,
	constants.EnvPort,
	constants.EnvTelemetryEnabled,
	constants.EnvGoogleProject,
	constants.EnvGoogleCredentials,
}

// Load 설정 파일(dlspace.env, 선택)과 환경변수에서 설정을 로드합니다. 환경변수가 우선합니다
func Load() *Config {
	return LoadFrom(constants.ConfigFilePath)
}

// LoadFrom 지정한 디렉터리의 설정 파일과 환경변수에서 설정을 로드합니다
func LoadFrom(dir string) *Config {
	v := viper.New()
	v.SetConfigName(constants.ConfigFileName)
	v.SetConfigType(constants.ConfigFileType)
	v.AddConfigPath(dir)

	v.SetDefault(constants.EnvBaseURL, constants.BaseURL)
	v.SetDefault(constants.EnvLegacyBaseURL, constants.LegacyBaseURL)
	v.SetDefault(constants.EnvTimeout, constants.APITimeout.String())
	v.SetDefault(constants.EnvTransport, constants.TransportHTTP)
	v.SetDefault(constants.EnvPoolSize, constants.DefaultPoolSize)
	v.SetDefault(constants.EnvLogLevel, constants.LogLevelInfo)
	v.SetDefault(constants.EnvPort, constants.DefaultHTTPPort)

	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			utils.Warn("Failed to read config file: %v", err)
		}
	}

	return &Config{
		API: APIConfig{
			BaseURL:       v.GetString(constants.EnvBaseURL),
			LegacyBaseURL: v.GetString(constants.EnvLegacyBaseURL),
			Timeout:       parseTimeout(v.GetString(constants.EnvTimeout)),
			Transport:     strings.ToLower(v.GetString(constants.EnvTransport)),
			PoolSize:      v.GetInt(constants.EnvPoolSize),
		},
		Credentials: CredentialsConfig{
			BotID:       v.GetString(constants.EnvBotID),
			BotToken:    v.GetString(constants.EnvBotToken),
			ServerID:    v.GetString(constants.EnvServerID),
			ServerToken: v.GetString(constants.EnvServerToken),
		},
		Logging: LoggingConfig{
			Level:     v.GetString(constants.EnvLogLevel),
			DebugMode: v.GetBool(constants.EnvDebugMode),
			JSON:      v.GetBool(constants.EnvJSONLogging),
		},
		Health: HealthConfig{
			Enabled: v.GetBool(constants.EnvHealthEnabled),
			Port:    v.GetString(constants.EnvPort),
		},
		Telemetry: TelemetryConfig{
			Enabled:         v.GetBool(constants.EnvTelemetryEnabled),
			ProjectID:       v.GetString(constants.EnvGoogleProject),
			CredentialsJSON: v.GetString(constants.EnvGoogleCredentials),
		},
	}
}

// parseTimeout "30s" 같은 기간 또는 초 단위 정수를 받습니다. 해석할 수 없으면 0입니다
func parseTimeout(value string) time.Duration {
	value = strings.TrimSpace(value)
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

// Validate 설정의 유효성을 검사합니다
func (c *Config) Validate() error {
	// API 주소 검증
	if err := validateURL("API.BaseURL", constants.EnvBaseURL, c.API.BaseURL); err != nil {
		return err
	}
	if err := validateURL("API.LegacyBaseURL", constants.EnvLegacyBaseURL, c.API.LegacyBaseURL); err != nil {
		return err
	}

	if c.API.Timeout <= 0 {
		return &ConfigError{
			Field:   "API.Timeout",
			Message: constants.EnvTimeout + " must be a positive duration",
		}
	}

	switch c.API.Transport {
	case constants.TransportHTTP:
	case constants.TransportFastHTTP:
		if c.API.PoolSize < 1 {
			return &ConfigError{
				Field:   "API.PoolSize",
				Message: constants.EnvPoolSize + " must be at least 1 (got: " + strconv.Itoa(c.API.PoolSize) + ")",
			}
		}
	default:
		return &ConfigError{
			Field:   "API.Transport",
			Message: constants.EnvTransport + " must be one of: http, fasthttp (got: " + c.API.Transport + ")",
		}
	}

	// 토큰만 있고 ID가 없으면 사용할 수 없음
	if c.Credentials.BotToken != "" && c.Credentials.BotID == "" {
		return &ConfigError{
			Field:   "Credentials.BotID",
			Message: constants.EnvBotID + " is required when " + constants.EnvBotToken + " is set",
		}
	}
	if c.Credentials.ServerToken != "" && c.Credentials.ServerID == "" {
		return &ConfigError{
			Field:   "Credentials.ServerID",
			Message: constants.EnvServerID + " is required when " + constants.EnvServerToken + " is set",
		}
	}

	// 로그 레벨 검증
	validLogLevels := map[string]bool{
		constants.LogLevelDebug: true,
		constants.LogLevelInfo:  true,
		constants.LogLevelWarn:  true,
		constants.LogLevelError: true,
	}
	if !validLogLevels[strings.ToUpper(c.Logging.Level)] {
		return &ConfigError{
			Field:   "Logging.Level",
			Message: "LOG_LEVEL must be one of: DEBUG, INFO, WARN, ERROR (got: " + c.Logging.Level + ")",
		}
	}

	// 헬스체크 포트 검증 (활성화된 경우에만)
	if c.Health.Enabled {
		port, err := strconv.Atoi(c.Health.Port)
		if err != nil || port < 1 || port > 65535 {
			return &ConfigError{
				Field:   "Health.Port",
				Message: "PORT must be between 1 and 65535 (got: " + c.Health.Port + ")",
			}
		}
	}

	if c.Telemetry.Enabled && c.Telemetry.ProjectID == "" {
		return &ConfigError{
			Field:   "Telemetry.ProjectID",
			Message: constants.EnvGoogleProject + " is required when telemetry is enabled",
		}
	}

	return nil
}

func validateURL(field, key, value string) error {
	parsed, err := url.Parse(value)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return &ConfigError{
			Field:   field,
			Message: key + " must be an absolute http(s) URL (got: " + value + ")",
		}
	}
	return nil
}

// IsDebugMode 디버그 모드 여부를 반환합니다
func (c *Config) IsDebugMode() bool {
	return c.Logging.DebugMode || strings.ToUpper(c.Logging.Level) == constants.LogLevelDebug
}

// HasBotCredentials 봇 토큰이 설정되었는지 확인합니다
func (c *Config) HasBotCredentials() bool {
	return c.Credentials.BotID != "" && c.Credentials.BotToken != ""
}

// ConfigError 설정 관련 오류를 나타냅니다
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in " + e.Field + ": " + e.Message
}
