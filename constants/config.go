package constants

// 환경 변수 키
const (
	EnvBaseURL       = "DLSPACE_BASE_URL"
	EnvLegacyBaseURL = "DLSPACE_LEGACY_BASE_URL"
	EnvTimeout       = "DLSPACE_TIMEOUT"
	EnvTransport     = "DLSPACE_TRANSPORT"
	EnvPoolSize      = "DLSPACE_POOL_SIZE"
	EnvBotID         = "DLSPACE_BOT_ID"
	EnvBotToken      = "DLSPACE_BOT_TOKEN"
	EnvServerID      = "DLSPACE_SERVER_ID"
	EnvServerToken   = "DLSPACE_SERVER_TOKEN"

	EnvLogLevel    = "LOG_LEVEL"
	EnvDebugMode   = "DEBUG_MODE"
	EnvJSONLogging = "JSON_LOGGING"

	EnvHealthEnabled = "HEALTH_ENABLED"
	EnvPort          = "PORT"

	EnvTelemetryEnabled  = "TELEMETRY_ENABLED"
	EnvGoogleProject     = "GOOGLE_CLOUD_PROJECT"
	EnvGoogleCredentials = "GOOGLE_CREDENTIALS_JSON"
)

// 설정 파일
const (
	ConfigFileName = "dlspace"
	ConfigFileType = "env"
	ConfigFilePath = "."
)
