package utils

import (
	"os"
	"strings"

	"github.com/botlist-space/dlspace/constants"
	"github.com/sirupsen/logrus"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type Logger struct {
	level  LogLevel
	logger *logrus.Logger
}

var globalLogger *Logger

func init() {
	globalLogger = NewLogger()
}

func NewLogger() *Logger {
	level := getLogLevelFromEnv()

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(toLogrusLevel(level))
	logger.AddHook(&sensitiveInfoHook{})

	if isTruthy(os.Getenv(constants.EnvJSONLogging)) {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: constants.DateTimeFormat})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: constants.DateTimeFormat,
		})
	}

	return &Logger{
		level:  level,
		logger: logger,
	}
}

func getLogLevelFromEnv() LogLevel {
	return ParseLogLevel(os.Getenv(constants.EnvLogLevel))
}

// ParseLogLevel 문자열 로그 레벨을 변환합니다. 알 수 없는 값은 INFO입니다
func ParseLogLevel(levelStr string) LogLevel {
	switch strings.ToUpper(levelStr) {
	case constants.LogLevelDebug:
		return DEBUG
	case constants.LogLevelInfo:
		return INFO
	case constants.LogLevelWarn:
		return WARN
	case constants.LogLevelError:
		return ERROR
	default:
		return INFO
	}
}

func toLogrusLevel(level LogLevel) logrus.Level {
	switch level {
	case DEBUG:
		return logrus.DebugLevel
	case WARN:
		return logrus.WarnLevel
	case ERROR:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "t", "true", "yes", "on":
		return true
	}
	return false
}

// SetLevel 로그 레벨을 변경합니다
func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
	l.logger.SetLevel(toLogrusLevel(level))
}

// SetJSON JSON 포맷 출력 여부를 설정합니다
func (l *Logger) SetJSON(enabled bool) {
	if enabled {
		l.logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: constants.DateTimeFormat})
		return
	}
	l.logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: constants.DateTimeFormat,
	})
}

// Logrus 내부 logrus 로거를 반환합니다
func (l *Logger) Logrus() *logrus.Logger {
	return l.logger
}

// sensitiveInfoHook 토큰이 로그에 기록되지 않도록 메시지를 마스킹합니다
type sensitiveInfoHook struct{}

func (h *sensitiveInfoHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *sensitiveInfoHook) Fire(entry *logrus.Entry) error {
	entry.Message = FilterSensitiveInfo(entry.Message)
	return nil
}

// FilterSensitiveInfo 민감한 정보를 로그에서 마스킹합니다
func FilterSensitiveInfo(message string) string {
	// Discord 토큰 형태 (점으로 구분된 긴 문자열) 마스킹
	words := strings.Fields(message)
	changed := false
	for i, word := range words {
		if len(word) > 50 && strings.Count(word, ".") >= 2 {
			words[i] = "***DISCORD_TOKEN***"
			changed = true
		}
	}
	if changed {
		message = strings.Join(words, " ")
	}

	// 키워드 뒤의 값을 마스킹
	sensitiveKeywords := []string{"authorization", "token", "secret", "password"}
	lowerMessage := strings.ToLower(message)

	for _, keyword := range sensitiveKeywords {
		idx := strings.Index(lowerMessage, keyword)
		if idx == -1 {
			continue
		}

		before := message[:idx+len(keyword)]
		remaining := message[idx+len(keyword):]

		for _, sep := range []string{"=", ": ", ":", "\""} {
			if strings.HasPrefix(remaining, sep) {
				message = before + sep + "***MASKED***"
				lowerMessage = strings.ToLower(message)
				break
			}
		}
	}

	return message
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

// GetLogger 글로벌 로거를 반환합니다
func GetLogger() *Logger {
	return globalLogger
}

// 글로벌 로거 함수들
func Debug(format string, args ...interface{}) {
	globalLogger.Debug(format, args...)
}

func Info(format string, args ...interface{}) {
	globalLogger.Info(format, args...)
}

func Warn(format string, args ...interface{}) {
	globalLogger.Warn(format, args...)
}

func Error(format string, args ...interface{}) {
	globalLogger.Error(format, args...)
}
