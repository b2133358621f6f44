package constants

import "time"

// 시스템 관련 상수
const (
	// 라이브러리 버전 (User-Agent에 포함)
	LibraryVersion = "2.1.0"

	// 네트워크 관련
	DefaultHTTPPort = "8080" // 헬스체크 서버 기본 포트

	// 메모리 관련
	BytesToMB = 1024 * 1024

	// 헬스체크 관련
	ServiceHealthCheckTimeout = 5 * time.Second
	HealthStatusHealthy       = "healthy"
	HealthStatusUnhealthy     = "unhealthy"

	// 테스트 관련
	TestAPITimeout = 10 * time.Second
)

// 텔레메트리 관련 상수
const (
	TelemetryNamespace    = "dlspace"
	TelemetryJobName      = "dlspace-client"
	TelemetryTaskID       = "main"
	TelemetryMetricPrefix = "dlspace/requests"
	TelemetryInterval     = time.Minute
)
