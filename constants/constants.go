package constants

import "time"

// API 관련 상수
const (
	BaseURL          = "https://api.discordlist.space/v2"
	LegacyBaseURL    = "https://botlist.space/api"
	SiteURL          = "https://discordlist.space"
	LegacySiteURL    = "https://botlist.space"
	APITimeout       = 30 * time.Second
	DefaultPoolSize  = 4
	UserAgentProduct = "discordlist.space Library"
)

// 전송 방식
const (
	TransportHTTP     = "http"
	TransportFastHTTP = "fasthttp"
)

// 헤더
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderUserAgent     = "User-Agent"
	ContentTypeJSON     = "application/json"

	// 사용자 봇/서버 목록에서 토큰이 없을 때 보내는 값
	UnauthorizedToken = "unauthorized"
)

// 페이지네이션 기본값
const (
	DefaultPage  = 1
	DefaultCount = 16
	MinPage      = 1
	MinCount     = 1
	MaxCount     = 50

	SortAscending  = "ascending"
	SortDescending = "descending"

	SortByTop       = "top"
	SortByTimestamp = "timestamp"
	SortByCount     = "count"
	SortByID        = "id"
	SortByUsername  = "username"
	SortByName      = "name"
)

// 분석 조회 기본 구간
const (
	DefaultAnalyticsWindow = 7 * 24 * time.Hour
)

// 태그 종류
const (
	TagTypeAll    = "all"
	TagTypeBot    = "bot"
	TagTypeServer = "server"
)

// 필터
const (
	FilterApproved   = "approved"
	FilterSafeAvatar = "safeAvatar"
)

// 리소스별 허용 필터 목록
var (
	AllowedBotFilters    = []string{FilterApproved, FilterSafeAvatar}
	AllowedServerFilters = []string{FilterSafeAvatar}
	AllowedTagTypes      = []string{TagTypeAll, TagTypeBot, TagTypeServer}
)

// 날짜 형식
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)

// 로그 관련 상수
const (
	LogLevelDebug = "DEBUG"
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
)

// HTTP 오류 기본값
const (
	DefaultErrorCode    = 500
	DefaultErrorMessage = "An unknown error occurred"
)
