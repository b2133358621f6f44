package models

// LocationStatistics 국가별 조회수
type LocationStatistics struct {
	Country string `json:"country"`
	Views   int    `json:"views"`
}

// ReferralStatistics 유입 경로별 조회수. 경로를 알 수 없으면 Source는 nil입니다
type ReferralStatistics struct {
	Source *string `json:"source"`
	Views  int     `json:"views"`
}

// Analytics 봇/서버 분석 데이터의 공통 필드입니다
type Analytics struct {
	ID                 string               `json:"id"`
	Timestamp          int64                `json:"timestamp"`
	Impressions        int                  `json:"impressions"`
	Upvotes            int                  `json:"upvotes"`
	Views              int                  `json:"views"`
	LocationStatistics []LocationStatistics `json:"locationStatistics"`
	ReferralStatistics []ReferralStatistics `json:"referralStatistics"`
}

// BotAnalytics 봇 분석 데이터
type BotAnalytics struct {
	Analytics
	Invites int `json:"invites"`
}

// ServerAnalytics 서버 분석 데이터
type ServerAnalytics struct {
	Analytics
	Joins int `json:"joins"`
}
