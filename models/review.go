package models

// ReviewTarget 리뷰 대상 종류
type ReviewTarget string

const (
	ReviewTargetBot     ReviewTarget = "bot"
	ReviewTargetServer  ReviewTarget = "server"
	ReviewTargetUnknown ReviewTarget = ""
)

// Review 봇 또는 서버에 작성된 리뷰입니다. Bot과 Server 중 정확히 하나만 존재합니다
type Review struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Comment     string  `json:"comment"`
	Rating      int     `json:"rating"`
	Upvoted     bool    `json:"upvoted"`
	UpvoteCount int     `json:"upvoteCount"`
	Bot         *Bot    `json:"bot"`
	Server      *Server `json:"server"`
	User        User    `json:"user"`
	CreatedAt   int64   `json:"createdAt"`
}

// Target 리뷰 대상이 봇인지 서버인지 반환합니다
func (r Review) Target() ReviewTarget {
	switch {
	case r.Bot != nil && r.Server == nil:
		return ReviewTargetBot
	case r.Server != nil && r.Bot == nil:
		return ReviewTargetServer
	default:
		return ReviewTargetUnknown
	}
}
