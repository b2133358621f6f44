package models

// Upvote 봇/서버에 대한 사용자의 추천 기록입니다
type Upvote struct {
	ID        string `json:"id"`
	User      User   `json:"user"`
	Timestamp int64  `json:"timestamp"`
}

// UserUpvoteStatus 특정 사용자의 추천 여부입니다. Timestamp는 추천한 경우에만 존재합니다
type UserUpvoteStatus struct {
	Upvoted   bool   `json:"upvoted"`
	Timestamp *int64 `json:"timestamp,omitempty"`
}

// UserUpvoteCount 추천 리더보드 항목입니다
type UserUpvoteCount struct {
	ID    string `json:"id"`
	User  User   `json:"user"`
	Count int    `json:"count"`
}
