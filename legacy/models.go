package legacy

import (
	"time"

	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/models"
	"github.com/botlist-space/dlspace/utils"
	"github.com/bwmarrin/discordgo"
)

// BotStatistics 봇 수 통계
type BotStatistics struct {
	Total      int `json:"total"`
	Approved   int `json:"approved"`
	Unapproved int `json:"unapproved"`
}

// Statistics 사이트 통계. 평평한 total_bots 계열 필드를 Bots로 묶습니다
type Statistics struct {
	Bots    BotStatistics `json:"bots"`
	Servers int           `json:"servers"`
	Users   int           `json:"users"`
	Tags    int           `json:"tags"`
}

// User 사용자
type User struct {
	ID               string            `json:"id"`
	Username         string            `json:"username"`
	Discriminator    string            `json:"discriminator"`
	Avatar           *string           `json:"avatar"`    // 원본 해시
	AvatarURL        string            `json:"avatarURL"` // CDN URL
	ShortDescription string            `json:"shortDescription"`
	Links            map[string]string `json:"links,omitempty"`
}

// Tag username#discriminator
func (u User) Tag() string {
	return u.Username + "#" + u.Discriminator
}

// URL 사이트 프로필 주소
func (u User) URL() string {
	return constants.LegacySiteURL + "/user/" + u.ID
}

// Bot 봇
type Bot struct {
	ID                  string                   `json:"id"`
	Username            string                   `json:"username"`
	Discriminator       string                   `json:"discriminator"`
	ShortDescription    string                   `json:"shortDescription"`
	FullDescription     string                   `json:"fullDescription"`
	Avatar              *string                  `json:"avatar"`
	AvatarURL           string                   `json:"avatarURL"`
	Invite              string                   `json:"invite"`
	AvatarChildFriendly bool                     `json:"avatarChildFriendly"`
	Library             string                   `json:"library"`
	Prefix              string                   `json:"prefix"`
	Owners              *models.Collection[User] `json:"owners"`
	Vanity              *string                  `json:"vanity"`
	Premium             bool                     `json:"premium"`
	Featured            bool                     `json:"featured"`
	Links               map[string]string        `json:"links,omitempty"`
	ServerCount         *int                     `json:"serverCount"`
	Timestamp           int64                    `json:"timestamp"`
	CreatedAt           int64                    `json:"createdAt"`
	UpdatedAt           int64                    `json:"updatedAt"`
}

// Tag username#discriminator
func (b Bot) Tag() string {
	return b.Username + "#" + b.Discriminator
}

// URL 사이트 봇 페이지 주소
func (b Bot) URL() string {
	return constants.LegacySiteURL + "/bot/" + b.ID
}

// IsNSFW 아바타가 전체 이용가가 아닌지 확인합니다
func (b Bot) IsNSFW() bool {
	return !b.AvatarChildFriendly
}

// Created 스노우플레이크 ID에서 계정 생성 시각을 계산합니다
func (b Bot) Created() (time.Time, error) {
	return discordgo.SnowflakeTimestamp(b.ID)
}

// Server 서버
type Server struct {
	ID                string                   `json:"id"`
	Name              string                   `json:"name"`
	ShortDescription  string                   `json:"shortDescription"`
	FullDescription   string                   `json:"fullDescription"`
	MemberCount       int                      `json:"memberCount"`
	Icon              *string                  `json:"icon"`
	IconURL           string                   `json:"iconURL"`
	Premium           bool                     `json:"premium"`
	Featured          bool                     `json:"featured"`
	IconChildFriendly bool                     `json:"iconChildFriendly"`
	Public            bool                     `json:"public"`
	Vanity            *string                  `json:"vanity"`
	Timestamp         int64                    `json:"timestamp"`
	Owners            *models.Collection[User] `json:"owners"`
}

// URL 사이트 서버 페이지 주소
func (s Server) URL() string {
	return constants.LegacySiteURL + "/server/" + s.ID
}

// IsNSFW 아이콘이 전체 이용가가 아닌지 확인합니다
func (s Server) IsNSFW() bool {
	return !s.IconChildFriendly
}

// Upvote 추천 기록
type Upvote struct {
	User      User  `json:"user"`
	Timestamp int64 `json:"timestamp"`
}

// Time 추천 시각
func (u Upvote) Time() time.Time {
	return utils.FromMillis(u.Timestamp)
}

// GenericResult 형태가 정해지지 않은 응답
type GenericResult map[string]interface{}
