package models

import "github.com/botlist-space/dlspace/constants"

// ReviewSummary 리뷰 개수와 평균 평점 요약입니다
type ReviewSummary struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"averageRating"`
}

// Bot 사이트에 등록된 봇을 나타냅니다
type Bot struct {
	ID               string        `json:"id"`
	Username         string        `json:"username"`
	Discriminator    string        `json:"discriminator"`
	Avatar           *string       `json:"avatar"`
	ShortDescription string        `json:"shortDescription"`
	FullDescription  string        `json:"fullDescription"`
	Active           bool          `json:"active"`
	InviteURL        string        `json:"inviteURL"`
	SupportServer    *string       `json:"supportServer"`
	SafeAvatar       bool          `json:"safeAvatar"`
	Owner            User          `json:"owner"`
	SecondaryOwners  []User        `json:"secondaryOwners"`
	ServerCount      *int          `json:"serverCount"`
	Vanity           *string       `json:"vanity"`
	WebsiteURL       *string       `json:"websiteURL"`
	Tags             []Tag         `json:"tags"`
	Languages        []Language    `json:"languages"`
	Prefix           string        `json:"prefix"`
	UpvoteCount      int           `json:"upvoteCount"`
	Reviews          ReviewSummary `json:"reviews"`
	CreatedAt        int64         `json:"createdAt"`
	UpdatedAt        int64         `json:"updatedAt"`
}

// Tag 봇 이름과 discriminator를 #으로 연결해 반환합니다
func (b Bot) Tag() string {
	return b.Username + "#" + b.Discriminator
}

// URL 사이트 봇 페이지 주소
func (b Bot) URL() string {
	return constants.SiteURL + "/bot/" + b.ID
}

// Owners 주 소유자와 보조 소유자를 순서대로 반환합니다
func (b Bot) Owners() []User {
	owners := make([]User, 0, len(b.SecondaryOwners)+1)
	owners = append(owners, b.Owner)
	return append(owners, b.SecondaryOwners...)
}

// BotUpdate 봇 정보 부분 수정 요청입니다. nil/미설정 필드는 본문에서 생략됩니다
type BotUpdate struct {
	ShortDescription *string
	FullDescription  *string
	InviteURL        *string
	Prefix           *string
	SafeAvatar       *bool
	SupportServer    Optional[string]
	Tags             []string // nil이면 생략, 빈 슬라이스는 그대로 전송
	Languages        []string
	Vanity           Optional[string]
	WebsiteURL       Optional[string]
	ServerCount      Optional[int]
	Active           *bool
}

// Fields 설정된 필드만 담은 요청 본문을 반환합니다
func (u BotUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	putString(fields, "shortDescription", u.ShortDescription)
	putString(fields, "fullDescription", u.FullDescription)
	putString(fields, "inviteURL", u.InviteURL)
	putString(fields, "prefix", u.Prefix)
	putBool(fields, "safeAvatar", u.SafeAvatar)
	putOptional(fields, "supportServer", u.SupportServer)
	putList(fields, "tags", u.Tags)
	putList(fields, "languages", u.Languages)
	putOptional(fields, "vanity", u.Vanity)
	putOptional(fields, "websiteURL", u.WebsiteURL)
	putOptional(fields, "serverCount", u.ServerCount)
	putBool(fields, "active", u.Active)
	return fields
}

// IsEmpty 설정된 필드가 하나도 없는지 확인합니다
func (u BotUpdate) IsEmpty() bool {
	return len(u.Fields()) == 0
}
