package models

import "github.com/botlist-space/dlspace/constants"

// Emoji 서버의 커스텀 이모지입니다
type Emoji struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Animated bool   `json:"animated"`
}

// Server 사이트에 등록된 서버를 나타냅니다
type Server struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Icon             *string       `json:"icon"`
	ShortDescription string        `json:"shortDescription"`
	FullDescription  string        `json:"fullDescription"`
	Active           bool          `json:"active"`
	MemberCount      int           `json:"memberCount"`
	InviteCode       string        `json:"inviteCode"`
	Owner            User          `json:"owner"`
	SecondaryOwners  []User        `json:"secondaryOwners"`
	Tags             []Tag         `json:"tags"`
	SafeAvatar       bool          `json:"safeAvatar"`
	Vanity           *string       `json:"vanity"`
	ShowEmojis       bool          `json:"showEmojis"`
	WebsiteURL       *string       `json:"websiteURL"`
	UpvoteCount      int           `json:"upvoteCount"`
	Reviews          ReviewSummary `json:"reviews"`
	Emojis           []Emoji       `json:"emojis"`
	CreatedAt        int64         `json:"createdAt"`
	UpdatedAt        int64         `json:"updatedAt"`
}

// URL 사이트 서버 페이지 주소
func (s Server) URL() string {
	return constants.SiteURL + "/server/" + s.ID
}

// Owners 주 소유자와 보조 소유자를 순서대로 반환합니다
func (s Server) Owners() []User {
	owners := make([]User, 0, len(s.SecondaryOwners)+1)
	owners = append(owners, s.Owner)
	return append(owners, s.SecondaryOwners...)
}

// ServerUpdate 서버 정보 부분 수정 요청입니다
type ServerUpdate struct {
	ShortDescription *string
	FullDescription  *string
	InviteCode       *string
	SafeAvatar       *bool
	Tags             []string
	Vanity           Optional[string]
	WebsiteURL       Optional[string]
	Active           *bool
}

// Fields 설정된 필드만 담은 요청 본문을 반환합니다
func (u ServerUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	putString(fields, "shortDescription", u.ShortDescription)
	putString(fields, "fullDescription", u.FullDescription)
	putString(fields, "inviteCode", u.InviteCode)
	putBool(fields, "safeAvatar", u.SafeAvatar)
	putList(fields, "tags", u.Tags)
	putOptional(fields, "vanity", u.Vanity)
	putOptional(fields, "websiteURL", u.WebsiteURL)
	putBool(fields, "active", u.Active)
	return fields
}

// IsEmpty 설정된 필드가 하나도 없는지 확인합니다
func (u ServerUpdate) IsEmpty() bool {
	return len(u.Fields()) == 0
}
