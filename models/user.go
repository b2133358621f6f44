package models

// User 사이트에 등록된 사용자를 나타냅니다
type User struct {
	ID               string  `json:"id"`
	Username         string  `json:"username"`
	Discriminator    string  `json:"discriminator"`
	Avatar           *string `json:"avatar"` // 아바타 해시, 없으면 null
	ShortDescription string  `json:"shortDescription"`
	Banned           bool    `json:"banned"`
	Admin            bool    `json:"admin"`
	Donator          bool    `json:"donator"`
	CreatedAt        int64   `json:"createdAt"` // epoch 밀리초
	UpdatedAt        int64   `json:"updatedAt"` // epoch 밀리초
}

// Tag 사용자명과 discriminator를 #으로 연결해 반환합니다
func (u User) Tag() string {
	return u.Username + "#" + u.Discriminator
}
