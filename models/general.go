package models

import "github.com/botlist-space/dlspace/constants"

// Statistics 사이트 전체 통계입니다
type Statistics struct {
	Bots    int `json:"bots"`
	Servers int `json:"servers"`
	Users   int `json:"users"`
}

// Tag 봇/서버에 붙는 태그입니다
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // bot 또는 server
}

// Language 봇 개발 언어입니다
type Language struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TagType 태그 목록 조회 범위
type TagType string

const (
	TagTypeAll    TagType = constants.TagTypeAll
	TagTypeBot    TagType = constants.TagTypeBot
	TagTypeServer TagType = constants.TagTypeServer
)
