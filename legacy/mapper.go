package legacy

import (
	"encoding/json"
	"fmt"

	"github.com/botlist-space/dlspace/errors"
	"github.com/botlist-space/dlspace/models"
	"github.com/valyala/fastjson"
)

// Revision 응답 계약 버전
const Revision = "legacy"

var parserPool fastjson.ParserPool

// SnakeCaseMapper snake_case 응답 필드를 값 객체 필드로 바꿔 담습니다
type SnakeCaseMapper struct{}

// Revision 매퍼가 다루는 계약 버전을 반환합니다
func (SnakeCaseMapper) Revision() string {
	return Revision
}

// Decode 본문을 target으로 변환합니다
func (SnakeCaseMapper) Decode(body []byte, target interface{}) error {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		return errors.NewDecodeError("응답 파싱 실패", err)
	}

	switch t := target.(type) {
	case *Bot:
		*t = parseBot(v)
	case *[]Bot:
		*t = parseList(v, parseBot)
	case *Server:
		*t = parseServer(v)
	case *[]Server:
		*t = parseList(v, parseServer)
	case *User:
		*t = parseUser(v)
	case *[]Upvote:
		*t = parseList(v, parseUpvote)
	case *Statistics:
		*t = parseStatistics(v)
	case *GenericResult:
		if err := json.Unmarshal(body, t); err != nil {
			return errors.NewDecodeError("응답 파싱 실패", err)
		}
	default:
		return errors.NewDecodeError(fmt.Sprintf("지원하지 않는 대상 타입: %T", target), nil)
	}
	return nil
}

func parseList[T any](v *fastjson.Value, parse func(*fastjson.Value) T) []T {
	items := v.GetArray()
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, parse(item))
	}
	return out
}

func str(v *fastjson.Value, key string) string {
	return string(v.GetStringBytes(key))
}

// optStr 없거나 null이면 nil을 반환합니다
func optStr(v *fastjson.Value, key string) *string {
	field := v.Get(key)
	if field == nil || field.Type() != fastjson.TypeString {
		return nil
	}
	s := string(field.GetStringBytes())
	return &s
}

func optInt(v *fastjson.Value, key string) *int {
	field := v.Get(key)
	if field == nil || field.Type() != fastjson.TypeNumber {
		return nil
	}
	n := field.GetInt()
	return &n
}

func stringMap(v *fastjson.Value, key string) map[string]string {
	obj := v.GetObject(key)
	if obj == nil {
		return nil
	}
	out := make(map[string]string, obj.Len())
	obj.Visit(func(k []byte, item *fastjson.Value) {
		if item.Type() == fastjson.TypeString {
			out[string(k)] = string(item.GetStringBytes())
		}
	})
	return out
}

// owners 소유자 배열을 처음 등장한 순서대로 ID 키 컬렉션에 담습니다
func owners(v *fastjson.Value) *models.Collection[User] {
	return models.CollectionFrom(parseList(v.Get("owners"), parseUser), func(u User) string { return u.ID })
}

func parseUser(v *fastjson.Value) User {
	if v == nil {
		return User{}
	}
	user := User{
		ID:               str(v, "id"),
		Username:         str(v, "username"),
		Discriminator:    str(v, "discriminator"),
		Avatar:           optStr(v, "avatar"),
		ShortDescription: str(v, "short_description"),
		Links:            stringMap(v, "links"),
	}
	user.AvatarURL = AvatarURL(user.ID, user.Avatar, user.Discriminator)
	return user
}

func parseBot(v *fastjson.Value) Bot {
	bot := Bot{
		ID:                  str(v, "id"),
		Username:            str(v, "username"),
		Discriminator:       str(v, "discriminator"),
		ShortDescription:    str(v, "short_description"),
		FullDescription:     str(v, "full_description"),
		Avatar:              optStr(v, "avatar"),
		Invite:              str(v, "invite"),
		AvatarChildFriendly: v.GetBool("avatarChildFriendly"),
		Library:             str(v, "library"),
		Prefix:              str(v, "prefix"),
		Owners:              owners(v),
		Vanity:              optStr(v, "vanity"),
		Premium:             v.GetBool("premium"),
		Featured:            v.GetBool("featured"),
		Links:               stringMap(v, "links"),
		ServerCount:         optInt(v, "server_count"),
		Timestamp:           v.GetInt64("timestamp"),
		CreatedAt:           v.GetInt64("created_at"),
		UpdatedAt:           v.GetInt64("updated_at"),
	}
	bot.AvatarURL = AvatarURL(bot.ID, bot.Avatar, bot.Discriminator)
	return bot
}

func parseServer(v *fastjson.Value) Server {
	server := Server{
		ID:                str(v, "id"),
		Name:              str(v, "name"),
		ShortDescription:  str(v, "short_description"),
		FullDescription:   str(v, "full_description"),
		MemberCount:       v.GetInt("member_count"),
		Icon:              optStr(v, "icon"),
		Premium:           v.GetBool("premium"),
		Featured:          v.GetBool("featured"),
		IconChildFriendly: v.GetBool("iconChildFriendly"),
		Public:            v.GetBool("public"),
		Vanity:            optStr(v, "vanity"),
		Timestamp:         v.GetInt64("timestamp"),
		Owners:            owners(v),
	}
	server.IconURL = IconURL(server.ID, server.Icon)
	return server
}

func parseUpvote(v *fastjson.Value) Upvote {
	return Upvote{
		User:      parseUser(v.Get("user")),
		Timestamp: v.GetInt64("timestamp"),
	}
}

// parseStatistics 중첩된 bots 객체가 있으면 그것을, 없으면 total_bots 계열 필드를 사용합니다
func parseStatistics(v *fastjson.Value) Statistics {
	stats := Statistics{
		Servers: v.GetInt("servers"),
		Users:   v.GetInt("users"),
		Tags:    v.GetInt("tags"),
	}
	if bots := v.Get("bots"); bots != nil && bots.Type() == fastjson.TypeObject {
		stats.Bots = BotStatistics{
			Total:      bots.GetInt("total"),
			Approved:   bots.GetInt("approved"),
			Unapproved: bots.GetInt("unapproved"),
		}
		return stats
	}
	stats.Bots = BotStatistics{
		Total:      v.GetInt("total_bots"),
		Approved:   v.GetInt("approved_bots"),
		Unapproved: v.GetInt("unapproved_bots"),
	}
	return stats
}
