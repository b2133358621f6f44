package legacy

import (
	"strconv"
	"strings"

	"github.com/botlist-space/dlspace/constants"
	"github.com/bwmarrin/discordgo"
)

// AvatarURL 아바타 해시로 CDN URL을 만듭니다.
// a_ 접두사는 .gif, 그 외는 .png이며 해시가 없으면 discriminator mod 5 기본 아바타를 사용합니다.
func AvatarURL(userID string, hash *string, discriminator string) string {
	if hash == nil || *hash == "" {
		return DefaultAvatarURL(discriminator)
	}
	if isURL(*hash) {
		return *hash
	}
	if strings.HasPrefix(*hash, constants.AnimatedHashPrefix) {
		return discordgo.EndpointUserAvatarAnimated(userID, *hash)
	}
	return discordgo.EndpointUserAvatar(userID, *hash)
}

// DefaultAvatarURL discriminator로 기본 아바타 URL을 선택합니다. 숫자가 아니면 0번입니다
func DefaultAvatarURL(discriminator string) string {
	n, err := strconv.Atoi(discriminator)
	if err != nil || n < 0 {
		n = 0
	}
	return discordgo.EndpointDefaultUserAvatar(n % constants.DefaultAvatarCount)
}

// IconURL 서버 아이콘 해시로 CDN URL을 만듭니다. 해시가 없으면 빈 문자열입니다
func IconURL(serverID string, hash *string) string {
	if hash == nil || *hash == "" {
		return ""
	}
	if isURL(*hash) {
		return *hash
	}
	if strings.HasPrefix(*hash, constants.AnimatedHashPrefix) {
		return discordgo.EndpointGuildIconAnimated(serverID, *hash)
	}
	return discordgo.EndpointGuildIcon(serverID, *hash)
}

// isURL 이미 완성된 URL을 보내는 응답도 있습니다
func isURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}
