package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/botlist-space/dlspace/constants"
)

var (
	discordInviteRegex = regexp.MustCompile(constants.DiscordInvitePattern)
	discordServerRegex = regexp.MustCompile(constants.DiscordServerPattern)
)

// IsValidSortDirection 정렬 방향이 ascending/descending 중 하나인지 확인합니다
func IsValidSortDirection(direction string) bool {
	return direction == constants.SortAscending || direction == constants.SortDescending
}

// IsValidPage 페이지 번호가 1 이상인지 확인합니다
func IsValidPage(page int) bool {
	return page >= constants.MinPage
}

// IsValidCount 페이지 크기가 허용 범위인지 확인합니다
func IsValidCount(count int) bool {
	return count >= constants.MinCount && count <= constants.MaxCount
}

// IsValidInviteURL Discord OAuth2 authorize URL 형식인지 확인합니다
func IsValidInviteURL(inviteURL string) bool {
	return discordInviteRegex.MatchString(inviteURL)
}

// IsValidSupportServer Discord 초대 코드 또는 discord.gg URL 형식인지 확인합니다
func IsValidSupportServer(invite string) bool {
	return discordServerRegex.MatchString(invite)
}

// IsValidPrefix 접두사 길이를 확인합니다
func IsValidPrefix(prefix string) bool {
	length := CharacterCount(prefix)
	return length >= constants.MinPrefixLength && length <= constants.MaxPrefixLength
}

// IsNonEmpty 빈 문자열이 아닌지 확인합니다
func IsNonEmpty(value string) bool {
	return len(value) > 0
}

// FindDisallowed 허용 목록에 없는 첫 번째 값을 반환합니다
func FindDisallowed(values, allowed []string) (string, bool) {
	for _, value := range values {
		if !Contains(allowed, value) {
			return value, true
		}
	}
	return "", false
}

// Contains 슬라이스에 값이 있는지 확인합니다
func Contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

// CharacterCount 문자열의 문자 수를 반환합니다
func CharacterCount(value string) int {
	return utf8.RuneCountInString(value)
}

// JoinList 쿼리 문자열용으로 값을 쉼표로 연결합니다
func JoinList(values []string) string {
	return strings.Join(values, ",")
}
