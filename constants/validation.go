package constants

// 검증 관련 상수
const (
	MinPrefixLength        = 1
	MaxPrefixLength        = 16
	MaxSupportServerLength = 32

	// HTTP 관련
	HTTPServerErrorThreshold = 500

	// 기본 아바타 개수 (discriminator mod 5)
	DefaultAvatarCount = 5

	// 애니메이션 아바타/아이콘 해시 접두사
	AnimatedHashPrefix = "a_"
)

// 정규식 원본
const (
	DiscordInvitePattern = `^https?://discord(app)?\.com(/api)?/oauth2/authorize`
	DiscordServerPattern = `^(?:https?://discord\.gg/)?([A-Za-z0-9-.]+)$`
)
