package models

import "strings"

// AuditLogType 감사 로그 이벤트 종류
type AuditLogType string

// 봇 이벤트
const (
	AuditBotAdded                 AuditLogType = "botAdded"
	AuditBotApproved              AuditLogType = "botApproved"
	AuditBotApprovedManual        AuditLogType = "botApprovedManual"
	AuditBotDeclined              AuditLogType = "botDeclined"
	AuditBotEdited                AuditLogType = "botEdited"
	AuditBotDeleted               AuditLogType = "botDeleted"
	AuditBotTokenCreated          AuditLogType = "botTokenCreated"
	AuditBotTokenDeleted          AuditLogType = "botTokenDeleted"
	AuditBotWebhookCreated        AuditLogType = "botWebhookCreated"
	AuditBotWebhookDeleted        AuditLogType = "botWebhookDeleted"
	AuditBotSecondaryOwnerAdded   AuditLogType = "botSecondaryOwnerAdded"
	AuditBotSecondaryOwnerRemoved AuditLogType = "botSecondaryOwnerRemoved"
)

// 서버 이벤트
const (
	AuditServerAdded                 AuditLogType = "serverAdded"
	AuditServerEdited                AuditLogType = "serverEdited"
	AuditServerDeleted               AuditLogType = "serverDeleted"
	AuditServerTokenCreated          AuditLogType = "serverTokenCreated"
	AuditServerTokenDeleted          AuditLogType = "serverTokenDeleted"
	AuditServerWebhookCreated        AuditLogType = "serverWebhookCreated"
	AuditServerWebhookDeleted        AuditLogType = "serverWebhookDeleted"
	AuditServerSecondaryOwnerAdded   AuditLogType = "serverSecondaryOwnerAdded"
	AuditServerSecondaryOwnerRemoved AuditLogType = "serverSecondaryOwnerRemoved"
)

// 사용자 이벤트
const (
	AuditUserEdited AuditLogType = "userEdited"
)

// AuditScope 감사 로그 이벤트가 속한 리소스 범위
type AuditScope string

const (
	AuditScopeBot     AuditScope = "bot"
	AuditScopeServer  AuditScope = "server"
	AuditScopeUser    AuditScope = "user"
	AuditScopeUnknown AuditScope = "unknown"
)

var knownAuditLogTypes = map[AuditLogType]struct{}{
	AuditBotAdded: {}, AuditBotApproved: {}, AuditBotApprovedManual: {}, AuditBotDeclined: {},
	AuditBotEdited: {}, AuditBotDeleted: {}, AuditBotTokenCreated: {}, AuditBotTokenDeleted: {},
	AuditBotWebhookCreated: {}, AuditBotWebhookDeleted: {}, AuditBotSecondaryOwnerAdded: {},
	AuditBotSecondaryOwnerRemoved: {},
	AuditServerAdded: {}, AuditServerEdited: {}, AuditServerDeleted: {}, AuditServerTokenCreated: {},
	AuditServerTokenDeleted: {}, AuditServerWebhookCreated: {}, AuditServerWebhookDeleted: {},
	AuditServerSecondaryOwnerAdded: {}, AuditServerSecondaryOwnerRemoved: {},
	AuditUserEdited: {},
}

// IsKnown 알려진 이벤트 종류인지 확인합니다
func (t AuditLogType) IsKnown() bool {
	_, ok := knownAuditLogTypes[t]
	return ok
}

// Scope 이벤트가 봇, 서버, 사용자 중 어디에 속하는지 반환합니다
func (t AuditLogType) Scope() AuditScope {
	if !t.IsKnown() {
		return AuditScopeUnknown
	}
	s := string(t)
	switch {
	case strings.HasPrefix(s, "bot"):
		return AuditScopeBot
	case strings.HasPrefix(s, "server"):
		return AuditScopeServer
	default:
		return AuditScopeUser
	}
}

// AuditLog 리소스에 대해 수행된 권한 작업 기록입니다
type AuditLog struct {
	ID        string       `json:"id"`
	Type      AuditLogType `json:"type"`
	User      *User        `json:"user"` // 시스템 작업이면 null
	Timestamp int64        `json:"timestamp"`
}
