package interfaces

import (
	"context"

	"github.com/botlist-space/dlspace/api"
	"github.com/botlist-space/dlspace/legacy"
	"github.com/botlist-space/dlspace/models"
)

// StatisticsProvider 사이트 통계를 제공하는 인터페이스입니다. 헬스체크에서 사용합니다
type StatisticsProvider interface {
	GetStatistics(ctx context.Context) (*models.Statistics, error)
}

// BotAPI 봇 관련 v2 API 인터페이스입니다
type BotAPI interface {
	GetBots(ctx context.Context, opts *api.SearchOptions) (*models.PaginatedResponse[models.Bot], error)
	GetBot(ctx context.Context, id string) (*models.Bot, error)
	UpdateBot(ctx context.Context, id, token string, form models.BotUpdate) (*models.UpdateResult, error)
	GetBotReviews(ctx context.Context, id string, opts *api.ListOptions) (*models.PaginatedResponse[models.Review], error)
	GetBotAnalytics(ctx context.Context, id, token string, r *api.TimeRange) (*models.PaginatedResponse[models.BotAnalytics], error)
	GetBotUpvotes(ctx context.Context, id, token string, opts *api.ListOptions) (*models.PaginatedResponse[models.Upvote], error)
	GetBotUserUpvoteStatus(ctx context.Context, botID, userID, token string) (*models.UserUpvoteStatus, error)
	GetBotUpvoteLeaderboard(ctx context.Context, id, token string, opts *api.ListOptions) (*models.PaginatedResponse[models.UserUpvoteCount], error)
	GetBotAuditLog(ctx context.Context, id, token string, opts *api.ListOptions) (*models.PaginatedResponse[models.AuditLog], error)
	GetBotOwners(ctx context.Context, id string, opts *api.ListOptions) (*models.PaginatedResponse[models.User], error)
}

// ServerAPI 서버 관련 v2 API 인터페이스입니다
type ServerAPI interface {
	GetServers(ctx context.Context, opts *api.SearchOptions) (*models.PaginatedResponse[models.Server], error)
	GetServer(ctx context.Context, id string) (*models.Server, error)
	UpdateServer(ctx context.Context, id, token string, form models.ServerUpdate) (*models.UpdateResult, error)
	GetServerReviews(ctx context.Context, id string, opts *api.ListOptions) (*models.PaginatedResponse[models.Review], error)
	GetServerAnalytics(ctx context.Context, id, token string, r *api.TimeRange) (*models.PaginatedResponse[models.ServerAnalytics], error)
	GetServerUpvotes(ctx context.Context, id, token string, opts *api.ListOptions) (*models.PaginatedResponse[models.Upvote], error)
	GetServerUserUpvoteStatus(ctx context.Context, serverID, userID, token string) (*models.UserUpvoteStatus, error)
	GetServerUpvoteLeaderboard(ctx context.Context, id, token string, opts *api.ListOptions) (*models.PaginatedResponse[models.UserUpvoteCount], error)
	GetServerAuditLog(ctx context.Context, id, token string, opts *api.ListOptions) (*models.PaginatedResponse[models.AuditLog], error)
	GetServerOwners(ctx context.Context, id string, opts *api.ListOptions) (*models.PaginatedResponse[models.User], error)
}

// APIClient discordlist.space v2 API 전체 인터페이스입니다
type APIClient interface {
	StatisticsProvider
	BotAPI
	ServerAPI

	GetLanguages(ctx context.Context, opts *api.ListOptions) (*models.PaginatedResponse[models.Language], error)
	GetTags(ctx context.Context, tagType models.TagType, opts *api.ListOptions) (*models.PaginatedResponse[models.Tag], error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserBots(ctx context.Context, id, token string, opts *api.ListOptions) (*models.PaginatedResponse[models.Bot], error)
	GetUserServers(ctx context.Context, id, token string, opts *api.ListOptions) (*models.PaginatedResponse[models.Server], error)
}

// LegacyClient botlist.space 레거시 API 인터페이스입니다
type LegacyClient interface {
	ID() string
	GetStatistics(ctx context.Context) (*legacy.Statistics, error)
	GetAllBots(ctx context.Context) (*models.Collection[legacy.Bot], error)
	GetBot(ctx context.Context, id string) (*legacy.Bot, error)
	GetSelfBot(ctx context.Context) (*legacy.Bot, error)
	GetUpvotes(ctx context.Context) (*models.Collection[legacy.Upvote], error)
	GetUpvoterIDs(ctx context.Context) ([]string, error)
	HasUpvoted(ctx context.Context, userID string) (bool, error)
	PostServerCount(ctx context.Context, count int) (legacy.GenericResult, error)
	PostShardCounts(ctx context.Context, shards []int) (legacy.GenericResult, error)
	GetAllServers(ctx context.Context) (*models.Collection[legacy.Server], error)
	GetServer(ctx context.Context, id string) (*legacy.Server, error)
	GetUser(ctx context.Context, id string) (*legacy.User, error)
	GetUserBots(ctx context.Context, id string) (*models.Collection[legacy.Bot], error)
}

var (
	_ APIClient    = (*api.Client)(nil)
	_ LegacyClient = (*legacy.Client)(nil)
)
