package api

import (
	"context"

	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/models"
)

const serversResource = "servers"

// GetServers 서버 목록을 검색합니다. opts가 nil이면 필터 없이 top 내림차순으로 조회합니다
func (c *Client) GetServers(ctx context.Context, opts *SearchOptions) (*models.PaginatedResponse[models.Server], error) {
	return searchPage[models.Server](ctx, c, resourcePath(serversResource), opts, nil, constants.AllowedServerFilters)
}

// GetServer 서버 하나를 조회합니다. 존재하지 않으면 (nil, nil)을 반환합니다
func (c *Client) GetServer(ctx context.Context, id string) (*models.Server, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	return fetchOne[models.Server](ctx, c, c.builder.get(resourcePath(serversResource, id), nil, ""))
}

// UpdateServer 서버 정보를 부분 수정합니다
func (c *Client) UpdateServer(ctx context.Context, id, token string, form models.ServerUpdate) (*models.UpdateResult, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	if err := validateToken(token); err != nil {
		return nil, err
	}
	if err := validateServerUpdate(form); err != nil {
		return nil, err
	}
	return fetch[models.UpdateResult](ctx, c, c.builder.post(resourcePath(serversResource, id), form.Fields(), token))
}

// GetServerReviews 서버 리뷰 목록을 조회합니다
func (c *Client) GetServerReviews(ctx context.Context, id string, opts *ListOptions) (*models.PaginatedResponse[models.Review], error) {
	return publicListPage[models.Review](ctx, c, serversResource, id, opts, constants.SortByTop, models.Descending, "reviews")
}

// GetServerAnalytics 서버 분석 데이터를 조회합니다
func (c *Client) GetServerAnalytics(ctx context.Context, id, token string, r *TimeRange) (*models.PaginatedResponse[models.ServerAnalytics], error) {
	return analyticsPage[models.ServerAnalytics](ctx, c, serversResource, id, token, r)
}

// GetServerUpvotes 서버 추천 목록을 조회합니다
func (c *Client) GetServerUpvotes(ctx context.Context, id, token string, opts *ListOptions) (*models.PaginatedResponse[models.Upvote], error) {
	return authedListPage[models.Upvote](ctx, c, serversResource, id, token, opts, constants.SortByTimestamp, models.Ascending, "upvotes")
}

// GetServerUserUpvoteStatus 사용자가 서버를 추천했는지 조회합니다
func (c *Client) GetServerUserUpvoteStatus(ctx context.Context, serverID, userID, token string) (*models.UserUpvoteStatus, error) {
	return upvoteStatus(ctx, c, serversResource, serverID, userID, token)
}

// GetServerUpvoteLeaderboard 서버 추천 리더보드를 조회합니다
func (c *Client) GetServerUpvoteLeaderboard(ctx context.Context, id, token string, opts *ListOptions) (*models.PaginatedResponse[models.UserUpvoteCount], error) {
	return authedListPage[models.UserUpvoteCount](ctx, c, serversResource, id, token, opts, constants.SortByCount, models.Descending, "upvotes", "leaderboard")
}

// GetServerAuditLog 서버 감사 로그를 조회합니다
func (c *Client) GetServerAuditLog(ctx context.Context, id, token string, opts *ListOptions) (*models.PaginatedResponse[models.AuditLog], error) {
	return authedListPage[models.AuditLog](ctx, c, serversResource, id, token, opts, constants.SortByTimestamp, models.Descending, "audit")
}

// GetServerOwners 서버 소유자 목록을 조회합니다
func (c *Client) GetServerOwners(ctx context.Context, id string, opts *ListOptions) (*models.PaginatedResponse[models.User], error) {
	return publicListPage[models.User](ctx, c, serversResource, id, opts, constants.SortByID, models.Ascending, "owners")
}
