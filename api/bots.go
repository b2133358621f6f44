package api

import (
	"context"

	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/models"
)

const botsResource = "bots"

// GetBots 봇 목록을 검색합니다. opts가 nil이면 승인된 봇을 top 내림차순으로 조회합니다
func (c *Client) GetBots(ctx context.Context, opts *SearchOptions) (*models.PaginatedResponse[models.Bot], error) {
	defaultFilters := []string{constants.FilterApproved}
	return searchPage[models.Bot](ctx, c, resourcePath(botsResource), opts, defaultFilters, constants.AllowedBotFilters)
}

// GetBot 봇 하나를 조회합니다. 존재하지 않으면 (nil, nil)을 반환합니다
func (c *Client) GetBot(ctx context.Context, id string) (*models.Bot, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	return fetchOne[models.Bot](ctx, c, c.builder.get(resourcePath(botsResource, id), nil, ""))
}

// UpdateBot 봇 정보를 부분 수정합니다. 설정한 필드만 전송됩니다
func (c *Client) UpdateBot(ctx context.Context, id, token string, form models.BotUpdate) (*models.UpdateResult, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	if err := validateToken(token); err != nil {
		return nil, err
	}
	if err := validateBotUpdate(form); err != nil {
		return nil, err
	}
	return fetch[models.UpdateResult](ctx, c, c.builder.post(resourcePath(botsResource, id), form.Fields(), token))
}

// GetBotReviews 봇 리뷰 목록을 조회합니다
func (c *Client) GetBotReviews(ctx context.Context, id string, opts *ListOptions) (*models.PaginatedResponse[models.Review], error) {
	return publicListPage[models.Review](ctx, c, botsResource, id, opts, constants.SortByTop, models.Descending, "reviews")
}

// GetBotAnalytics 봇 분석 데이터를 조회합니다. r이 nil이면 최근 7일입니다
func (c *Client) GetBotAnalytics(ctx context.Context, id, token string, r *TimeRange) (*models.PaginatedResponse[models.BotAnalytics], error) {
	return analyticsPage[models.BotAnalytics](ctx, c, botsResource, id, token, r)
}

// GetBotUpvotes 봇 추천 목록을 조회합니다
func (c *Client) GetBotUpvotes(ctx context.Context, id, token string, opts *ListOptions) (*models.PaginatedResponse[models.Upvote], error) {
	return authedListPage[models.Upvote](ctx, c, botsResource, id, token, opts, constants.SortByTimestamp, models.Ascending, "upvotes")
}

// GetBotUserUpvoteStatus 사용자가 봇을 추천했는지 조회합니다
func (c *Client) GetBotUserUpvoteStatus(ctx context.Context, botID, userID, token string) (*models.UserUpvoteStatus, error) {
	return upvoteStatus(ctx, c, botsResource, botID, userID, token)
}

// GetBotUpvoteLeaderboard 봇 추천 리더보드를 조회합니다
func (c *Client) GetBotUpvoteLeaderboard(ctx context.Context, id, token string, opts *ListOptions) (*models.PaginatedResponse[models.UserUpvoteCount], error) {
	return authedListPage[models.UserUpvoteCount](ctx, c, botsResource, id, token, opts, constants.SortByCount, models.Descending, "upvotes", "leaderboard")
}

// GetBotAuditLog 봇 감사 로그를 조회합니다
func (c *Client) GetBotAuditLog(ctx context.Context, id, token string, opts *ListOptions) (*models.PaginatedResponse[models.AuditLog], error) {
	return authedListPage[models.AuditLog](ctx, c, botsResource, id, token, opts, constants.SortByTimestamp, models.Descending, "audit")
}

// GetBotOwners 봇 소유자 목록을 조회합니다
func (c *Client) GetBotOwners(ctx context.Context, id string, opts *ListOptions) (*models.PaginatedResponse[models.User], error) {
	return publicListPage[models.User](ctx, c, botsResource, id, opts, constants.SortByID, models.Ascending, "owners")
}
