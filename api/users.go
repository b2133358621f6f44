package api

import (
	"context"

	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/models"
)

const usersResource = "users"

// GetUser 사용자 하나를 조회합니다. 존재하지 않으면 (nil, nil)을 반환합니다
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	return fetchOne[models.User](ctx, c, c.builder.get(resourcePath(usersResource, id), nil, ""))
}

// GetUserBots 사용자가 소유한 봇 목록을 조회합니다. token이 비어 있으면 공개 목록만 조회됩니다
func (c *Client) GetUserBots(ctx context.Context, id, token string, opts *ListOptions) (*models.PaginatedResponse[models.Bot], error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	path := resourcePath(usersResource, id, botsResource)
	return listPage[models.Bot](ctx, c, path, userToken(token), opts, constants.SortByUsername, models.Ascending)
}

// GetUserServers 사용자가 소유한 서버 목록을 조회합니다
func (c *Client) GetUserServers(ctx context.Context, id, token string, opts *ListOptions) (*models.PaginatedResponse[models.Server], error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	path := resourcePath(usersResource, id, serversResource)
	return listPage[models.Server](ctx, c, path, userToken(token), opts, constants.SortByName, models.Ascending)
}

// userToken 토큰이 없으면 서버가 기대하는 "unauthorized" 값을 보냅니다
func userToken(token string) string {
	if token == "" {
		return constants.UnauthorizedToken
	}
	return token
}
