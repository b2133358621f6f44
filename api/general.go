package api

import (
	"context"
	"net/url"

	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/models"
)

// GetStatistics 사이트 전체 통계를 조회합니다
func (c *Client) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	return fetch[models.Statistics](ctx, c, c.builder.get(resourcePath("statistics"), nil, ""))
}

// GetLanguages 봇 개발 언어 목록을 조회합니다
func (c *Client) GetLanguages(ctx context.Context, opts *ListOptions) (*models.PaginatedResponse[models.Language], error) {
	return listPage[models.Language](ctx, c, resourcePath("languages"), "", opts, constants.SortByName, models.Ascending)
}

// GetTags 태그 목록을 조회합니다. tagType이 비어 있으면 all입니다
func (c *Client) GetTags(ctx context.Context, tagType models.TagType, opts *ListOptions) (*models.PaginatedResponse[models.Tag], error) {
	if tagType == "" {
		tagType = models.TagTypeAll
	}
	if err := validateTagType(tagType); err != nil {
		return nil, err
	}
	resolved := resolveList(opts, constants.SortByName, models.Ascending)
	if err := validateList(resolved); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("type", string(tagType))
	for key, values := range listQuery(resolved) {
		query[key] = values
	}
	return fetch[models.PaginatedResponse[models.Tag]](ctx, c, c.builder.get(resourcePath("tags"), query, ""))
}
