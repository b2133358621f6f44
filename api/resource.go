package api

import (
	"context"

	"github.com/botlist-space/dlspace/models"
)

// 봇과 서버 엔드포인트가 공유하는 흐름: 검증 → 요청 조립 → 전송 → 매핑

func listPage[T any](ctx context.Context, c *Client, path, token string, opts *ListOptions, sortBy string, direction models.SortDirection) (*models.PaginatedResponse[T], error) {
	resolved := resolveList(opts, sortBy, direction)
	if err := validateList(resolved); err != nil {
		return nil, err
	}
	return fetch[models.PaginatedResponse[T]](ctx, c, c.builder.get(path, listQuery(resolved), token))
}

func searchPage[T any](ctx context.Context, c *Client, path string, opts *SearchOptions, defaultFilters, allowedFilters []string) (*models.PaginatedResponse[T], error) {
	resolved := resolveSearch(opts, defaultFilters)
	if err := validateSearch(resolved, allowedFilters); err != nil {
		return nil, err
	}
	return fetch[models.PaginatedResponse[T]](ctx, c, c.builder.get(path, searchQuery(resolved), ""))
}

func analyticsPage[T any](ctx context.Context, c *Client, resource, id, token string, r *TimeRange) (*models.PaginatedResponse[T], error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	if err := validateToken(token); err != nil {
		return nil, err
	}
	now := c.now()
	resolved := resolveTimeRange(r, now)
	if err := validateTimeRange(resolved, now); err != nil {
		return nil, err
	}
	req := c.builder.get(resourcePath(resource, id, "analytics"), timeRangeQuery(resolved), token)
	return fetch[models.PaginatedResponse[T]](ctx, c, req)
}

func upvoteStatus(ctx context.Context, c *Client, resource, resourceID, userID, token string) (*models.UserUpvoteStatus, error) {
	idField := resource[:len(resource)-1] + "ID"
	if err := validateID(idField, resourceID); err != nil {
		return nil, err
	}
	if err := validateID("userID", userID); err != nil {
		return nil, err
	}
	if err := validateToken(token); err != nil {
		return nil, err
	}
	req := c.builder.get(resourcePath(resource, resourceID, "upvotes", "status", userID), nil, token)
	return fetch[models.UserUpvoteStatus](ctx, c, req)
}

func authedListPage[T any](ctx context.Context, c *Client, resource, id, token string, opts *ListOptions, sortBy string, direction models.SortDirection, sub ...string) (*models.PaginatedResponse[T], error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	if err := validateToken(token); err != nil {
		return nil, err
	}
	segments := append([]string{resource, id}, sub...)
	return listPage[T](ctx, c, resourcePath(segments...), token, opts, sortBy, direction)
}

func publicListPage[T any](ctx context.Context, c *Client, resource, id string, opts *ListOptions, sortBy string, direction models.SortDirection, sub ...string) (*models.PaginatedResponse[T], error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	segments := append([]string{resource, id}, sub...)
	return listPage[T](ctx, c, resourcePath(segments...), "", opts, sortBy, direction)
}
