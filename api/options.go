package api

import (
	"time"

	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/models"
	"github.com/botlist-space/dlspace/utils"
)

// ListOptions 목록 조회 공통 파라미터입니다.
// nil을 넘기면 엔드포인트별 기본값을 사용하고, 값을 넘기면 그대로 검증 후 전송합니다.
type ListOptions struct {
	Page          int
	Count         int
	SortBy        string
	SortDirection models.SortDirection
}

// SearchOptions 봇/서버 검색 파라미터입니다
type SearchOptions struct {
	ListOptions
	Query   string
	Filters []string
	Tags    []string
}

// TimeRange 분석 조회 구간 (epoch 밀리초)
type TimeRange struct {
	From int64
	To   int64
}

// NewListOptions 기본 페이지와 크기로 ListOptions를 생성합니다
func NewListOptions(sortBy string, direction models.SortDirection) *ListOptions {
	return &ListOptions{
		Page:          constants.DefaultPage,
		Count:         constants.DefaultCount,
		SortBy:        sortBy,
		SortDirection: direction,
	}
}

// resolveList nil이면 엔드포인트 기본값을, 아니면 복사본을 반환합니다
func resolveList(opts *ListOptions, sortBy string, direction models.SortDirection) ListOptions {
	if opts == nil {
		return *NewListOptions(sortBy, direction)
	}
	return *opts
}

// resolveSearch 검색 옵션 기본값을 적용합니다
func resolveSearch(opts *SearchOptions, defaultFilters []string) SearchOptions {
	if opts == nil {
		return SearchOptions{
			ListOptions: *NewListOptions(constants.SortByTop, models.Descending),
			Filters:     defaultFilters,
		}
	}
	return *opts
}

// resolveTimeRange nil이면 최근 7일 구간을 반환합니다
func resolveTimeRange(r *TimeRange, now time.Time) TimeRange {
	if r == nil {
		return TimeRange{
			From: utils.ToMillis(now.Add(-constants.DefaultAnalyticsWindow)),
			To:   utils.ToMillis(now),
		}
	}
	return *r
}
