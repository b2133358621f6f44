package models

// SortDirection 정렬 방향
type SortDirection string

const (
	Ascending  SortDirection = "ascending"
	Descending SortDirection = "descending"
)

// IsValid 허용된 정렬 방향인지 확인합니다
func (d SortDirection) IsValid() bool {
	return d == Ascending || d == Descending
}

// PaginatedResponse 목록 조회 응답입니다. Data는 서버가 보낸 순서를 유지합니다
type PaginatedResponse[T any] struct {
	Page          int           `json:"page"`
	Count         int           `json:"count"`        // 요청한 페이지 크기
	CountPerPage  int           `json:"countPerPage"` // 실제 항목 수
	PageCount     int           `json:"pageCount"`    // 전체 페이지 수
	SortBy        string        `json:"sortBy"`
	SortDirection SortDirection `json:"sortDirection"`
	Data          []T           `json:"data"`
}

// Valid 페이지 번호와 항목 수가 응답 메타데이터와 일치하는지 확인합니다
func (p *PaginatedResponse[T]) Valid() bool {
	if p == nil {
		return false
	}
	if len(p.Data) > p.CountPerPage {
		return false
	}
	return p.Page >= 1 && p.Page <= p.PageCount
}

// IsLastPage 마지막 페이지인지 확인합니다
func (p *PaginatedResponse[T]) IsLastPage() bool {
	return p == nil || p.Page >= p.PageCount
}

// UpdateResult 수정 요청 결과
type UpdateResult struct {
	Success bool `json:"success"`
}
