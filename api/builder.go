package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/utils"
)

// requestBuilder 검증된 인자로 요청을 조립합니다. 실패하지 않습니다
type requestBuilder struct {
	baseURL   string
	userAgent string
}

func newRequestBuilder(baseURL, userAgent string) requestBuilder {
	return requestBuilder{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

// UserAgent 라이브러리 User-Agent 값을 반환합니다
func UserAgent() string {
	return fmt.Sprintf("%s v%s", constants.UserAgentProduct, constants.LibraryVersion)
}

// resourcePath 경로 조각을 이스케이프해 연결합니다
func resourcePath(segments ...string) string {
	var b strings.Builder
	for _, segment := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(segment))
	}
	return b.String()
}

func (b requestBuilder) build(method, path string, query url.Values, token string) *Request {
	header := make(http.Header)
	header.Set(constants.HeaderUserAgent, b.userAgent)
	if token != "" {
		header.Set(constants.HeaderAuthorization, token)
	}
	return &Request{
		Method:  method,
		BaseURL: b.baseURL,
		Path:    path,
		Query:   query,
		Header:  header,
	}
}

func (b requestBuilder) get(path string, query url.Values, token string) *Request {
	return b.build(http.MethodGet, path, query, token)
}

// post JSON 본문을 가진 요청을 생성합니다. 본문은 map[string]interface{}이므로 직렬화가 실패하지 않습니다
func (b requestBuilder) post(path string, fields map[string]interface{}, token string) *Request {
	req := b.build(http.MethodPost, path, nil, token)
	req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	body, err := json.Marshal(fields)
	if err != nil {
		utils.Warn("Failed to encode request body for %s: %v", path, err)
	}
	req.Body = body
	return req
}

// listQuery page, count, sortBy, sortDirection을 항상 포함한 쿼리를 만듭니다
func listQuery(opts ListOptions) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(opts.Page))
	query.Set("count", strconv.Itoa(opts.Count))
	query.Set("sortBy", opts.SortBy)
	query.Set("sortDirection", string(opts.SortDirection))
	return query
}

// searchQuery query, filters, tags는 비어 있지 않을 때만 추가합니다
func searchQuery(opts SearchOptions) url.Values {
	query := listQuery(opts.ListOptions)
	if opts.Query != "" {
		query.Set("query", opts.Query)
	}
	if len(opts.Filters) > 0 {
		query.Set("filters", utils.JoinList(opts.Filters))
	}
	if len(opts.Tags) > 0 {
		query.Set("tags", utils.JoinList(opts.Tags))
	}
	return query
}

func timeRangeQuery(r TimeRange) url.Values {
	query := url.Values{}
	query.Set("from", strconv.FormatInt(r.From, 10))
	query.Set("to", strconv.FormatInt(r.To, 10))
	return query
}
