package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/utils"
)

// Request 전송 계층에 넘기는 완성된 HTTP 요청입니다
type Request struct {
	ID      string // 로그 추적용 요청 ID
	Method  string
	BaseURL string
	Path    string
	Query   url.Values
	Header  http.Header
	Body    []byte
}

// URL 기본 주소, 경로, 쿼리를 합친 전체 URL을 반환합니다
func (r *Request) URL() string {
	if len(r.Query) == 0 {
		return r.BaseURL + r.Path
	}
	return r.BaseURL + r.Path + "?" + r.Query.Encode()
}

// Response 전송 계층의 원시 응답입니다
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess 2xx 응답인지 확인합니다
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport 요청 하나를 보내고 응답을 돌려주는 전송 계층입니다. 재시도하지 않습니다
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc 함수를 Transport로 사용할 수 있게 합니다
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

func (f TransportFunc) Do(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// HTTPTransport net/http 기반 전송 계층입니다
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport 새로운 HTTPTransport 인스턴스를 생성합니다
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	if timeout <= 0 {
		timeout = constants.APITimeout
	}
	utils.Debug("Creating net/http transport (timeout: %v)", timeout)
	return &HTTPTransport{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewHTTPTransportWithClient 주어진 http.Client를 사용하는 전송 계층을 생성합니다
func NewHTTPTransportWithClient(client *http.Client) *HTTPTransport {
	return &HTTPTransport{client: client}
}

// Do 요청을 보내고 본문 전체를 읽어 반환합니다
func (t *HTTPTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL(), body)
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %w", err)
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("요청 전송 실패: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("응답 읽기 실패: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}
