package api

import (
	"context"
	"time"

	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/errors"
	"github.com/botlist-space/dlspace/utils"
	"github.com/google/uuid"
)

// Client discordlist.space v2 API 클라이언트입니다. 생성 후 설정은 변경되지 않습니다
type Client struct {
	transport Transport
	builder   requestBuilder
	mapper    JSONMapper
	now       func() time.Time
}

// Option Client 생성 옵션
type Option func(*Client)

// WithBaseURL API 기본 주소를 바꿉니다
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.builder = newRequestBuilder(baseURL, c.builder.userAgent)
	}
}

// WithUserAgent User-Agent 값을 바꿉니다
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.builder.userAgent = userAgent
	}
}

// WithClock 분석 구간 검증에 쓰는 현재 시각 함수를 바꿉니다
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient 새로운 Client 인스턴스를 생성합니다. transport가 nil이면 net/http를 사용합니다
func NewClient(transport Transport, opts ...Option) *Client {
	if transport == nil {
		transport = NewHTTPTransport(constants.APITimeout)
	}

	client := &Client{
		transport: transport,
		builder:   newRequestBuilder(constants.BaseURL, UserAgent()),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(client)
	}

	utils.Debug("Creating discordlist.space API client for %s", client.builder.baseURL)
	return client
}

// NewTransport 설정 이름에 맞는 전송 계층을 생성합니다
func NewTransport(kind string, poolSize int, timeout time.Duration) Transport {
	if kind == constants.TransportFastHTTP {
		return NewFastHTTPTransport(poolSize, timeout)
	}
	return NewHTTPTransport(timeout)
}

// BaseURL 클라이언트가 사용하는 기본 주소
func (c *Client) BaseURL() string {
	return c.builder.baseURL
}

// send 요청 하나를 보냅니다. 재시도하지 않습니다
func (c *Client) send(ctx context.Context, req *Request) (*Response, error) {
	req.ID = uuid.NewString()
	utils.Debug("[%s] %s %s", req.ID, req.Method, req.URL())

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		utils.Debug("[%s] transport failure: %v", req.ID, err)
		return nil, errors.NewTransportError("요청 실패", err)
	}

	utils.Debug("[%s] status %d (%d bytes)", req.ID, resp.StatusCode, len(resp.Body))
	return resp, nil
}

// fetch 요청을 보내고 성공 응답을 T로 디코딩합니다
func fetch[T any](ctx context.Context, c *Client, req *Request) (*T, error) {
	resp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := CheckResponse(resp); err != nil {
		return nil, err
	}

	var out T
	if err := c.mapper.Decode(resp.Body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// fetchOne 단일 리소스를 조회합니다. 없으면 (nil, nil)을 반환합니다
func fetchOne[T any](ctx context.Context, c *Client, req *Request) (*T, error) {
	resp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}
	if IsNotFound(resp) {
		utils.Debug("[%s] resource not found", req.ID)
		return nil, nil
	}
	if err := CheckResponse(resp); err != nil {
		return nil, err
	}

	var out T
	if err := c.mapper.Decode(resp.Body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
