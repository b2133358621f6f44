package legacy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/botlist-space/dlspace/api"
	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/errors"
	"github.com/botlist-space/dlspace/models"
	"github.com/botlist-space/dlspace/utils"
	"github.com/google/uuid"
)

// Client botlist.space 구버전 API 클라이언트입니다. id와 botToken은 생성 후 바뀌지 않습니다
type Client struct {
	id        string
	botToken  string
	baseURL   string
	userAgent string
	transport api.Transport
	mapper    SnakeCaseMapper
}

// Option Client 생성 옵션
type Option func(*Client)

// WithBaseURL 기본 주소를 바꿉니다
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTransport 전송 계층을 바꿉니다
func WithTransport(transport api.Transport) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// NewClient 새로운 구버전 Client를 생성합니다
func NewClient(id, botToken string, opts ...Option) *Client {
	client := &Client{
		id:        id,
		botToken:  botToken,
		baseURL:   constants.LegacyBaseURL,
		userAgent: api.UserAgent(),
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.transport == nil {
		client.transport = api.NewHTTPTransport(constants.APITimeout)
	}

	utils.Debug("Creating botlist.space legacy client for bot %s", id)
	return client
}

// ID 클라이언트에 설정된 봇 ID
func (c *Client) ID() string {
	return c.id
}

func (c *Client) request(method, p string, token string, body interface{}) *api.Request {
	header := make(http.Header)
	header.Set(constants.HeaderUserAgent, c.userAgent)
	if token != "" {
		header.Set(constants.HeaderAuthorization, token)
	}

	req := &api.Request{
		ID:      uuid.NewString(),
		Method:  method,
		BaseURL: c.baseURL,
		Path:    p,
		Header:  header,
	}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			utils.Warn("Failed to encode request body for %s: %v", p, err)
		}
		header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
		req.Body = data
	}
	return req
}

func (c *Client) send(ctx context.Context, req *api.Request) (*api.Response, error) {
	utils.Debug("[%s] %s %s", req.ID, req.Method, req.URL())
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, errors.NewTransportError("요청 실패", err)
	}
	return resp, nil
}

// call 요청을 보내고 target으로 변환합니다. single이면 404와 null 본문을 없음으로 처리합니다
func (c *Client) call(ctx context.Context, req *api.Request, target interface{}, single bool) (bool, error) {
	resp, err := c.send(ctx, req)
	if err != nil {
		return false, err
	}
	if single && api.IsNotFound(resp) {
		return false, nil
	}
	if err := api.CheckResponse(resp); err != nil {
		return false, err
	}
	if len(resp.Body) == 0 {
		return true, nil
	}
	if err := c.mapper.Decode(resp.Body, target); err != nil {
		return false, err
	}
	return true, nil
}

func path(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func requireID(field, value string) error {
	if !utils.IsNonEmpty(value) {
		return errors.NewValidationErrorf(field, "Expected %s.length > 0, got 0", field)
	}
	return nil
}

// GetStatistics 사이트 통계를 조회합니다
func (c *Client) GetStatistics(ctx context.Context) (*Statistics, error) {
	var stats Statistics
	if _, err := c.call(ctx, c.request(http.MethodGet, path("stats"), "", nil), &stats, false); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) botCollection(ctx context.Context, p string) (*models.Collection[Bot], error) {
	var bots []Bot
	if _, err := c.call(ctx, c.request(http.MethodGet, p, "", nil), &bots, false); err != nil {
		return nil, err
	}
	return models.CollectionFrom(bots, func(b Bot) string { return b.ID }), nil
}

// GetAllBots 전체 봇을 ID 키 컬렉션으로 조회합니다
func (c *Client) GetAllBots(ctx context.Context) (*models.Collection[Bot], error) {
	return c.botCollection(ctx, path("bots"))
}

// GetBot 봇 하나를 조회합니다. 없으면 (nil, nil)입니다
func (c *Client) GetBot(ctx context.Context, id string) (*Bot, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	var bot Bot
	found, err := c.call(ctx, c.request(http.MethodGet, path("bots", id), "", nil), &bot, true)
	if err != nil || !found {
		return nil, err
	}
	return &bot, nil
}

// GetSelfBot 클라이언트에 설정된 봇을 조회합니다
func (c *Client) GetSelfBot(ctx context.Context) (*Bot, error) {
	return c.GetBot(ctx, c.id)
}

// GetUpvotes 설정된 봇의 추천 목록을 사용자 ID 키 컬렉션으로 조회합니다
func (c *Client) GetUpvotes(ctx context.Context) (*models.Collection[Upvote], error) {
	if err := requireID("id", c.id); err != nil {
		return nil, err
	}
	if err := requireID("botToken", c.botToken); err != nil {
		return nil, err
	}

	var upvotes []Upvote
	req := c.request(http.MethodGet, path("bots", c.id, "upvotes"), c.botToken, nil)
	if _, err := c.call(ctx, req, &upvotes, false); err != nil {
		return nil, err
	}
	return models.CollectionFrom(upvotes, func(u Upvote) string { return u.User.ID }), nil
}

// GetUpvoterIDs 추천한 사용자 ID만 순서대로 반환합니다
func (c *Client) GetUpvoterIDs(ctx context.Context) ([]string, error) {
	upvotes, err := c.GetUpvotes(ctx)
	if err != nil {
		return nil, err
	}
	return upvotes.Keys(), nil
}

// HasUpvoted 사용자가 설정된 봇을 추천했는지 확인합니다
func (c *Client) HasUpvoted(ctx context.Context, userID string) (bool, error) {
	if err := requireID("userID", userID); err != nil {
		return false, err
	}
	upvotes, err := c.GetUpvotes(ctx)
	if err != nil {
		return false, err
	}
	return upvotes.Has(userID), nil
}

func (c *Client) postCount(ctx context.Context, body map[string]interface{}) (GenericResult, error) {
	if err := requireID("id", c.id); err != nil {
		return nil, err
	}
	if err := requireID("botToken", c.botToken); err != nil {
		return nil, err
	}

	result := GenericResult{}
	req := c.request(http.MethodPost, path("bots", c.id), c.botToken, body)
	if _, err := c.call(ctx, req, &result, false); err != nil {
		return nil, err
	}
	return result, nil
}

// PostServerCount 전체 서버 수를 갱신합니다
func (c *Client) PostServerCount(ctx context.Context, count int) (GenericResult, error) {
	if count < 0 {
		return nil, errors.NewValidationErrorf("count", "Expected count >= 0, got %d", count)
	}
	return c.postCount(ctx, map[string]interface{}{"server_count": count})
}

// PostShardCounts 샤드별 서버 수를 갱신합니다
func (c *Client) PostShardCounts(ctx context.Context, shards []int) (GenericResult, error) {
	if len(shards) == 0 {
		return nil, errors.NewValidationError("shards", "Expected shards.length > 0, got 0")
	}
	for i, count := range shards {
		if count < 0 {
			return nil, errors.NewValidationErrorf("shards", "Expected shards[%d] >= 0, got %d", i, count)
		}
	}
	return c.postCount(ctx, map[string]interface{}{"shards": shards})
}

// GetAllServers 전체 서버를 ID 키 컬렉션으로 조회합니다
func (c *Client) GetAllServers(ctx context.Context) (*models.Collection[Server], error) {
	var servers []Server
	if _, err := c.call(ctx, c.request(http.MethodGet, path("servers"), "", nil), &servers, false); err != nil {
		return nil, err
	}
	return models.CollectionFrom(servers, func(s Server) string { return s.ID }), nil
}

// GetServer 서버 하나를 조회합니다. 경로는 단수형 server/{id}입니다
func (c *Client) GetServer(ctx context.Context, id string) (*Server, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	var server Server
	found, err := c.call(ctx, c.request(http.MethodGet, path("server", id), "", nil), &server, true)
	if err != nil || !found {
		return nil, err
	}
	return &server, nil
}

// GetUser 사용자 하나를 조회합니다
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	var user User
	found, err := c.call(ctx, c.request(http.MethodGet, path("users", id), "", nil), &user, true)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// GetUserBots 사용자가 소유한 봇을 ID 키 컬렉션으로 조회합니다
func (c *Client) GetUserBots(ctx context.Context, id string) (*models.Collection[Bot], error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	return c.botCollection(ctx, path("users", id, "bots"))
}
