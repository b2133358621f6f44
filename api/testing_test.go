package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/botlist-space/dlspace/constants"
)

// recordingTransport 요청을 기록하고 고정 응답을 돌려주는 테스트용 전송 계층
type recordingTransport struct {
	mu       sync.Mutex
	requests []*Request
	status   int
	body     string
	err      error
}

func (r *recordingTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	if r.err != nil {
		return nil, r.err
	}
	status := r.status
	if status == 0 {
		status = http.StatusOK
	}
	return &Response{StatusCode: status, Body: []byte(r.body)}, nil
}

func (r *recordingTransport) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

func (r *recordingTransport) last() *Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requests) == 0 {
		return nil
	}
	return r.requests[len(r.requests)-1]
}

var fixedNow = time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)

func newStubClient(t *testing.T, transport *recordingTransport) *Client {
	t.Helper()
	return NewClient(transport,
		WithBaseURL("https://example.test/v2"),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func newServerClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(NewHTTPTransport(constants.TestAPITimeout),
		WithBaseURL(server.URL),
		WithClock(func() time.Time { return fixedNow }),
	)
}
