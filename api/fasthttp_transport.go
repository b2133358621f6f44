package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/utils"
	"github.com/valyala/fasthttp"
)

// FastHTTPTransport fasthttp 클라이언트 풀을 라운드로빈으로 사용하는 전송 계층입니다
type FastHTTPTransport struct {
	clients []*fasthttp.Client
	timeout time.Duration
	index   uint32
}

// NewFastHTTPTransport 새로운 FastHTTPTransport 인스턴스를 생성합니다
func NewFastHTTPTransport(size int, timeout time.Duration) *FastHTTPTransport {
	if size <= 0 {
		size = constants.DefaultPoolSize
	}
	if timeout <= 0 {
		timeout = constants.APITimeout
	}

	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		ClientSessionCache: tls.NewLRUClientSessionCache(64),
	}

	clients := make([]*fasthttp.Client, size)
	for i := 0; i < size; i++ {
		clients[i] = &fasthttp.Client{
			MaxIdleConnDuration: 90 * time.Second,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: 8 * constants.BytesToMB,

			// 재시도 없음
			MaxIdemponentCallAttempts: 1,

			TLSConfig:                tlsConfig,
			NoDefaultUserAgentHeader: true,
		}
	}

	utils.Debug("Creating fasthttp transport (pool: %d, timeout: %v)", size, timeout)
	return &FastHTTPTransport{
		clients: clients,
		timeout: timeout,
	}
}

// Size 풀에 있는 클라이언트 수
func (t *FastHTTPTransport) Size() int {
	return len(t.clients)
}

func (t *FastHTTPTransport) nextClient() *fasthttp.Client {
	i := atomic.AddUint32(&t.index, 1)
	return t.clients[int(i)%len(t.clients)]
}

// Do 요청을 보내고 응답 본문을 복사해 반환합니다
func (t *FastHTTPTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("요청 취소됨: %w", err)
	}

	fReq := fasthttp.AcquireRequest()
	fResp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(fReq)
	defer fasthttp.ReleaseResponse(fResp)

	fReq.SetRequestURI(req.URL())
	fReq.Header.SetMethod(req.Method)
	for key, values := range req.Header {
		for _, v := range values {
			fReq.Header.Add(key, v)
		}
	}
	if len(req.Body) > 0 {
		fReq.SetBody(req.Body)
	}

	timeout := t.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	if err := t.nextClient().DoTimeout(fReq, fResp, timeout); err != nil {
		return nil, fmt.Errorf("요청 전송 실패: %w", err)
	}

	header := make(http.Header)
	fResp.Header.VisitAll(func(key, value []byte) {
		header.Add(string(key), string(value))
	})

	// 응답 객체는 풀로 반환되므로 본문을 복사합니다
	body := append([]byte(nil), fResp.Body()...)

	return &Response{
		StatusCode: fResp.StatusCode(),
		Header:     header,
		Body:       body,
	}, nil
}
