package telemetry

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/botlist-space/dlspace/api"
	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/utils"
)

// RequestSnapshot 특정 시점의 요청 통계입니다
type RequestSnapshot struct {
	Total         int64
	Failures      int64
	ServerErrors  int64
	TotalDuration time.Duration
	ByStatus      map[int]int64
}

// AverageLatency 요청당 평균 소요 시간을 반환합니다
func (s RequestSnapshot) AverageLatency() time.Duration {
	if s.Total == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(s.Total)
}

// SuccessRate 성공한 요청의 비율(0~1)을 반환합니다. 요청이 없으면 1입니다
func (s RequestSnapshot) SuccessRate() float64 {
	if s.Total == 0 {
		return 1
	}
	return float64(s.Total-s.Failures) / float64(s.Total)
}

// Statuses 기록된 상태 코드를 오름차순으로 반환합니다
func (s RequestSnapshot) Statuses() []int {
	statuses := make([]int, 0, len(s.ByStatus))
	for status := range s.ByStatus {
		statuses = append(statuses, status)
	}
	sort.Ints(statuses)
	return statuses
}

// InstrumentedTransport 요청 수, 실패 수, 상태 코드별 횟수를 집계하는 전송 계층 래퍼입니다
type InstrumentedTransport struct {
	next api.Transport

	total        int64
	failures     int64
	serverErrors int64
	durationNs   int64

	mu       sync.Mutex
	byStatus map[int]int64
}

// NewInstrumentedTransport 새로운 InstrumentedTransport 인스턴스를 생성합니다
func NewInstrumentedTransport(next api.Transport) *InstrumentedTransport {
	return &InstrumentedTransport{
		next:     next,
		byStatus: make(map[int]int64),
	}
}

// Do 내부 전송 계층으로 요청을 보내고 결과를 기록합니다
func (t *InstrumentedTransport) Do(ctx context.Context, req *api.Request) (*api.Response, error) {
	start := time.Now()
	resp, err := t.next.Do(ctx, req)
	elapsed := time.Since(start)

	atomic.AddInt64(&t.total, 1)
	atomic.AddInt64(&t.durationNs, int64(elapsed))

	if err != nil {
		atomic.AddInt64(&t.failures, 1)
		utils.Debug("Request %s failed after %v: %v", req.ID, elapsed, err)
		return resp, err
	}

	if !resp.IsSuccess() {
		atomic.AddInt64(&t.failures, 1)
	}
	if resp.StatusCode >= constants.HTTPServerErrorThreshold {
		atomic.AddInt64(&t.serverErrors, 1)
	}

	t.mu.Lock()
	t.byStatus[resp.StatusCode]++
	t.mu.Unlock()

	return resp, nil
}

// Snapshot 현재까지의 통계를 복사해 반환합니다
func (t *InstrumentedTransport) Snapshot() RequestSnapshot {
	t.mu.Lock()
	byStatus := make(map[int]int64, len(t.byStatus))
	for status, count := range t.byStatus {
		byStatus[status] = count
	}
	t.mu.Unlock()

	return RequestSnapshot{
		Total:         atomic.LoadInt64(&t.total),
		Failures:      atomic.LoadInt64(&t.failures),
		ServerErrors:  atomic.LoadInt64(&t.serverErrors),
		TotalDuration: time.Duration(atomic.LoadInt64(&t.durationNs)),
		ByStatus:      byStatus,
	}
}
