package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/interfaces"
	"github.com/botlist-space/dlspace/telemetry"
	"github.com/botlist-space/dlspace/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/shirou/gopsutil/v3/mem"
)

// HealthStatus 헬스체크 응답 구조체
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Version   string            `json:"version"`
	GoVersion string            `json:"go_version"`
	Memory    string            `json:"memory_usage"`
	System    string            `json:"system_memory,omitempty"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// RequestStats /stats 응답 구조체
type RequestStats struct {
	Total          int64            `json:"total"`
	Failures       int64            `json:"failures"`
	ServerErrors   int64            `json:"server_errors"`
	SuccessRate    float64          `json:"success_rate"`
	AverageLatency string           `json:"average_latency"`
	ByStatus       map[string]int64 `json:"by_status"`
}

// HealthChecker 외부 의존성 하나의 상태를 확인합니다
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// ServiceHealthChecker 통계 엔드포인트 호출로 API 가용성을 확인합니다
type ServiceHealthChecker struct {
	name     string
	provider interfaces.StatisticsProvider
	timeout  time.Duration
}

// NewServiceHealthChecker 새로운 ServiceHealthChecker 인스턴스를 생성합니다
func NewServiceHealthChecker(name string, provider interfaces.StatisticsProvider) *ServiceHealthChecker {
	return &ServiceHealthChecker{
		name:     name,
		provider: provider,
		timeout:  constants.ServiceHealthCheckTimeout,
	}
}

func (c *ServiceHealthChecker) Name() string {
	return c.name
}

// Check 제한 시간 안에 통계 조회가 성공하는지 확인합니다
func (c *ServiceHealthChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if _, err := c.provider.GetStatistics(ctx); err != nil {
		return fmt.Errorf("%s 상태 확인 실패: %w", c.name, err)
	}
	return nil
}

// StatsSource 요청 통계를 제공합니다
type StatsSource interface {
	Snapshot() telemetry.RequestSnapshot
}

// Server 헬스체크 HTTP 서버입니다
type Server struct {
	router    chi.Router
	server    *http.Server
	startTime time.Time
	stats     StatsSource

	mu       sync.RWMutex
	checkers []HealthChecker
}

// NewServer 새로운 Server 인스턴스를 생성합니다. stats는 nil일 수 있습니다
func NewServer(stats StatsSource) *Server {
	s := &Server{
		startTime: time.Now(),
		stats:     stats,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(cors.Default().Handler)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	r.Get("/health", s.healthHandler)
	r.Get("/", s.healthHandler) // Railway의 기본 헬스체크
	r.Get("/stats", s.statsHandler)

	s.router = r
	return s
}

// RegisterHealthChecker 헬스체크 대상을 추가합니다
func (s *Server) RegisterHealthChecker(checker HealthChecker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers = append(s.checkers, checker)
}

// Handler 라우터를 반환합니다
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start 헬스체크 HTTP 서버를 백그라운드에서 시작합니다
func (s *Server) Start(port string) {
	if port == "" {
		port = constants.DefaultHTTPPort
	}

	s.server = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: constants.ServiceHealthCheckTimeout,
	}

	go func() {
		utils.Info("Health check server starting on port %s", port)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Error("Health server error: %v", err)
		}
	}()
}

// Shutdown 서버를 정상 종료합니다
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Status 등록된 모든 검사를 실행해 현재 상태를 계산합니다
func (s *Server) Status(ctx context.Context) HealthStatus {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	status := HealthStatus{
		Status:    constants.HealthStatusHealthy,
		Timestamp: time.Now(),
		Uptime:    time.Since(s.startTime).String(),
		Version:   "v" + constants.LibraryVersion,
		GoVersion: runtime.Version(),
		Memory:    fmt.Sprintf("%.2f MB", float64(memStats.Alloc)/constants.BytesToMB),
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		status.System = fmt.Sprintf("%.0f/%.0f MB (%.1f%%)",
			float64(vm.Used)/constants.BytesToMB, float64(vm.Total)/constants.BytesToMB, vm.UsedPercent)
	}

	s.mu.RLock()
	checkers := append([]HealthChecker(nil), s.checkers...)
	s.mu.RUnlock()

	if len(checkers) == 0 {
		return status
	}

	status.Checks = make(map[string]string, len(checkers))
	for _, checker := range checkers {
		if err := checker.Check(ctx); err != nil {
			utils.Warn("Health check %s failed: %v", checker.Name(), err)
			status.Checks[checker.Name()] = constants.HealthStatusUnhealthy
			status.Status = constants.HealthStatusUnhealthy
			continue
		}
		status.Checks[checker.Name()] = constants.HealthStatusHealthy
	}
	return status
}

// healthHandler 헬스체크 핸들러
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	status := s.Status(r.Context())

	code := http.StatusOK
	if status.Status != constants.HealthStatusHealthy {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		http.Error(w, "request statistics are not collected", http.StatusNotFound)
		return
	}

	snapshot := s.stats.Snapshot()
	byStatus := make(map[string]int64, len(snapshot.ByStatus))
	for status, count := range snapshot.ByStatus {
		byStatus[fmt.Sprintf("%d", status)] = count
	}

	writeJSON(w, http.StatusOK, RequestStats{
		Total:          snapshot.Total,
		Failures:       snapshot.Failures,
		ServerErrors:   snapshot.ServerErrors,
		SuccessRate:    snapshot.SuccessRate(),
		AverageLatency: snapshot.AverageLatency().String(),
		ByStatus:       byStatus,
	})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		utils.Warn("Failed to encode health response: %v", err)
	}
}
