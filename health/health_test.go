package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/models"
	"github.com/botlist-space/dlspace/telemetry"
)

type stubProvider struct {
	err error
}

func (p *stubProvider) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &models.Statistics{Bots: 10, Servers: 5, Users: 100}, nil
}

type stubStats struct{}

func (stubStats) Snapshot() telemetry.RequestSnapshot {
	return telemetry.RequestSnapshot{
		Total:    4,
		Failures: 1,
		ByStatus: map[int]int64{200: 3, 404: 1},
	}
}

func get(t *testing.T, server *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	tests := []struct {
		providerErr  error
		expectedCode int
		expected     string
		desc         string
	}{
		{nil, http.StatusOK, constants.HealthStatusHealthy, "healthy service"},
		{fmt.Errorf("connection refused"), http.StatusServiceUnavailable, constants.HealthStatusUnhealthy, "failing service"},
	}

	for _, test := range tests {
		server := NewServer(nil)
		server.RegisterHealthChecker(NewServiceHealthChecker("discordlist", &stubProvider{err: test.providerErr}))

		rec := get(t, server, "/health")
		if rec.Code != test.expectedCode {
			t.Errorf("%s: expected status %d, got %d", test.desc, test.expectedCode, rec.Code)
		}

		var status HealthStatus
		if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
			t.Fatalf("%s: failed to decode response: %v", test.desc, err)
		}

		if status.Status != test.expected {
			t.Errorf("%s: expected status '%s', got '%s'", test.desc, test.expected, status.Status)
		}

		if status.Checks["discordlist"] != test.expected {
			t.Errorf("%s: expected check '%s', got '%s'", test.desc, test.expected, status.Checks["discordlist"])
		}
	}
}

func TestHealthWithoutCheckers(t *testing.T) {
	server := NewServer(nil)

	rec := get(t, server, "/")
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	if rec.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Expected JSON content type, got '%s'", rec.Header().Get("Content-Type"))
	}

	var status HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if status.Version != "v"+constants.LibraryVersion {
		t.Errorf("Expected version 'v%s', got '%s'", constants.LibraryVersion, status.Version)
	}

	if len(status.Checks) != 0 {
		t.Errorf("Expected no checks, got %v", status.Checks)
	}
}

func TestPingEndpoint(t *testing.T) {
	rec := get(t, NewServer(nil), "/ping")
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
}

func TestStatsEndpoint(t *testing.T) {
	rec := get(t, NewServer(nil), "/stats")
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 without stats source, got %d", rec.Code)
	}

	rec = get(t, NewServer(stubStats{}), "/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var stats RequestStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if stats.Total != 4 {
		t.Errorf("Expected total 4, got %d", stats.Total)
	}

	if stats.SuccessRate != 0.75 {
		t.Errorf("Expected success rate 0.75, got %f", stats.SuccessRate)
	}

	if stats.ByStatus["404"] != 1 {
		t.Errorf("Expected one 404 response, got %d", stats.ByStatus["404"])
	}
}

func TestServiceHealthCheckerTimeout(t *testing.T) {
	checker := NewServiceHealthChecker("slow", &blockingProvider{})
	checker.timeout = 10 * time.Millisecond

	if err := checker.Check(context.Background()); err == nil {
		t.Error("Expected timeout error from blocking provider")
	}
}

type blockingProvider struct{}

func (blockingProvider) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
