package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/botlist-space/dlspace/config"
	"github.com/botlist-space/dlspace/constants"
)

const testBotID = "123456789012345678"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v2/statistics":
			_, _ = w.Write([]byte(`{"bots":120,"servers":45,"users":3000}`))
		case "/v2/bots/" + testBotID:
			_, _ = w.Write([]byte(`{"id":"` + testBotID + `","username":"GuessThatNumber","discriminator":"1234","serverCount":250,"reviews":{"count":2,"averageRating":4.5}}`))
		case "/legacy/stats":
			_, _ = w.Write([]byte(`{"total_bots":10,"approved_bots":7,"unapproved_bots":3,"servers":4,"users":50,"tags":8}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"code":404,"message":"Not found"}`))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		API: config.APIConfig{
			BaseURL:       baseURL + "/v2",
			LegacyBaseURL: baseURL + "/legacy",
			Timeout:       constants.TestAPITimeout,
			Transport:     constants.TransportHTTP,
			PoolSize:      1,
		},
		Logging: config.LoggingConfig{Level: constants.LogLevelInfo},
		Health:  config.HealthConfig{Port: constants.DefaultHTTPPort},
	}
}

func TestApplication_New(t *testing.T) {
	t.Run("Successful application creation", func(t *testing.T) {
		app, err := NewWithConfig(testConfig("http://localhost"))

		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}

		if app.apiClient == nil {
			t.Error("Expected non-nil API client")
		}

		if app.legacyClient == nil {
			t.Error("Expected non-nil legacy client")
		}

		if app.transport == nil {
			t.Error("Expected non-nil instrumented transport")
		}

		if app.health == nil {
			t.Error("Expected non-nil health server")
		}
	})

	t.Run("Invalid config should fail", func(t *testing.T) {
		cfg := testConfig("http://localhost")
		cfg.API.Transport = "grpc"

		app, err := NewWithConfig(cfg)

		if err == nil {
			t.Error("Expected error for unknown transport")
		}

		if app != nil {
			t.Error("Expected nil application on error")
		}

		if err != nil && !strings.Contains(err.Error(), "API.Transport") {
			t.Errorf("Expected error to name API.Transport, got: %v", err)
		}
	})
}

func TestBuildReport(t *testing.T) {
	server := newTestServer(t)
	cfg := testConfig(server.URL)
	cfg.Credentials.BotID = testBotID

	app, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	report, err := app.BuildReport(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if report.Statistics.Bots != 120 {
		t.Errorf("Expected 120 bots, got %d", report.Statistics.Bots)
	}

	if report.LegacyStatistics == nil || report.LegacyStatistics.Bots.Approved != 7 {
		t.Errorf("Expected legacy statistics with 7 approved bots, got %+v", report.LegacyStatistics)
	}

	if report.Bot == nil || serverCount(report.Bot) != 250 {
		t.Errorf("Expected bot with 250 servers, got %+v", report.Bot)
	}

	if report.Server != nil {
		t.Error("Expected no server without a configured server id")
	}

	// 세 요청 모두 같은 전송 계층을 거침
	snapshot := app.transport.Snapshot()
	if snapshot.Total != 3 {
		t.Errorf("Expected 3 recorded requests, got %d", snapshot.Total)
	}

	app.printReport(report)
}

func TestBuildReportMissingServer(t *testing.T) {
	server := newTestServer(t)
	cfg := testConfig(server.URL)
	cfg.Credentials.ServerID = "876543210987654321"

	app, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	report, err := app.BuildReport(context.Background())
	if err != nil {
		t.Fatalf("Expected no error for missing server, got: %v", err)
	}

	if report.Server != nil {
		t.Errorf("Expected nil server, got %+v", report.Server)
	}

	snapshot := app.transport.Snapshot()
	if snapshot.ByStatus[http.StatusNotFound] != 1 {
		t.Errorf("Expected one 404 response, got %d", snapshot.ByStatus[http.StatusNotFound])
	}
}

func TestBuildReportStatisticsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	app, err := NewWithConfig(testConfig(server.URL))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := app.BuildReport(context.Background()); err == nil {
		t.Error("Expected error when statistics are unavailable")
	}
}

func TestApplication_StartStop(t *testing.T) {
	app, err := NewWithConfig(testConfig("http://localhost"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if err := app.Start(); err != nil {
		t.Fatalf("Expected no error on start, got: %v", err)
	}

	if err := app.Stop(); err != nil {
		t.Errorf("Expected no error on stop, got: %v", err)
	}
}
