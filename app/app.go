package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/botlist-space/dlspace/api"
	"github.com/botlist-space/dlspace/config"
	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/health"
	"github.com/botlist-space/dlspace/interfaces"
	"github.com/botlist-space/dlspace/legacy"
	"github.com/botlist-space/dlspace/models"
	"github.com/botlist-space/dlspace/telemetry"
	"github.com/botlist-space/dlspace/utils"
	"github.com/davecgh/go-spew/spew"
)

// Application 설정에서 클라이언트를 조립하고 요약 보고서를 출력하는 실행기입니다
type Application struct {
	config       *config.Config
	transport    *telemetry.InstrumentedTransport
	apiClient    interfaces.APIClient
	legacyClient interfaces.LegacyClient
	health       *health.Server
	metrics      *telemetry.MetricsClient
	cancel       context.CancelFunc
}

// Report 한 번의 조회 결과를 모은 요약입니다
type Report struct {
	Statistics       *models.Statistics
	LegacyStatistics *legacy.Statistics
	Bot              *models.Bot
	Server           *models.Server
}

func New() (*Application, error) {
	return NewWithConfig(config.Load())
}

// NewWithConfig 주어진 설정으로 Application을 생성합니다
func NewWithConfig(cfg *config.Config) (*Application, error) {
	app := &Application{config: cfg}

	if err := app.loadConfig(); err != nil {
		return nil, err
	}

	app.configureLogger()
	app.initializeClients()
	app.initializeHealth()

	return app, nil
}

func (app *Application) loadConfig() error {
	if app.config == nil {
		app.config = config.Load()
	}
	if err := app.config.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func (app *Application) configureLogger() {
	logger := utils.GetLogger()
	level := utils.ParseLogLevel(app.config.Logging.Level)
	if app.config.IsDebugMode() {
		level = utils.DEBUG
	}
	logger.SetLevel(level)
	logger.SetJSON(app.config.Logging.JSON)
}

func (app *Application) initializeClients() {
	cfg := app.config.API

	// 두 클라이언트가 같은 전송 계층을 공유해 통계를 한 곳에서 집계
	base := api.NewTransport(cfg.Transport, cfg.PoolSize, cfg.Timeout)
	app.transport = telemetry.NewInstrumentedTransport(base)

	app.apiClient = api.NewClient(app.transport, api.WithBaseURL(cfg.BaseURL))
	app.legacyClient = legacy.NewClient(
		app.config.Credentials.BotID,
		app.config.Credentials.BotToken,
		legacy.WithBaseURL(cfg.LegacyBaseURL),
		legacy.WithTransport(app.transport),
	)

	utils.Info("Clients initialized (transport: %s, base URL: %s)", cfg.Transport, cfg.BaseURL)
}

func (app *Application) initializeHealth() {
	app.health = health.NewServer(app.transport)
	app.health.RegisterHealthChecker(health.NewServiceHealthChecker("discordlist", app.apiClient))
}

// Start 헬스체크 서버와 메트릭 전송을 시작합니다
func (app *Application) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	app.cancel = cancel

	if app.config.Health.Enabled {
		app.health.Start(app.config.Health.Port)
	}

	if app.config.Telemetry.Enabled {
		app.metrics = telemetry.NewMetricsClient(ctx, app.config.Telemetry.ProjectID, app.config.Telemetry.CredentialsJSON)
		go app.metrics.Run(ctx, app.transport, constants.TelemetryInterval)
	}

	app.printStartupMessage()
	return nil
}

func (app *Application) printStartupMessage() {
	utils.Info("discordlist.space client v%s", constants.LibraryVersion)
	if app.config.Health.Enabled {
		utils.Info("Health check available on port %s", app.config.Health.Port)
	}
	if app.metrics != nil && app.metrics.Enabled() {
		utils.Info("Request metrics are reported every %v", constants.TelemetryInterval)
	}
}

// BuildReport 통계와 설정된 봇/서버 정보를 조회합니다.
// 레거시 통계 실패는 경고만 남기고 계속합니다
func (app *Application) BuildReport(ctx context.Context) (*Report, error) {
	report := &Report{}
	helper := utils.NewErrorHelper("report")

	stats, err := app.apiClient.GetStatistics(ctx)
	if err != nil {
		return nil, helper.WrapError(err, "통계 조회 실패")
	}
	report.Statistics = stats

	legacyStats, err := app.legacyClient.GetStatistics(ctx)
	if err != nil {
		utils.Warn("Legacy statistics unavailable, continuing without them")
		helper.LogError(err, "legacy statistics")
	} else {
		report.LegacyStatistics = legacyStats
	}

	if id := app.config.Credentials.BotID; id != "" {
		bot, err := app.apiClient.GetBot(ctx, id)
		if err != nil {
			return nil, helper.WrapError(err, "봇 조회 실패")
		}
		report.Bot = bot
	}

	if id := app.config.Credentials.ServerID; id != "" {
		server, err := app.apiClient.GetServer(ctx, id)
		if err != nil {
			return nil, helper.WrapError(err, "서버 조회 실패")
		}
		report.Server = server
	}

	return report, nil
}

func (app *Application) printReport(report *Report) {
	utils.Info("discordlist.space: %d bots, %d servers, %d users",
		report.Statistics.Bots, report.Statistics.Servers, report.Statistics.Users)

	if report.LegacyStatistics != nil {
		utils.Info("botlist.space: %d bots (%d approved), %d servers, %d users",
			report.LegacyStatistics.Bots.Total, report.LegacyStatistics.Bots.Approved,
			report.LegacyStatistics.Servers, report.LegacyStatistics.Users)
	}

	if report.Bot != nil {
		utils.Info("Bot %s: %d servers, updated %s", report.Bot.Tag(), serverCount(report.Bot), utils.FormatMillis(report.Bot.UpdatedAt))
	} else if app.config.Credentials.BotID != "" {
		utils.Warn("Bot %s not found", app.config.Credentials.BotID)
	}

	if report.Server != nil {
		utils.Info("Server %s: %d reviews, listed since %s", report.Server.Name, report.Server.Reviews.Count,
			utils.FormatDate(utils.FromMillis(report.Server.CreatedAt)))
	} else if app.config.Credentials.ServerID != "" {
		utils.Warn("Server %s not found", app.config.Credentials.ServerID)
	}

	if app.config.IsDebugMode() {
		utils.Debug("Report:\n%s", spew.Sdump(report))
	}
}

func serverCount(bot *models.Bot) int {
	if bot.ServerCount == nil {
		return 0
	}
	return *bot.ServerCount
}

func (app *Application) Run() error {
	if err := app.Start(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), app.config.API.Timeout)
	report, err := app.BuildReport(ctx)
	cancel()
	if err != nil {
		_ = app.Stop()
		return err
	}
	app.printReport(report)

	// 상주할 서비스가 없으면 바로 종료
	if !app.config.Health.Enabled && !app.config.Telemetry.Enabled {
		return app.Stop()
	}

	// 종료 신호 대기
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return app.Stop()
}

func (app *Application) Stop() error {
	utils.Info("Shutting down...")

	if app.cancel != nil {
		app.cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if app.health != nil {
		if err := app.health.Shutdown(ctx); err != nil {
			utils.Warn("Failed to stop health server: %v", err)
		}
	}

	if app.metrics != nil {
		// 종료 직전 마지막 통계 전송
		app.metrics.SendRequestMetrics(ctx, app.transport.Snapshot())
		if err := app.metrics.Close(); err != nil {
			utils.Warn("Failed to close metrics client: %v", err)
		}
	}

	snapshot := app.transport.Snapshot()
	utils.Info("Requests: %d total, %d failed", snapshot.Total, snapshot.Failures)
	return nil
}
