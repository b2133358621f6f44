package telemetry

import (
	"context"
	"fmt"
	"strconv"
	"time"

	monitoring "cloud.google.com/go/monitoring/apiv3/v2"
	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	"github.com/botlist-space/dlspace/constants"
	"github.com/botlist-space/dlspace/utils"
	"google.golang.org/api/option"
	"google.golang.org/genproto/googleapis/api/metric"
	"google.golang.org/genproto/googleapis/api/monitoredres"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// timeSeriesSender 시계열 요청 하나를 전송합니다
type timeSeriesSender func(ctx context.Context, req *monitoringpb.CreateTimeSeriesRequest) error

// MetricsClient Google Cloud Monitoring 클라이언트를 래핑합니다
type MetricsClient struct {
	send      timeSeriesSender
	closer    func() error
	projectID string
	enabled   bool
}

// NewMetricsClient 새로운 MetricsClient 인스턴스를 생성합니다.
// 프로젝트가 없거나 클라이언트 생성에 실패하면 비활성 클라이언트를 반환합니다
func NewMetricsClient(ctx context.Context, projectID, credentialsJSON string) *MetricsClient {
	if projectID == "" {
		utils.Warn("Project ID not provided, telemetry disabled")
		return &MetricsClient{enabled: false}
	}

	var opts []option.ClientOption
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}

	client, err := monitoring.NewMetricClient(ctx, opts...)
	if err != nil {
		utils.Warn("Failed to create monitoring client: %v", err)
		utils.Warn("Telemetry disabled")
		return &MetricsClient{enabled: false}
	}

	utils.Info("Google Cloud Monitoring telemetry enabled for project: %s", projectID)
	return &MetricsClient{
		send: func(ctx context.Context, req *monitoringpb.CreateTimeSeriesRequest) error {
			return client.CreateTimeSeries(ctx, req)
		},
		closer:    client.Close,
		projectID: projectID,
		enabled:   true,
	}
}

// Enabled 메트릭 전송이 활성화되어 있는지 확인합니다
func (m *MetricsClient) Enabled() bool {
	return m.enabled
}

// SendRequestMetrics 요청 통계를 Google Cloud Monitoring으로 전송합니다
func (m *MetricsClient) SendRequestMetrics(ctx context.Context, snapshot RequestSnapshot) {
	if !m.enabled {
		return
	}

	now := timestamppb.New(time.Now())

	if err := m.sendInt64(ctx, "total", snapshot.Total, now, nil); err != nil {
		utils.Warn("Failed to send total requests metric: %v", err)
	}

	if err := m.sendInt64(ctx, "failures", snapshot.Failures, now, nil); err != nil {
		utils.Warn("Failed to send failed requests metric: %v", err)
	}

	if err := m.sendDouble(ctx, "latency", snapshot.AverageLatency().Seconds(), now, nil); err != nil {
		utils.Warn("Failed to send latency metric: %v", err)
	}

	if err := m.sendDouble(ctx, "success_rate", snapshot.SuccessRate(), now, nil); err != nil {
		utils.Warn("Failed to send success rate metric: %v", err)
	}

	// 상태 코드별 요청 수
	for _, status := range snapshot.Statuses() {
		labels := map[string]string{"status": strconv.Itoa(status)}
		if err := m.sendInt64(ctx, "by_status", snapshot.ByStatus[status], now, labels); err != nil {
			utils.Warn("Failed to send status %d metric: %v", status, err)
		}
	}

	utils.Debug("Request metrics sent: total=%d failures=%d", snapshot.Total, snapshot.Failures)
}

// Run 주기적으로 통계를 수집해 전송합니다. ctx가 끝나면 반환합니다
func (m *MetricsClient) Run(ctx context.Context, source *InstrumentedTransport, interval time.Duration) {
	if !m.enabled || source == nil {
		return
	}
	if interval <= 0 {
		interval = constants.TelemetryInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.SendRequestMetrics(ctx, source.Snapshot())
		}
	}
}

func (m *MetricsClient) sendInt64(ctx context.Context, name string, value int64, timestamp *timestamppb.Timestamp, labels map[string]string) error {
	return m.sendPoint(ctx, name, &monitoringpb.TypedValue{
		Value: &monitoringpb.TypedValue_Int64Value{Int64Value: value},
	}, timestamp, labels)
}

func (m *MetricsClient) sendDouble(ctx context.Context, name string, value float64, timestamp *timestamppb.Timestamp, labels map[string]string) error {
	return m.sendPoint(ctx, name, &monitoringpb.TypedValue{
		Value: &monitoringpb.TypedValue_DoubleValue{DoubleValue: value},
	}, timestamp, labels)
}

// sendPoint 라벨이 포함된 커스텀 메트릭 하나를 전송합니다
func (m *MetricsClient) sendPoint(ctx context.Context, name string, value *monitoringpb.TypedValue, timestamp *timestamppb.Timestamp, labels map[string]string) error {
	if labels == nil {
		labels = make(map[string]string)
	}

	req := &monitoringpb.CreateTimeSeriesRequest{
		Name: fmt.Sprintf("projects/%s", m.projectID),
		TimeSeries: []*monitoringpb.TimeSeries{
			{
				Metric: &metric.Metric{
					Type:   fmt.Sprintf("custom.googleapis.com/%s/%s", constants.TelemetryMetricPrefix, name),
					Labels: labels,
				},
				Resource: &monitoredres.MonitoredResource{
					Type: "generic_task",
					Labels: map[string]string{
						"project_id": m.projectID,
						"location":   "global",
						"namespace":  constants.TelemetryNamespace,
						"job":        constants.TelemetryJobName,
						"task_id":    constants.TelemetryTaskID,
					},
				},
				Points: []*monitoringpb.Point{
					{
						Interval: &monitoringpb.TimeInterval{
							EndTime: timestamp,
						},
						Value: value,
					},
				},
			},
		},
	}

	return m.send(ctx, req)
}

// Close 클라이언트를 정리합니다
func (m *MetricsClient) Close() error {
	if !m.enabled || m.closer == nil {
		return nil
	}
	return m.closer()
}
