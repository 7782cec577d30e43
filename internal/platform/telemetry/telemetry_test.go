package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/go-todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/telemetry"
)

// Tests that install global providers are not parallel.

func TestSetup_DisabledReturnsEmptyProviders(t *testing.T) {
	t.Parallel()

	p, err := telemetry.Setup(context.Background(), config.TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if p.Tracer != nil || p.Meter != nil || p.Metrics != nil {
		t.Errorf("Setup() = %+v, want empty providers when disabled", p)
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() on empty providers error = %v", err)
	}
}

func TestSetup_Stdout(t *testing.T) {
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, config.TelemetryConfig{
		Enabled:     true,
		Exporter:    telemetry.ExporterStdout,
		ServiceName: "todolist-service",
	})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	t.Cleanup(func() {
		if err := p.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown() error = %v", err)
		}
	})

	if p.Tracer == nil || p.Meter == nil || p.Metrics == nil {
		t.Fatalf("Setup() = %+v, want all providers set", p)
	}
	if otel.GetTracerProvider() != p.Tracer {
		t.Error("global tracer provider not installed")
	}
	if len(otel.GetTextMapPropagator().Fields()) == 0 {
		t.Error("global propagator has no fields, want trace context and baggage")
	}
}

func TestSetup_OTLP(t *testing.T) {
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, config.TelemetryConfig{
		Enabled:     true,
		Exporter:    telemetry.ExporterOTLP,
		Endpoint:    "http://localhost:4318",
		ServiceName: "todolist-service",
	})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	// No collector runs in unit tests, so the final flush may fail.
	t.Cleanup(func() { _ = p.Shutdown(ctx) })
}

func TestSetup_InvalidExporter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.TelemetryConfig
	}{
		{"unknown exporter", config.TelemetryConfig{Enabled: true, Exporter: "zipkin", ServiceName: "svc"}},
		{"otlp without endpoint", config.TelemetryConfig{Enabled: true, Exporter: telemetry.ExporterOTLP, ServiceName: "svc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := telemetry.Setup(context.Background(), tt.cfg); err == nil {
				t.Error("Setup() error = nil, want error")
			}
		})
	}
}

func TestInitMeter_UnsupportedExporter(t *testing.T) {
	t.Parallel()

	if _, err := telemetry.InitMeter(context.Background(), "svc", "invalid", ""); err == nil {
		t.Fatal("InitMeter() error = nil, want error for unsupported exporter")
	}
}

func TestNewMetrics_RecordsBreakerTransitions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	m, err := telemetry.NewMetrics(mp, "todolist-service")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	m.StoreBreakerTransitions.Add(ctx, 1)
	m.StoreBreakerTransitions.Add(ctx, 1)
	m.ServerRequestTotal.Add(ctx, 1)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if sum, ok := md.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					got[md.Name] += dp.Value
				}
			}
		}
	}

	if got["store.circuit_breaker.transitions"] != 2 {
		t.Errorf("transitions = %d, want 2", got["store.circuit_breaker.transitions"])
	}
	if got["http.server.request.total"] != 1 {
		t.Errorf("requests = %d, want 1", got["http.server.request.total"])
	}
}
