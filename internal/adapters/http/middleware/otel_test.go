package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/telemetry"
)

// These tests replace the global providers and must not run in parallel.

func installTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	return exporter
}

// onlySpan serves one request and returns the single span it produced.
func onlySpan(t *testing.T, exporter *tracetest.InMemoryExporter, h http.Handler, req *http.Request) tracetest.SpanStub {
	t.Helper()

	h.ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	return spans[0]
}

func spanAttrs(s tracetest.SpanStub) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(s.Attributes))
	for _, kv := range s.Attributes {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestOpenTelemetry_SpanName(t *testing.T) {
	tests := []struct {
		name    string
		handler func(http.Handler) http.Handler
		path    string
		want    string
	}{
		{
			name:    "outside a router",
			handler: func(h http.Handler) http.Handler { return middleware.OpenTelemetry(nil)(h) },
			path:    "/api/lists/65f0c0ffee0000000000abcd",
			want:    "HTTP GET",
		},
		{
			name: "chi route pattern",
			handler: func(h http.Handler) http.Handler {
				r := chi.NewRouter()
				r.Use(middleware.OpenTelemetry(nil))
				r.Get("/api/lists/{id}", h.ServeHTTP)
				return r
			},
			path: "/api/lists/65f0c0ffee0000000000abcd",
			want: "HTTP GET /api/lists/{id}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := installTracer(t)

			h := tt.handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			span := onlySpan(t, exporter, h, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))
			if span.Name != tt.want {
				t.Errorf("span name = %q, want %q", span.Name, tt.want)
			}
		})
	}
}

func TestOpenTelemetry_StatusAndErrorCode(t *testing.T) {
	tests := []struct {
		status   int
		wantCode codes.Code
	}{
		{http.StatusOK, codes.Unset},
		{http.StatusNotFound, codes.Unset},
		{http.StatusServiceUnavailable, codes.Error},
		{http.StatusInternalServerError, codes.Error},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			exporter := installTracer(t)

			h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			span := onlySpan(t, exporter, h, httptest.NewRequest(http.MethodPost, "/api/lists", http.NoBody))

			attrs := spanAttrs(span)
			if got := attrs["http.status_code"].AsInt64(); got != int64(tt.status) {
				t.Errorf("http.status_code = %d, want %d", got, tt.status)
			}
			if got := attrs["http.method"].AsString(); got != http.MethodPost {
				t.Errorf("http.method = %q, want POST", got)
			}
			if span.Status.Code != tt.wantCode {
				t.Errorf("span status = %v, want %v", span.Status.Code, tt.wantCode)
			}
		})
	}
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := installTracer(t)

	const traceparent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"
	req := httptest.NewRequest(http.MethodGet, "/api/lists", http.NoBody)
	req.Header.Set("Traceparent", traceparent)

	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	span := onlySpan(t, exporter, h, req)

	if got := span.SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace id = %s, want the caller's", got)
	}
	if got := span.Parent.SpanID().String(); got != "00f067aa0ba902b7" {
		t.Errorf("parent span id = %s, want the caller's", got)
	}
}

func TestOpenTelemetry_TagsRequestID(t *testing.T) {
	exporter := installTracer(t)

	h := middleware.RequestID()(middleware.OpenTelemetry(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})))
	req := httptest.NewRequest(http.MethodGet, "/api/lists", http.NoBody)
	req.Header.Set("X-Request-Id", "req-123")

	span := onlySpan(t, exporter, h, req)
	if got := spanAttrs(span)["request.id"].AsString(); got != "req-123" {
		t.Errorf("request.id = %q, want req-123", got)
	}
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	installTracer(t)

	rec := httptest.NewRecorder()
	middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusAccepted)
	}
}

// requestSeries serves the given paths and returns the request counter points.
func requestSeries(t *testing.T, h func(*telemetry.Metrics) http.Handler, paths ...string) []metricdata.DataPoint[int64] {
	t.Helper()
	installTracer(t)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })

	metrics, err := telemetry.NewMetrics(mp, "test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	handler := h(metrics)
	for _, p := range paths {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(t.Context(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var points []metricdata.DataPoint[int64]
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == "http.server.request.total" {
				points = append(points, sum.DataPoints...)
			}
		}
	}
	return points
}

func TestOpenTelemetry_MetricsShareRouteSeries(t *testing.T) {
	points := requestSeries(t, func(m *telemetry.Metrics) http.Handler {
		r := chi.NewRouter()
		r.Use(middleware.OpenTelemetry(m))
		r.Get("/api/lists/{id}", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		return r
	}, "/api/lists/65f0c0ffee0000000000abcd", "/api/lists/65f0c0ffee0000000000abce")

	if len(points) != 1 {
		t.Fatalf("got %d request series, want 1 shared by both list IDs", len(points))
	}
	if points[0].Value != 2 {
		t.Errorf("request count = %d, want 2", points[0].Value)
	}
	if route, _ := points[0].Attributes.Value(telemetry.AttrHTTPRoute); route.AsString() != "/api/lists/{id}" {
		t.Errorf("http.route = %q, want /api/lists/{id}", route.AsString())
	}
	if result, _ := points[0].Attributes.Value(telemetry.AttrResult); result.AsString() != "error" {
		t.Errorf("result = %q, want error for 404", result.AsString())
	}
}

func TestOpenTelemetry_UnroutedRequestsShareOneSeries(t *testing.T) {
	points := requestSeries(t, func(m *telemetry.Metrics) http.Handler {
		return middleware.OpenTelemetry(m)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	}, "/a", "/b/c")

	if len(points) != 1 {
		t.Fatalf("got %d series, want 1", len(points))
	}
	if route, _ := points[0].Attributes.Value(telemetry.AttrHTTPRoute); route.AsString() != "unmatched" {
		t.Errorf("http.route = %q, want unmatched", route.AsString())
	}
}
