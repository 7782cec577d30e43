// Package guarded decorates a [ports.ListStore] with a circuit breaker,
// OpenTelemetry spans, and store operation metrics.
//
// Each call passes through:
//
//	Circuit Breaker → OTEL Span → wrapped ListStore
//
// Calls are never retried. Toggling an item is not idempotent, so replaying
// a command whose reply was lost could flip the flag twice.
//
// Construction:
//
//	store := guarded.New(mongoStore, &cfg.Store, metrics, logger)
package guarded

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todolist"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

// Compile-time check that Store implements ports.ListStore.
var _ ports.ListStore = (*Store)(nil)

const (
	checkerName = "list-store"
	dbSystem    = "mongodb"
)

// Metric result labels.
const (
	resultSuccess     = "success"
	resultRejected    = "rejected"
	resultError       = "error"
	resultCircuitOpen = "circuit_open"
	resultCanceled    = "canceled"
)

// Store guards every call to the wrapped ListStore.
type Store struct {
	next    ports.ListStore
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New wraps next with a circuit breaker configured from cfg. If metrics is
// nil, metric recording is skipped. A nil logger discards output.
func New(next ports.ListStore, cfg *config.StoreConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        checkerName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			if metrics != nil {
				metrics.StoreBreakerTransitions.Add(context.Background(), 1, metric.WithAttributes(
					telemetry.AttrBreaker.String(name),
					telemetry.AttrStateFrom.String(from.String()),
					telemetry.AttrStateTo.String(to.String()),
				))
			}
		},
	})

	return &Store{
		next:    next,
		breaker: cb,
		metrics: metrics,
		logger:  logger,
	}
}

// ListSummaries guards issuing the query. Errors yielded while the caller
// ranges over the sequence do not count against the breaker.
func (s *Store) ListSummaries(ctx context.Context) (iter.Seq2[todolist.Summary, error], error) {
	return call(ctx, s, "ListSummaries", func(ctx context.Context) (iter.Seq2[todolist.Summary, error], error) {
		return s.next.ListSummaries(ctx)
	})
}

// CreateList guards inserting a new list.
func (s *Store) CreateList(ctx context.Context, name string) (string, error) {
	return call(ctx, s, "CreateList", func(ctx context.Context) (string, error) {
		return s.next.CreateList(ctx, name)
	})
}

// GetList guards fetching one list.
func (s *Store) GetList(ctx context.Context, id string) (*todolist.List, error) {
	return call(ctx, s, "GetList", func(ctx context.Context) (*todolist.List, error) {
		return s.next.GetList(ctx, id)
	})
}

// RenameList guards renaming a list.
func (s *Store) RenameList(ctx context.Context, id, name string) (*todolist.List, error) {
	return call(ctx, s, "RenameList", func(ctx context.Context) (*todolist.List, error) {
		return s.next.RenameList(ctx, id, name)
	})
}

// DeleteList guards deleting a list.
func (s *Store) DeleteList(ctx context.Context, id string) (bool, error) {
	return call(ctx, s, "DeleteList", func(ctx context.Context) (bool, error) {
		return s.next.DeleteList(ctx, id)
	})
}

// CreateItem guards appending an item.
func (s *Store) CreateItem(ctx context.Context, listID, label string) (*todolist.List, error) {
	return call(ctx, s, "CreateItem", func(ctx context.Context) (*todolist.List, error) {
		return s.next.CreateItem(ctx, listID, label)
	})
}

// ToggleItem guards flipping an item's checked flag.
func (s *Store) ToggleItem(ctx context.Context, listID, itemID string) (*todolist.List, error) {
	return call(ctx, s, "ToggleItem", func(ctx context.Context) (*todolist.List, error) {
		return s.next.ToggleItem(ctx, listID, itemID)
	})
}

// EditItem guards replacing an item label.
func (s *Store) EditItem(ctx context.Context, listID, itemID, label string) (*todolist.List, error) {
	return call(ctx, s, "EditItem", func(ctx context.Context) (*todolist.List, error) {
		return s.next.EditItem(ctx, listID, itemID, label)
	})
}

// DeleteItem guards removing an item.
func (s *Store) DeleteItem(ctx context.Context, listID, itemID string) (*todolist.List, error) {
	return call(ctx, s, "DeleteItem", func(ctx context.Context) (*todolist.List, error) {
		return s.next.DeleteItem(ctx, listID, itemID)
	})
}

// Name returns the identifier used in readiness reports.
func (s *Store) Name() string {
	return checkerName
}

// HealthCheck reports the breaker state without touching the database.
// A closed breaker is healthy. Half-open and open wrap [ports.ErrDegraded]
// so readiness shows them without failing; whether the pod can serve is
// decided by the MongoDB ping alone.
func (s *Store) HealthCheck(_ context.Context) error {
	state := s.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: %w (circuit breaker half-open)", checkerName, ports.ErrDegraded)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: %w (circuit breaker open)", checkerName, ports.ErrDegraded)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", checkerName, state)
	}
}

// call runs fn through the breaker inside a client span and records metrics.
// Breaker rejections are returned as domain.ErrUnavailable.
func call[T any](ctx context.Context, s *Store, op string, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()

	var result T
	_, err := s.breaker.Execute(func() (struct{}, error) {
		spanCtx, span := startSpan(ctx, op)
		defer span.End()

		var callErr error
		result, callErr = fn(spanCtx)
		finishSpan(span, callErr)

		return struct{}{}, callErr
	})

	s.recordMetrics(ctx, op, start, err)

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		var zero T
		return zero, fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	}
	return result, err
}

// isSuccessful tells the breaker which outcomes reflect a healthy store.
// Caller mistakes such as a missing list or an empty name are answered by
// a working database and must not trip the breaker. Neither must a client
// that hung up mid-call.
func isSuccessful(err error) bool {
	return err == nil || isCallerError(err) || isCanceled(err)
}

// isCanceled matches a request context canceled by its caller. A deadline
// is not included: a store that stops answering in time is unhealthy.
func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

func isCallerError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrInvalidID)
}

func startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("store")

	return tracer.Start(ctx, "store."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", dbSystem),
			attribute.String("db.operation", op),
		),
	)
}

func finishSpan(span trace.Span, err error) {
	if isSuccessful(err) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// recordMetrics is recorded outside the breaker so that rejections are
// captured too. Safe to call with nil metrics.
func (s *Store) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	duration := time.Since(start).Seconds()

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(dbSystem),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(resultOf(err)),
	)

	s.metrics.StoreOperationDuration.Record(ctx, duration, attrs)
	s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return resultCircuitOpen
	case isCallerError(err):
		return resultRejected
	case isCanceled(err):
		return resultCanceled
	default:
		return resultError
	}
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
