package health_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-todolist-service/internal/platform/fanout"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/health"
	"github.com/jsamuelsen11/go-todolist-service/mocks"
)

// stubChecker is a fixed-outcome checker for table tests.
type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                      { return s.name }
func (s stubChecker) HealthCheck(context.Context) error { return s.err }

var errRefused = errors.New("connection refused")

func TestCheckAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		checkers []stubChecker
		want     map[string]error
	}{
		{
			name: "no checkers",
			want: map[string]error{},
		},
		{
			name:     "all healthy",
			checkers: []stubChecker{{name: "mongodb"}, {name: "list-store"}},
			want:     map[string]error{"mongodb": nil, "list-store": nil},
		},
		{
			name:     "one failing",
			checkers: []stubChecker{{name: "mongodb", err: errRefused}, {name: "list-store"}},
			want:     map[string]error{"mongodb": errRefused, "list-store": nil},
		},
		{
			name:     "duplicate name keeps the last registration",
			checkers: []stubChecker{{name: "mongodb"}, {name: "mongodb", err: errRefused}},
			want:     map[string]error{"mongodb": errRefused},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checkers {
				r.Register(c)
			}

			got := r.CheckAll(context.Background())
			if got == nil {
				t.Fatal("CheckAll() = nil, want a non-nil map")
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("CheckAll() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegister_ReplacedCheckerIsNotRun(t *testing.T) {
	t.Parallel()

	// No HealthCheck expectation: running the replaced checker fails the test.
	replaced := mocks.NewMockHealthChecker(t)
	replaced.EXPECT().Name().Return("mongodb")

	r := health.New()
	r.Register(replaced)
	r.Register(stubChecker{name: "mongodb"})

	if got := r.CheckAll(context.Background()); got["mongodb"] != nil {
		t.Errorf("mongodb = %v, want nil from the replacement", got["mongodb"])
	}
}

func TestCheckAll_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("mongodb")
	// Skipped entirely when fanout sees the canceled context first.
	checker.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		return ctx.Err()
	}).Maybe()

	r := health.New()
	r.Register(checker)

	if got := r.CheckAll(ctx)["mongodb"]; !errors.Is(got, context.Canceled) {
		t.Errorf("mongodb = %v, want context.Canceled", got)
	}
}

func TestCheckAll_WithCheckTimeout(t *testing.T) {
	t.Parallel()

	slow := mocks.NewMockHealthChecker(t)
	slow.EXPECT().Name().Return("mongodb")
	slow.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return fmt.Errorf("ping: %w", ctx.Err())
	})

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(slow)
	r.Register(stubChecker{name: "list-store"})

	start := time.Now()
	got := r.CheckAll(context.Background())

	if !errors.Is(got["mongodb"], context.DeadlineExceeded) {
		t.Errorf("mongodb = %v, want context.DeadlineExceeded", got["mongodb"])
	}
	if got["list-store"] != nil {
		t.Errorf("list-store = %v, want nil; one slow check must not fail the others", got["list-store"])
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("CheckAll took %v, want it bounded by the check timeout", elapsed)
	}
}

// panickyChecker panics on every check.
type panickyChecker struct{}

func (panickyChecker) Name() string                      { return "list-store" }
func (panickyChecker) HealthCheck(context.Context) error { panic("nil breaker") }

func TestCheckAll_PanickingCheckFailsAlone(t *testing.T) {
	t.Parallel()

	r := health.New()
	r.Register(stubChecker{name: "mongodb"})
	r.Register(panickyChecker{})

	got := r.CheckAll(context.Background())

	var pe *fanout.PanicError
	if !errors.As(got["list-store"], &pe) {
		t.Errorf("list-store = %v, want a *fanout.PanicError", got["list-store"])
	}
	if got["mongodb"] != nil {
		t.Errorf("mongodb = %v, want nil", got["mongodb"])
	}
}

func TestCheckAll_ChecksOverlap(t *testing.T) {
	t.Parallel()

	// Each check waits for the other to start, so serial execution deadlocks.
	var started sync.WaitGroup
	started.Add(2)
	rendezvous := func(context.Context) error {
		started.Done()
		started.Wait()
		return nil
	}

	r := health.New()
	for _, name := range []string{"mongodb", "list-store"} {
		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return(name)
		c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(rendezvous)
		r.Register(c)
	}

	done := make(chan int, 1)
	go func() { done <- len(r.CheckAll(context.Background())) }()

	select {
	case n := <-done:
		if n != 2 {
			t.Errorf("CheckAll returned %d results, want 2", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("CheckAll did not return; checks appear to run serially")
	}
}

func TestRegistry_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				r.Register(stubChecker{name: fmt.Sprintf("checker-%d", i%7)})
				return
			}
			r.CheckAll(context.Background())
		}()
	}
	wg.Wait()

	if got := len(r.CheckAll(context.Background())); got > 7 {
		t.Errorf("registered %d distinct checkers, want at most 7", got)
	}
}
