// Package health keeps the set of dependency checks behind the readiness
// probe.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-todolist-service/internal/platform/fanout"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry runs registered checks side by side. It is safe for concurrent
// use; registration normally happens once at startup.
type Registry struct {
	mu           sync.RWMutex
	checkers     []ports.HealthChecker
	index        map[string]int
	checkTimeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each check individually. Zero leaves checks bounded
// only by the caller's context.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.checkTimeout = d }
}

func New(opts ...Option) *Registry {
	r := &Registry{index: make(map[string]int)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker. A checker whose name is already registered replaces
// the earlier one in place, so the earlier check is never run.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[name]; ok {
		r.checkers[i] = checker
		return
	}
	r.index[name] = len(r.checkers)
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check concurrently and returns the outcomes keyed by
// name. A nil value means healthy. A check that panics is reported as failed
// rather than taking the process down. The lock is released before any check
// runs.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, 0, checkers, check, fanout.WithItemTimeout(r.checkTimeout))

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = outcomes[i].Err
	}
	return results
}

func check(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
	return struct{}{}, c.HealthCheck(ctx)
}
