package ports

import (
	"context"
	"errors"
)

// ErrDegraded marks a check outcome that is shown in the readiness body
// without failing the probe.
var ErrDegraded = errors.New("degraded")

// HealthChecker reports whether one dependency can serve traffic. The MongoDB
// client and the guarded list store both implement it.
type HealthChecker interface {
	// Name keys the checker in readiness output, e.g. "mongodb".
	Name() string

	// HealthCheck returns nil when the dependency is usable, or an error
	// wrapping ErrDegraded when it is impaired but the pod can still serve.
	// It must return promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry aggregates checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check and keys the outcomes by name.
	// A nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
