package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness reports that the process is up. It never consults dependencies so
// a MongoDB outage does not get the pod restarted.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: dto.HealthOK})
}

// Readiness runs every registered check and answers 503 when any of them
// fails. A check that ran out of time is reported as timed_out. A check that
// wraps [ports.ErrDegraded] is reported as degraded and leaves the pod ready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())
	logger := logging.FromContext(r.Context())

	resp := dto.HealthResponse{
		Status: dto.HealthReady,
		Checks: make(map[string]dto.CheckResult, len(results)),
	}
	for name, err := range results {
		switch {
		case err == nil:
			resp.Checks[name] = dto.CheckResult{Status: dto.HealthOK}
			continue
		case errors.Is(err, ports.ErrDegraded):
			resp.Checks[name] = dto.CheckResult{Status: dto.HealthDegraded, Error: err.Error()}
			logger.InfoContext(r.Context(), "readiness check degraded",
				slog.String("check", name),
				slog.Any("error", err),
			)
			continue
		case errors.Is(err, context.DeadlineExceeded):
			resp.Checks[name] = dto.CheckResult{Status: dto.HealthTimedOut, Error: err.Error()}
		default:
			resp.Checks[name] = dto.CheckResult{Status: dto.HealthNotReady, Error: err.Error()}
		}
		resp.Status = dto.HealthNotReady
		logger.WarnContext(r.Context(), "readiness check failed",
			slog.String("check", name),
			slog.Any("error", err),
		)
	}

	code := http.StatusOK
	if resp.Status != dto.HealthReady {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, code, resp)
}
