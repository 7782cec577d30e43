// Command server runs the to-do list API. APP_PROFILE selects the config
// profile; SIGINT or SIGTERM drains in-flight requests before MongoDB and the
// telemetry exporters are released.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-todolist-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/store/guarded"
	"github.com/jsamuelsen11/go-todolist-service/internal/adapters/store/mongodb"
	"github.com/jsamuelsen11/go-todolist-service/internal/app"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/config"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/database"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/health"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todolist-service/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	releaseTimeout        = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// releaser undoes one startup step. Releasers run in reverse order of
// acquisition, each with its own deadline.
type releaser struct {
	name string
	fn   func(context.Context) error
}

type releasers []releaser

func (rs *releasers) push(name string, fn func(context.Context) error) {
	*rs = append(*rs, releaser{name: name, fn: fn})
}

func (rs releasers) release(logger *slog.Logger) {
	for i := len(rs) - 1; i >= 0; i-- {
		ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		if err := rs[i].fn(ctx); err != nil {
			logger.Error("release failed", slog.String("resource", rs[i].name), slog.Any("error", err))
		}
		cancel()
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var held releasers
	defer func() { held.release(logger) }()

	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	held.push("telemetry", providers.Shutdown)

	// Fails fast when MongoDB is unreachable so the orchestrator retries.
	mongoClient, err := database.Connect(ctx, &cfg.Mongo, logger)
	if err != nil {
		return fmt.Errorf("connecting to mongodb: %w", err)
	}
	held.push("mongodb", mongoClient.Disconnect)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	do.ProvideValue(injector, mongoClient)
	registerDependencies(injector, cfg, logger)

	// Invoking the server wires the whole graph.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Only the ping gates readiness. The breaker reports degraded next to it;
	// it closes only after real traffic succeeds.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(mongoClient)
	registry.Register(do.MustInvoke[*guarded.Store](injector))

	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Drain requests before the store and exporters are released.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	if err := <-serverErr; err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*guarded.Store, error) {
		client := do.MustInvoke[*database.Client](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		store := mongodb.NewStore(client.Collection(), mongodb.WithLogger(logger))
		return guarded.New(store, &cfg.Store, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ListStore, error) {
		return do.MustInvoke[*guarded.Store](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ListService, error) {
		store := do.MustInvoke[ports.ListStore](i)
		return app.NewListService(store, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Health.CheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ListHandler, error) {
		svc := do.MustInvoke[ports.ListService](i)
		return handlers.NewListHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		listH := do.MustInvoke[*handlers.ListHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(listH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
