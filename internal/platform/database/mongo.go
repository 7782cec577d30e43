// Package database owns the MongoDB client lifecycle: connecting with the
// configured pool and timeouts, exposing the list collection, reporting
// readiness, and disconnecting on shutdown.
//
// Construction:
//
//	client, err := database.Connect(ctx, &cfg.Mongo, logger)
//	defer client.Disconnect(ctx)
//	coll := client.Collection()
package database

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jsamuelsen11/go-todolist-service/internal/platform/config"
)

// checkerName identifies the MongoDB dependency in readiness reports.
const checkerName = "mongodb"

// Client wraps a connected *mongo.Client together with the database and
// collection names it was configured for.
type Client struct {
	client     *mongo.Client
	database   string
	collection string
	logger     *slog.Logger
}

// Connect dials MongoDB and pings the primary once so that a misconfigured
// URI fails at startup instead of on the first request.
func Connect(ctx context.Context, cfg *config.MongoConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(cfg.Database).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)
	if cfg.OperationTimeout > 0 {
		opts.SetTimeout(cfg.OperationTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	logger.Info("connected to mongodb",
		slog.String("database", cfg.Database),
		slog.String("collection", cfg.Collection),
	)

	return &Client{
		client:     client,
		database:   cfg.Database,
		collection: cfg.Collection,
		logger:     logger,
	}, nil
}

// Collection returns the collection that holds list documents.
func (c *Client) Collection() *mongo.Collection {
	return c.client.Database(c.database).Collection(c.collection)
}

// Name returns the dependency identifier used in readiness reports.
func (c *Client) Name() string {
	return checkerName
}

// HealthCheck pings the primary. It satisfies ports.HealthChecker.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%s: %w", checkerName, err)
	}
	return nil
}

// Disconnect closes all pooled connections.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting from mongodb: %w", err)
	}
	c.logger.Info("disconnected from mongodb")
	return nil
}
