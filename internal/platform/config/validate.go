package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// problems collects every violation so one failed start reports them all.
type problems []error

func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed []string) {
	p.require(slices.Contains(allowed, got), "%s must be one of %s, got %q", key, strings.Join(allowed, ", "), got)
}

// Validate reports every invalid setting, joined into one error. Messages name
// the dotted config key.
func (c *Config) Validate() error {
	var p problems

	p.require(c.Server.Port >= 1 && c.Server.Port <= 65535, "server.port must be between 1 and 65535, got %d", c.Server.Port)
	p.require(c.Server.ReadTimeout > 0, "server.read_timeout must be positive")
	p.require(c.Server.WriteTimeout > 0, "server.write_timeout must be positive")

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	c.Mongo.validate(&p)

	cb := c.Store.CircuitBreaker
	p.require(cb.MaxFailures >= 1, "store.circuit_breaker.max_failures must be >= 1, got %d", cb.MaxFailures)
	p.require(cb.Timeout > 0, "store.circuit_breaker.timeout must be positive")
	p.require(cb.HalfOpenLimit >= 0, "store.circuit_breaker.half_open_limit must not be negative, got %d", cb.HalfOpenLimit)

	rl := c.RateLimit
	p.require(rl.RequestsPerSecond >= 0, "rate_limit.requests_per_second must not be negative, got %g", rl.RequestsPerSecond)
	p.require(rl.RequestsPerSecond <= 0 || rl.Burst >= 1, "rate_limit.burst must be >= 1 when rate limiting is enabled, got %d", rl.Burst)

	p.require(c.Health.CheckTimeout >= 0, "health.check_timeout must not be negative")

	if c.Telemetry.Enabled {
		p.oneOf("telemetry.exporter", c.Telemetry.Exporter, exporters)
		p.require(c.Telemetry.Exporter != "otlp" || c.Telemetry.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
	}

	return errors.Join(p...)
}

// validate parses the URI with the driver's own parser so a typo fails at
// startup rather than on the first query. SRV URIs are resolved here. The URI is left out of messages
// because it may carry credentials.
func (m *MongoConfig) validate(p *problems) {
	if _, err := connstring.ParseAndValidate(m.URI); err != nil {
		*p = append(*p, fmt.Errorf("mongo.uri is not a valid connection string: %w", err))
	}
	p.require(m.Database != "", "mongo.database must not be empty")
	p.require(m.Collection != "", "mongo.collection must not be empty")
	p.require(m.ConnectTimeout > 0, "mongo.connect_timeout must be positive")
	p.require(m.OperationTimeout > 0, "mongo.operation_timeout must be positive")
	p.require(m.MaxPoolSize >= 1, "mongo.max_pool_size must be >= 1")
}
