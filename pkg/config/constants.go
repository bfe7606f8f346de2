package config

import "time"

const (
	// Server ports.
	DefaultHTTPPort = 5000

	// Store drivers.
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverBolt     = "bolt"

	// Connection pool defaults.
	DefaultMaxConnections  = 25
	DefaultMinConnections  = 5
	DefaultMaxConnLifetime = time.Hour
	DefaultMaxConnIdleTime = 30 * time.Minute

	// Telemetry defaults.
	DefaultTelemetryPort = 2112

	// Event brokers.
	BrokerNone  = "none"
	BrokerNATS  = "nats"
	BrokerKafka = "kafka"

	// Lookup defaults.
	DefaultLookupBaseURL      = "https://api.themoviedb.org/3"
	DefaultLookupImageBaseURL = "https://image.tmdb.org/t/p/w500"
	DefaultLookupLanguage     = "en-US"
	DefaultLookupTimeout      = 10 * time.Second
	DefaultLookupCacheTTL     = 5 * time.Minute

	// HTTP defaults.
	DefaultRateLimit       = 100
	DefaultRateLimitWindow = time.Minute
	DefaultShutdownTimeout = 10 * time.Second
)
