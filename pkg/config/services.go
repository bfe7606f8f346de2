package config

import (
	"errors"
	"fmt"
	"time"
)

// CatalogConfig is the configuration of the catalog server.
type CatalogConfig struct {
	Service  ServiceConfig  `koanf:"service"`
	Database DatabaseConfig `koanf:"database"`
	Logger   LoggerConfig   `koanf:"logger"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	HTTP     HTTPSettings   `koanf:"http"`
	Lookup   LookupSettings `koanf:"lookup"`
	Events   EventSettings  `koanf:"events"`
}

// HTTPSettings contains REST transport settings.
type HTTPSettings struct {
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimit       int           `koanf:"rate_limit"` // requests per window per IP, 0 disables
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LookupSettings configures the metadata provider proxy.
type LookupSettings struct {
	BaseURL      string        `koanf:"base_url"`
	ImageBaseURL string        `koanf:"image_base_url"`
	APIKey       string        `koanf:"api_key"`
	Language     string        `koanf:"language"`
	Timeout      time.Duration `koanf:"timeout"`
	CacheTTL     time.Duration `koanf:"cache_ttl"` // 0 disables caching
}

// EventSettings selects the integration broker for catalog events.
type EventSettings struct {
	Broker       string   `koanf:"broker"` // none, nats, kafka
	NATSURL      string   `koanf:"nats_url"`
	StreamName   string   `koanf:"stream_name"`
	KafkaBrokers []string `koanf:"kafka_brokers"`
	KafkaTopic   string   `koanf:"kafka_topic"`
}

// Validate validates the catalog configuration
func (c *CatalogConfig) Validate() error {
	if err := validateBase(c.Service, c.Database, c.Metrics); err != nil {
		return err
	}
	if c.HTTP.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative")
	}
	if c.HTTP.RateLimit > 0 && c.HTTP.RateLimitWindow <= 0 {
		return fmt.Errorf("rate limit window must be positive")
	}
	if c.Lookup.CacheTTL < 0 {
		return fmt.Errorf("lookup cache ttl must not be negative")
	}
	switch c.Events.Broker {
	case BrokerNone, "":
	case BrokerNATS:
		if c.Events.NATSURL == "" {
			return errors.New("nats url is required when events.broker is nats")
		}
	case BrokerKafka:
		if len(c.Events.KafkaBrokers) == 0 || c.Events.KafkaTopic == "" {
			return errors.New("kafka brokers and topic are required when events.broker is kafka")
		}
	default:
		return fmt.Errorf("unsupported events broker: %q", c.Events.Broker)
	}
	return nil
}

// GetDefaultCatalogConfig returns default catalog configuration
func GetDefaultCatalogConfig() *CatalogConfig {
	return &CatalogConfig{
		Service: ServiceConfig{
			Name:        "catalog",
			Environment: "dev",
			Port:        DefaultHTTPPort,
		},
		Database: DatabaseConfig{
			Driver:          DriverSQLite,
			DSN:             "catalog.db",
			MaxConnections:  DefaultMaxConnections,
			MinConnections:  DefaultMinConnections,
			MaxConnLifetime: DefaultMaxConnLifetime,
			MaxConnIdleTime: DefaultMaxConnIdleTime,
		},
		Logger: LoggerConfig{
			Level:       "info",
			Format:      "json",
			Development: false,
			OutputPath:  "stdout",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
			Port:    DefaultTelemetryPort,
		},
		HTTP: HTTPSettings{
			CORSOrigins:     []string{"*"},
			RateLimit:       DefaultRateLimit,
			RateLimitWindow: DefaultRateLimitWindow,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Lookup: LookupSettings{
			BaseURL:      DefaultLookupBaseURL,
			ImageBaseURL: DefaultLookupImageBaseURL,
			Language:     DefaultLookupLanguage,
			Timeout:      DefaultLookupTimeout,
			CacheTTL:     DefaultLookupCacheTTL,
		},
		Events: EventSettings{
			Broker:     BrokerNone,
			NATSURL:    "nats://localhost:4222",
			StreamName: "CATALOG",
			KafkaTopic: "catalog-events",
		},
	}
}
