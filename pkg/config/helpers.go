package config

import (
	"fmt"
	"os"

	gormlogger "gorm.io/gorm/logger"

	"github.com/narwhalmedia/tracker/pkg/database"
	"github.com/narwhalmedia/tracker/pkg/logger"
)

// LoadServiceConfig is a generic helper to load service configuration
func LoadServiceConfig[T Config](serviceName string, cfg T) error {
	manager := NewManager(serviceName).WithSliceKeys("http.cors_origins", "events.kafka_brokers")
	return manager.LoadConfig(cfg)
}

// MustLoadServiceConfig loads config and panics on error (for main functions)
func MustLoadServiceConfig[T Config](serviceName string, cfg T) T {
	if err := LoadServiceConfig(serviceName, cfg); err != nil {
		panic(fmt.Sprintf("failed to load %s config: %v", serviceName, err))
	}
	return cfg
}

// GetServiceVersion returns the service version from config or environment
func GetServiceVersion(cfg *ServiceConfig) string {
	if cfg.Version != "" {
		return cfg.Version
	}
	if version := os.Getenv("SERVICE_VERSION"); version != "" {
		return version
	}
	return "dev"
}

// IsProduction returns true if running in production environment
func IsProduction(cfg *ServiceConfig) bool {
	return cfg.Environment == "production" || cfg.Environment == "prod"
}

// IsDevelopment returns true if running in development environment
func IsDevelopment(cfg *ServiceConfig) bool {
	return cfg.Environment == "development" || cfg.Environment == "dev"
}

// GetListenAddress returns the formatted listen address for HTTP server
func GetListenAddress(cfg *ServiceConfig) string {
	return fmt.Sprintf(":%d", cfg.Port)
}

// GetMetricsListenAddress returns the listen address of the metrics server
func GetMetricsListenAddress(cfg *MetricsConfig) string {
	return fmt.Sprintf(":%d", cfg.Port)
}

// ToDatabaseConfig converts config to database package config
func (c DatabaseConfig) ToDatabaseConfig() *database.Config {
	logLevel := gormlogger.Warn
	if c.LogQueries {
		logLevel = gormlogger.Info
	}

	return &database.Config{
		Driver:          c.Driver,
		DSN:             c.DSN,
		MaxConnections:  c.MaxConnections,
		MinConnections:  c.MinConnections,
		MaxConnLifetime: c.MaxConnLifetime,
		MaxConnIdleTime: c.MaxConnIdleTime,
		LogLevel:        logLevel,
	}
}

// ToLoggerConfig converts config to logger package config
func (c LoggerConfig) ToLoggerConfig(serviceName string) *logger.Config {
	cfg := logger.DefaultConfig()
	if c.Development {
		cfg = logger.DevelopmentConfig()
	}
	if c.Level != "" {
		cfg.Level = c.Level
	}
	if c.Format != "" {
		cfg.Encoding = c.Format
	}
	if c.OutputPath != "" {
		cfg.OutputPaths = []string{c.OutputPath}
	}
	cfg.InitialFields = map[string]interface{}{"service": serviceName}
	return cfg
}
