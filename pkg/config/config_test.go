package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) manager() *Manager {
	return NewManager("catalog").
		WithConfigPaths(filepath.Join(s.dir, "catalog.yaml")).
		WithSliceKeys("http.cors_origins", "events.kafka_brokers")
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg := GetDefaultCatalogConfig()
	s.Require().NoError(s.manager().LoadConfig(cfg))

	s.Equal("catalog", cfg.Service.Name)
	s.Equal(DefaultHTTPPort, cfg.Service.Port)
	s.Equal(DriverSQLite, cfg.Database.Driver)
	s.Equal(DefaultLookupCacheTTL, cfg.Lookup.CacheTTL)
	s.Equal([]string{"*"}, cfg.HTTP.CORSOrigins)
	s.Empty(cfg.Lookup.APIKey)
}

func (s *ConfigTestSuite) TestFileThenEnvPrecedence() {
	yaml := []byte(`
service:
  port: 6000
database:
  driver: bolt
  dsn: /tmp/catalog.bolt
lookup:
  language: tr-TR
  cache_ttl: 30s
`)
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "catalog.yaml"), yaml, 0o600))

	s.T().Setenv("CATALOG_SERVICE_PORT", "7000")
	s.T().Setenv("CATALOG_LOOKUP_API_KEY", "secret")
	s.T().Setenv("CATALOG_HTTP_CORS_ORIGINS", "http://localhost:5173, http://example.com")

	cfg := GetDefaultCatalogConfig()
	s.Require().NoError(s.manager().LoadConfig(cfg))

	s.Equal(7000, cfg.Service.Port)
	s.Equal(DriverBolt, cfg.Database.Driver)
	s.Equal("/tmp/catalog.bolt", cfg.Database.DSN)
	s.Equal("tr-TR", cfg.Lookup.Language)
	s.Equal("secret", cfg.Lookup.APIKey)
	s.Equal(30*time.Second, cfg.Lookup.CacheTTL)
	s.Equal([]string{"http://localhost:5173", "http://example.com"}, cfg.HTTP.CORSOrigins)
}

func (s *ConfigTestSuite) TestInvalidDriverRejected() {
	s.T().Setenv("CATALOG_DATABASE_DRIVER", "mongodb")

	err := s.manager().LoadConfig(GetDefaultCatalogConfig())
	s.Error(err)
	s.Contains(err.Error(), "unsupported database driver")
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func TestCatalogConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *CatalogConfig)
		wantErr string
	}{
		{"valid", func(c *CatalogConfig) {}, ""},
		{"bad port", func(c *CatalogConfig) { c.Service.Port = 70000 }, "invalid service port"},
		{"empty dsn", func(c *CatalogConfig) { c.Database.DSN = "" }, "dsn is required"},
		{"metrics port clash", func(c *CatalogConfig) { c.Metrics.Port = c.Service.Port }, "must differ"},
		{"nats without url", func(c *CatalogConfig) {
			c.Events.Broker = BrokerNATS
			c.Events.NATSURL = ""
		}, "nats url"},
		{"kafka without brokers", func(c *CatalogConfig) { c.Events.Broker = BrokerKafka }, "kafka brokers"},
		{"unknown broker", func(c *CatalogConfig) { c.Events.Broker = "rabbit" }, "unsupported events broker"},
		{"negative ttl", func(c *CatalogConfig) { c.Lookup.CacheTTL = -time.Second }, "cache ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultCatalogConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConversions(t *testing.T) {
	cfg := GetDefaultCatalogConfig()

	db := cfg.Database.ToDatabaseConfig()
	assert.Equal(t, DriverSQLite, db.Driver)
	assert.Equal(t, "catalog.db", db.DSN)

	lc := cfg.Logger.ToLoggerConfig("catalog")
	assert.Equal(t, "json", lc.Encoding)
	assert.Equal(t, "catalog", lc.InitialFields["service"])
	assert.Equal(t, ":5000", GetListenAddress(&cfg.Service))
}
