package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/narwhalmedia/tracker/pkg/interfaces"
)

// Config holds SQL store connection configuration
type Config struct {
	Driver          string // sqlite or postgres
	DSN             string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	LogLevel        logger.LogLevel
}

// DefaultSQLiteConfig returns a configuration for a local SQLite file
func DefaultSQLiteConfig(path string) *Config {
	return &Config{
		Driver:          "sqlite",
		DSN:             path,
		MaxConnections:  1,
		MinConnections:  1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
		LogLevel:        logger.Warn,
	}
}

// gormWriter routes gorm's logger output through the service logger.
type gormWriter struct {
	log interfaces.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)), interfaces.String("component", "gorm"))
}

func dialector(cfg *Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.Open(cfg.DSN), nil
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported sql driver: %q", cfg.Driver)
	}
}

// NewGormDB creates a new GORM database connection
func NewGormDB(cfg *Config, log interfaces.Logger) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		gormWriter{log: log},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  cfg.LogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{
		Logger: newLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: cfg.Driver == "postgres",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	// SQLite serializes writers; an in-memory DSN is per connection.
	if cfg.Driver == "sqlite" {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.MinConnections)
	}
	sqlDB.SetConnMaxLifetime(cfg.MaxConnLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.MaxConnIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Close closes the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// RunMigrations runs all pending database migrations
func RunMigrations(db *gorm.DB, log interfaces.Logger, migrations ...MigrationEntry) error {
	return NewMigrator(db, log, migrations...).Migrate()
}

// GetPendingMigrations returns a list of migrations that haven't been applied yet
func GetPendingMigrations(db *gorm.DB, migrations ...MigrationEntry) ([]MigrationEntry, error) {
	return NewMigrator(db, nil, migrations...).GetPendingMigrations()
}
