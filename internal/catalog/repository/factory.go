package repository

import (
	"fmt"

	"github.com/narwhalmedia/tracker/pkg/config"
	"github.com/narwhalmedia/tracker/pkg/database"
	"github.com/narwhalmedia/tracker/pkg/interfaces"
)

// Open builds the MediaStore selected by cfg.Driver. SQL stores are
// migrated before they are returned.
func Open(cfg config.DatabaseConfig, log interfaces.Logger) (MediaStore, error) {
	switch cfg.Driver {
	case config.DriverSQLite, config.DriverPostgres:
		db, err := database.NewGormDB(cfg.ToDatabaseConfig(), log)
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(db, log, Migrations()...); err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return NewGormRepository(db), nil

	case config.DriverBolt:
		db, err := database.OpenBolt(cfg.DSN, MediaBucket)
		if err != nil {
			return nil, err
		}
		return NewBoltRepository(db), nil

	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}
