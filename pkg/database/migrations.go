package database

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/narwhalmedia/tracker/pkg/interfaces"
	"github.com/narwhalmedia/tracker/pkg/logger"
)

// Migration represents an applied database migration
type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Version   string    `gorm:"uniqueIndex;not null"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

// MigrationFunc is a function that performs a migration
type MigrationFunc func(*gorm.DB) error

// MigrationEntry represents a single migration
type MigrationEntry struct {
	Version string
	Name    string
	Up      MigrationFunc
}

// Migrator handles database migrations
type Migrator struct {
	db         *gorm.DB
	log        interfaces.Logger
	migrations []MigrationEntry
}

// NewMigrator creates a new migrator instance. Entries run in version order.
func NewMigrator(db *gorm.DB, log interfaces.Logger, migrations ...MigrationEntry) *Migrator {
	if log == nil {
		log = logger.NewNoop()
	}
	sorted := append([]MigrationEntry(nil), migrations...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Version < sorted[j].Version })

	return &Migrator{
		db:         db,
		log:        log,
		migrations: sorted,
	}
}

// Migrate runs all pending migrations
func (m *Migrator) Migrate() error {
	if err := m.db.AutoMigrate(&Migration{}); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	pending, err := m.GetPendingMigrations()
	if err != nil {
		return err
	}

	for _, migration := range pending {
		m.log.Info("Running migration",
			interfaces.String("version", migration.Version),
			interfaces.String("name", migration.Name))

		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return err
			}

			return tx.Create(&Migration{
				Version:   migration.Version,
				Name:      migration.Name,
				AppliedAt: time.Now().UTC(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("failed to run migration %s: %w", migration.Version, err)
		}
	}

	return nil
}

// GetPendingMigrations returns a list of pending migrations
func (m *Migrator) GetPendingMigrations() ([]MigrationEntry, error) {
	applied := make(map[string]bool)

	if m.db.Migrator().HasTable(&Migration{}) {
		var appliedMigrations []Migration
		if err := m.db.Find(&appliedMigrations).Error; err != nil {
			return nil, fmt.Errorf("failed to get applied migrations: %w", err)
		}
		for _, migration := range appliedMigrations {
			applied[migration.Version] = true
		}
	}

	var pending []MigrationEntry
	for _, migration := range m.migrations {
		if !applied[migration.Version] {
			pending = append(pending, migration)
		}
	}

	return pending, nil
}
