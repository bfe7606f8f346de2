package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/narwhalmedia/tracker/pkg/database"
)

// Migrations returns the versioned schema of the SQL store.
func Migrations() []database.MigrationEntry {
	return []database.MigrationEntry{
		{
			Version: "20240601_001",
			Name:    "Create media_items",
			Up:      migration001CreateMediaItems,
		},
		{
			Version: "20240601_002",
			Name:    "Index media_items by creation time",
			Up:      migration002IndexCreatedAt,
		},
	}
}

func migration001CreateMediaItems(tx *gorm.DB) error {
	if err := tx.AutoMigrate(&MediaItem{}); err != nil {
		return fmt.Errorf("failed to migrate media items: %w", err)
	}
	return nil
}

func migration002IndexCreatedAt(tx *gorm.DB) error {
	if err := tx.Exec("CREATE INDEX IF NOT EXISTS idx_media_items_created_at ON media_items (created_at)").Error; err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	return nil
}
