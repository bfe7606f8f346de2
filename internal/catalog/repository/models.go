package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
)

// MediaItem is the GORM model for media_items. Timestamps are issued by
// the service, so GORM's automatic tracking is off.
type MediaItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(512);not null"`
	Type      string    `gorm:"type:varchar(16);not null;index"`
	Status    string    `gorm:"type:varchar(32);not null"`
	Rating    float64   `gorm:"not null"`
	Progress  float64   `gorm:"not null"`
	ImageURL  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the table name for MediaItem.
func (MediaItem) TableName() string {
	return "media_items"
}

func toModel(item *domain.MediaItem) *MediaItem {
	return &MediaItem{
		ID:        item.ID,
		Title:     item.Title,
		Type:      string(item.Type),
		Status:    string(item.Status),
		Rating:    item.Rating,
		Progress:  item.Progress,
		ImageURL:  item.ImageURL,
		CreatedAt: item.CreatedAt.UTC(),
		UpdatedAt: item.UpdatedAt.UTC(),
	}
}

func (m *MediaItem) toDomain() domain.MediaItem {
	return domain.MediaItem{
		ID:        m.ID,
		Title:     m.Title,
		Type:      domain.MediaType(m.Type),
		Status:    domain.Status(m.Status),
		Rating:    m.Rating,
		Progress:  m.Progress,
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}
