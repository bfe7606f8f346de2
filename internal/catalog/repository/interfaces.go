package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
)

// MediaStore persists media items. Implementations map missing records
// to NotFound and driver failures to Store errors.
type MediaStore interface {
	// Create persists item, assigning a new id when item.ID is nil.
	Create(ctx context.Context, item *domain.MediaItem) error
	Get(ctx context.Context, id uuid.UUID) (*domain.MediaItem, error)
	// List returns every item, newest createdAt first.
	List(ctx context.Context) ([]domain.MediaItem, error)
	// Update overwrites an existing record; it never inserts.
	Update(ctx context.Context, item *domain.MediaItem) error
	Delete(ctx context.Context, id uuid.UUID) error

	Ping(ctx context.Context) error
	Close() error
}
