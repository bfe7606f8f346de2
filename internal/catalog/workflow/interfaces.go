// Package workflow holds the client-side catalog controller and the
// create/edit modal it drives.
package workflow

import (
	"context"

	"github.com/google/uuid"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
)

// Catalog is the part of the media API the workflow consumes.
// Both the REST client and the in-process service satisfy it.
type Catalog interface {
	List(ctx context.Context) ([]domain.MediaItem, error)
	Create(ctx context.Context, draft domain.Draft) (*domain.MediaItem, error)
	Update(ctx context.Context, id uuid.UUID, draft domain.Draft) (*domain.MediaItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Lookup searches metadata candidates.
type Lookup interface {
	Search(ctx context.Context, query string) ([]domain.Candidate, error)
}
