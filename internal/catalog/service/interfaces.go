package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
)

// MediaCatalog defines the CRUD operations on the catalog.
type MediaCatalog interface {
	List(ctx context.Context) ([]domain.MediaItem, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.MediaItem, error)
	Create(ctx context.Context, draft domain.Draft) (*domain.MediaItem, error)
	Update(ctx context.Context, id uuid.UUID, draft domain.Draft) (*domain.MediaItem, error)
	Patch(ctx context.Context, id uuid.UUID, patch domain.MediaPatch) (*domain.MediaItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Ping(ctx context.Context) error
}

// MetadataLookup searches external metadata for prefill candidates.
type MetadataLookup interface {
	Search(ctx context.Context, query string) ([]domain.Candidate, error)
}

// Provider is an external metadata source such as TMDB.
type Provider interface {
	SearchMovies(ctx context.Context, query string) ([]domain.Candidate, error)
}

var (
	_ MediaCatalog   = (*MediaService)(nil)
	_ MetadataLookup = (*LookupService)(nil)
)
