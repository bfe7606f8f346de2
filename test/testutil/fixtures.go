package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
)

// BaseTime is the creation time of the first fixture item.
var BaseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// CreateTestMediaItem creates a stored-looking item created offset after BaseTime.
func CreateTestMediaItem(title string, mediaType domain.MediaType, offset time.Duration) *domain.MediaItem {
	created := BaseTime.Add(offset)
	return &domain.MediaItem{
		ID:        uuid.New(),
		Title:     title,
		Type:      mediaType,
		Status:    domain.StatusToDo,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

// SampleCatalog returns a small mixed catalog in insertion order.
func SampleCatalog() []*domain.MediaItem {
	return []*domain.MediaItem{
		CreateTestMediaItem("Batman Begins", domain.MediaTypeMovie, 0),
		CreateTestMediaItem("Dune", domain.MediaTypeBook, time.Minute),
		CreateTestMediaItem("Superman Returns", domain.MediaTypeMovie, 2*time.Minute),
		CreateTestMediaItem("Hades", domain.MediaTypeGame, 3*time.Minute),
	}
}
