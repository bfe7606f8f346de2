package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/narwhalmedia/tracker/pkg/errors"
)

func TestNewMediaItem_Defaults(t *testing.T) {
	item, err := NewMediaItem(Draft{Title: "  Dune ", Type: MediaTypeBook})
	require.NoError(t, err)

	assert.Equal(t, "Dune", item.Title)
	assert.Equal(t, MediaTypeBook, item.Type)
	assert.Equal(t, StatusToDo, item.Status)
	assert.Zero(t, item.Rating)
	assert.Zero(t, item.Progress)
	assert.Empty(t, item.ImageURL)
}

func TestNewMediaItem_Validation(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		wantErr string
	}{
		{"empty title", Draft{Type: MediaTypeMovie}, "title is required"},
		{"blank title", Draft{Title: "   ", Type: MediaTypeMovie}, "title is required"},
		{"missing type", Draft{Title: "Dune"}, "type is required"},
		{"unknown type", Draft{Title: "Dune", Type: "Show"}, `type must be one of: Movie, Book, Game (got "Show")`},
		{"unknown status", Draft{Title: "Dune", Type: MediaTypeBook, Status: "Paused"}, "status must be one of"},
		{"rating above", Draft{Title: "Dune", Type: MediaTypeBook, Rating: 10.1}, "rating must be less than or equal to 10"},
		{"rating below", Draft{Title: "Dune", Type: MediaTypeBook, Rating: -0.1}, "rating must be greater than or equal to 0"},
		{"progress above", Draft{Title: "Dune", Type: MediaTypeBook, Progress: 101}, "progress must be less than or equal to 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMediaItem(tt.draft)
			require.Error(t, err)
			assert.True(t, pkgerrors.IsValidation(err))
			assert.Contains(t, pkgerrors.MessageOf(err), tt.wantErr)
		})
	}
}

func TestNewMediaItem_Bounds(t *testing.T) {
	for _, r := range []float64{0, 10} {
		_, err := NewMediaItem(Draft{Title: "Halo", Type: MediaTypeGame, Rating: r, Progress: r * 10})
		assert.NoError(t, err, "rating %v", r)
	}
}

func TestMediaItem_Replace(t *testing.T) {
	item := &MediaItem{Title: "Old", Type: MediaTypeMovie, Status: StatusCompleted, Rating: 7}

	require.NoError(t, item.Replace(Draft{Title: "New", Type: MediaTypeGame}))
	assert.Equal(t, "New", item.Title)
	assert.Equal(t, StatusToDo, item.Status)
	assert.Zero(t, item.Rating)

	err := item.Replace(Draft{Type: MediaTypeGame})
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, "New", item.Title)
}

func TestMediaPatch_Merge(t *testing.T) {
	item := MediaItem{Title: "Dune", Type: MediaTypeBook, Status: StatusToDo, Progress: 10}
	progress := 40.0
	status := StatusInProgress

	patch := MediaPatch{Progress: &progress, Status: &status}
	assert.False(t, patch.IsEmpty())
	assert.True(t, MediaPatch{}.IsEmpty())

	d := patch.Merge(item)
	assert.Equal(t, "Dune", d.Title)
	assert.Equal(t, MediaTypeBook, d.Type)
	assert.Equal(t, StatusInProgress, d.Status)
	assert.Equal(t, 40.0, d.Progress)
}

func TestDefaultDraft(t *testing.T) {
	d := DefaultDraft()
	assert.Equal(t, MediaTypeMovie, d.Type)
	assert.Equal(t, StatusToDo, d.Status)
	assert.Empty(t, d.Title)
}
