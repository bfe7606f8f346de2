package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyCandidate(t *testing.T) {
	draft := Draft{
		Title:    "dune 2",
		Type:     MediaTypeBook,
		Status:   StatusInProgress,
		Progress: 40,
	}

	got := ApplyCandidate(draft, Candidate{
		Title:         "Dune: Part Two",
		PosterURL:     "https://image.tmdb.org/t/p/w500/p.jpg",
		AverageRating: 8.46,
	})

	assert.Equal(t, "Dune: Part Two", got.Title)
	assert.Equal(t, MediaTypeMovie, got.Type)
	assert.Equal(t, 8.5, got.Rating)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/p.jpg", got.ImageURL)
	assert.Equal(t, StatusInProgress, got.Status)
	assert.Equal(t, 40.0, got.Progress)
}

func TestApplyCandidate_NoPoster(t *testing.T) {
	got := ApplyCandidate(Draft{ImageURL: "old.jpg"}, Candidate{Title: "Obscure"})
	assert.Empty(t, got.ImageURL)
}

func TestRoundRating(t *testing.T) {
	assert.Equal(t, 7.3, RoundRating(7.25))
	assert.Equal(t, 10.0, RoundRating(10.04))
	assert.Equal(t, 0.0, RoundRating(-1))
	assert.Equal(t, 0.0, RoundRating(math.NaN()))
}
