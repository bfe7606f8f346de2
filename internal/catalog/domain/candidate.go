package domain

import "math"

// Candidate is one external metadata match offered for prefill.
type Candidate struct {
	Title         string  `json:"title"`
	PosterURL     string  `json:"posterUrl"`
	AverageRating float64 `json:"averageRating"`
	ReleaseYear   int     `json:"releaseYear,omitempty"`
}

// ApplyCandidate prefills draft from c. The provider only knows movies, so
// the type is forced to Movie; status and progress are kept.
func ApplyCandidate(draft Draft, c Candidate) Draft {
	draft.Title = c.Title
	draft.Type = MediaTypeMovie
	draft.Rating = RoundRating(c.AverageRating)
	draft.ImageURL = c.PosterURL
	return draft
}

// RoundRating rounds to one decimal and clamps into the rating range.
func RoundRating(v float64) float64 {
	if math.IsNaN(v) {
		return MinRating
	}
	r := math.Round(v*10) / 10
	return math.Max(MinRating, math.Min(MaxRating, r))
}
