package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/narwhalmedia/tracker/pkg/validation"
)

// MediaType is the kind of tracked media.
type MediaType string

const (
	MediaTypeMovie MediaType = "Movie"
	MediaTypeBook  MediaType = "Book"
	MediaTypeGame  MediaType = "Game"
)

// MediaTypes lists every media type in display order.
var MediaTypes = []MediaType{MediaTypeMovie, MediaTypeBook, MediaTypeGame}

// IsValid reports whether t is a known media type.
func (t MediaType) IsValid() bool {
	switch t {
	case MediaTypeMovie, MediaTypeBook, MediaTypeGame:
		return true
	}
	return false
}

// Status is the completion state of an item.
type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists every status in workflow order.
var Statuses = []Status{StatusToDo, StatusInProgress, StatusCompleted}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Numeric bounds of an item.
const (
	MinRating   = 0
	MaxRating   = 10
	MinProgress = 0
	MaxProgress = 100
)

func init() {
	types := make([]string, len(MediaTypes))
	for i, t := range MediaTypes {
		types[i] = string(t)
	}
	statuses := make([]string, len(Statuses))
	for i, s := range Statuses {
		statuses[i] = string(s)
	}
	validation.RegisterEnum("mediatype", types...)
	validation.RegisterEnum("mediastatus", statuses...)
}

// MediaItem is a tracked movie, book or game.
type MediaItem struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Type      MediaType `json:"type"`
	Status    Status    `json:"status"`
	Rating    float64   `json:"rating"`
	Progress  float64   `json:"progress"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Draft holds the client-editable fields of an item.
type Draft struct {
	Title    string    `json:"title" validate:"required"`
	Type     MediaType `json:"type" validate:"required,mediatype"`
	Status   Status    `json:"status" validate:"required,mediastatus"`
	Rating   float64   `json:"rating" validate:"gte=0,lte=10"`
	Progress float64   `json:"progress" validate:"gte=0,lte=100"`
	ImageURL string    `json:"imageUrl"`
}

// DefaultDraft is the draft a fresh create form starts from.
func DefaultDraft() Draft {
	return Draft{
		Type:   MediaTypeMovie,
		Status: StatusToDo,
	}
}

// DraftFromItem copies the editable fields of item.
func DraftFromItem(item MediaItem) Draft {
	return Draft{
		Title:    item.Title,
		Type:     item.Type,
		Status:   item.Status,
		Rating:   item.Rating,
		Progress: item.Progress,
		ImageURL: item.ImageURL,
	}
}

// Normalize trims the title and fills the status default.
func (d Draft) Normalize() Draft {
	d.Title = strings.TrimSpace(d.Title)
	d.ImageURL = strings.TrimSpace(d.ImageURL)
	if d.Status == "" {
		d.Status = StatusToDo
	}
	return d
}

// Validate checks d after normalization.
func (d Draft) Validate() error {
	if err := validation.ValidateStruct(d.Normalize()); err != nil {
		if verr, ok := err.(*validation.RequestValidationError); ok {
			return verr.AppError()
		}
		return err
	}
	return nil
}

// NewMediaItem builds an unsaved item from draft. The id and timestamps
// are left for the store and the service to assign.
func NewMediaItem(draft Draft) (*MediaItem, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	d := draft.Normalize()
	return &MediaItem{
		Title:    d.Title,
		Type:     d.Type,
		Status:   d.Status,
		Rating:   d.Rating,
		Progress: d.Progress,
		ImageURL: d.ImageURL,
	}, nil
}

// Replace overwrites the mutable fields of item with draft.
// Identity and timestamps are untouched.
func (item *MediaItem) Replace(draft Draft) error {
	next, err := NewMediaItem(draft)
	if err != nil {
		return err
	}
	item.Title = next.Title
	item.Type = next.Type
	item.Status = next.Status
	item.Rating = next.Rating
	item.Progress = next.Progress
	item.ImageURL = next.ImageURL
	return nil
}

// MediaPatch carries a partial update; nil fields are left as they are.
type MediaPatch struct {
	Title    *string    `json:"title,omitempty"`
	Type     *MediaType `json:"type,omitempty"`
	Status   *Status    `json:"status,omitempty"`
	Rating   *float64   `json:"rating,omitempty"`
	Progress *float64   `json:"progress,omitempty"`
	ImageURL *string    `json:"imageUrl,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p MediaPatch) IsEmpty() bool {
	return p.Title == nil && p.Type == nil && p.Status == nil &&
		p.Rating == nil && p.Progress == nil && p.ImageURL == nil
}

// Merge returns the draft obtained by applying p over item.
func (p MediaPatch) Merge(item MediaItem) Draft {
	d := DraftFromItem(item)
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.Rating != nil {
		d.Rating = *p.Rating
	}
	if p.Progress != nil {
		d.Progress = *p.Progress
	}
	if p.ImageURL != nil {
		d.ImageURL = *p.ImageURL
	}
	return d
}
