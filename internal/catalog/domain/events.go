package domain

import (
	"github.com/narwhalmedia/tracker/pkg/events"
)

// Catalog event types.
const (
	EventMediaCreated = "media.created"
	EventMediaUpdated = "media.updated"
	EventMediaDeleted = "media.deleted"
)

// MediaCreatedEvent is published when an item is created
type MediaCreatedEvent struct {
	events.BaseEvent
	Item MediaItem `json:"item"`
}

func NewMediaCreatedEvent(item MediaItem) *MediaCreatedEvent {
	return &MediaCreatedEvent{
		BaseEvent: events.NewAggregateEvent(EventMediaCreated, item.ID.String()),
		Item:      item,
	}
}

// MediaUpdatedEvent is published after a replace or a patch
type MediaUpdatedEvent struct {
	events.BaseEvent
	Item    MediaItem `json:"item"`
	Partial bool      `json:"partial"`
}

func NewMediaUpdatedEvent(item MediaItem, partial bool) *MediaUpdatedEvent {
	return &MediaUpdatedEvent{
		BaseEvent: events.NewAggregateEvent(EventMediaUpdated, item.ID.String()),
		Item:      item,
		Partial:   partial,
	}
}

// MediaDeletedEvent is published when an item is removed
type MediaDeletedEvent struct {
	events.BaseEvent
	Title string `json:"title"`
}

func NewMediaDeletedEvent(item MediaItem) *MediaDeletedEvent {
	return &MediaDeletedEvent{
		BaseEvent: events.NewAggregateEvent(EventMediaDeleted, item.ID.String()),
		Title:     item.Title,
	}
}
