package interfaces

import (
	"context"
)

// Event represents a domain event.
type Event interface {
	// EventType returns the type of the event, e.g. "media.created"
	EventType() string

	// Timestamp returns when the event occurred (unix nanoseconds)
	Timestamp() int64

	// AggregateID returns the ID of the aggregate that produced the event
	AggregateID() string
}

// EventHandler handles events of a specific type.
type EventHandler interface {
	// Handle processes an event
	Handle(ctx context.Context, event Event) error

	// EventType returns the type of events this handler processes
	EventType() string
}

// EventBus provides in-process pub/sub for domain events.
type EventBus interface {
	// Publish delivers an event to all subscribers synchronously
	Publish(ctx context.Context, event Event) error

	// PublishAsync delivers an event on a background goroutine
	PublishAsync(ctx context.Context, event Event)

	// Subscribe registers a handler for a specific event type
	Subscribe(eventType string, handler EventHandler) error

	// Unsubscribe removes a handler for a specific event type
	Unsubscribe(eventType string, handler EventHandler) error

	// Start starts the event bus
	Start(ctx context.Context) error

	// Stop waits for in-flight async deliveries and stops the bus
	Stop() error
}
