// Package events forwards in-process catalog events to an external broker.
package events

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	pkgevents "github.com/narwhalmedia/tracker/pkg/events"
	"github.com/narwhalmedia/tracker/pkg/interfaces"
	"github.com/narwhalmedia/tracker/pkg/metrics"
)

// SubjectPrefix prefixes every forwarded subject/topic key.
const SubjectPrefix = "catalog"

// Broker is the interface for the underlying message broker
type Broker interface {
	// Publish sends data under subject. msgID is unique per event.
	Publish(ctx context.Context, subject, msgID string, data []byte) error
	Name() string
	Close() error
}

// Envelope wraps an event with metadata for transport
type Envelope struct {
	ID          string           `json:"id"`
	AggregateID string           `json:"aggregate_id"`
	EventType   string           `json:"event_type"`
	OccurredAt  time.Time        `json:"occurred_at"`
	Data        interfaces.Event `json:"data"`
}

// IntegrationForwarder republishes every bus event to a broker.
type IntegrationForwarder struct {
	broker Broker
	logger interfaces.Logger
}

// NewIntegrationForwarder creates a forwarder for broker.
func NewIntegrationForwarder(broker Broker, logger interfaces.Logger) *IntegrationForwarder {
	return &IntegrationForwarder{
		broker: broker,
		logger: logger,
	}
}

// Attach subscribes the forwarder to every event type on bus.
func (f *IntegrationForwarder) Attach(bus interfaces.EventBus) error {
	return bus.Subscribe(pkgevents.Wildcard, f)
}

// Handle publishes event to the broker.
func (f *IntegrationForwarder) Handle(ctx context.Context, event interfaces.Event) error {
	envelope := ToEnvelope(event)

	data, err := json.Marshal(envelope)
	if err != nil {
		metrics.RecordEventForwarded(f.broker.Name(), event.EventType(), err)
		return fmt.Errorf("marshal integration event: %w", err)
	}

	subject := SubjectForEvent(event.EventType())
	err = f.broker.Publish(ctx, subject, envelope.ID, data)
	metrics.RecordEventForwarded(f.broker.Name(), event.EventType(), err)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", f.broker.Name(), err)
	}

	f.logger.Debug("Event forwarded",
		interfaces.String("broker", f.broker.Name()),
		interfaces.String("subject", subject),
		interfaces.String("aggregate_id", event.AggregateID()))
	return nil
}

// EventType names the handler in bus logs.
func (f *IntegrationForwarder) EventType() string {
	return "integration." + f.broker.Name()
}

// Close closes the broker connection.
func (f *IntegrationForwarder) Close() error {
	return f.broker.Close()
}

// ToEnvelope wraps event with a fresh message id.
func ToEnvelope(event interfaces.Event) Envelope {
	return Envelope{
		ID:          uuid.NewString(),
		AggregateID: event.AggregateID(),
		EventType:   event.EventType(),
		OccurredAt:  time.Unix(0, event.Timestamp()).UTC(),
		Data:        event,
	}
}

// SubjectForEvent maps "media.created" to "catalog.media.created".
func SubjectForEvent(eventType string) string {
	return SubjectPrefix + "." + strings.Trim(eventType, ".")
}
