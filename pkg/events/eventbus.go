package events

import (
	"context"
	"sync"

	"github.com/narwhalmedia/tracker/pkg/interfaces"
)

// InMemoryEventBus is an in-memory implementation of EventBus
type InMemoryEventBus struct {
	handlers map[string][]interfaces.EventHandler
	mu       sync.RWMutex
	logger   interfaces.Logger
	wg       sync.WaitGroup
	stopped  bool
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(logger interfaces.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		handlers: make(map[string][]interfaces.EventHandler),
		logger:   logger,
	}
}

// Publish publishes an event to all subscribers.
// Handler failures are logged and do not stop delivery to the others.
func (eb *InMemoryEventBus) Publish(ctx context.Context, event interfaces.Event) error {
	eb.mu.RLock()
	handlers := append([]interfaces.EventHandler(nil), eb.handlers[event.EventType()]...)
	wildcard := append([]interfaces.EventHandler(nil), eb.handlers[Wildcard]...)
	eb.mu.RUnlock()

	for _, handler := range append(handlers, wildcard...) {
		if err := handler.Handle(ctx, event); err != nil {
			eb.logger.Error("Event handler failed",
				interfaces.String("event_type", event.EventType()),
				interfaces.String("handler", handler.EventType()),
				interfaces.String("aggregate_id", event.AggregateID()),
				interfaces.Error(err))
		}
	}

	return nil
}

// PublishAsync publishes an event on a background goroutine. The delivery
// context keeps the caller's values but not its cancellation.
func (eb *InMemoryEventBus) PublishAsync(ctx context.Context, event interfaces.Event) {
	eb.mu.RLock()
	if eb.stopped {
		eb.mu.RUnlock()
		eb.logger.Warn("Event dropped, bus stopped",
			interfaces.String("event_type", event.EventType()))
		return
	}
	eb.wg.Add(1)
	eb.mu.RUnlock()

	go func() {
		defer eb.wg.Done()
		if err := eb.Publish(context.WithoutCancel(ctx), event); err != nil {
			eb.logger.Error("Async event publish failed",
				interfaces.String("event_type", event.EventType()),
				interfaces.Error(err))
		}
	}()
}

// Subscribe registers a handler for a specific event type.
// Subscribing to Wildcard receives every event.
func (eb *InMemoryEventBus) Subscribe(eventType string, handler interfaces.EventHandler) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.handlers[eventType] = append(eb.handlers[eventType], handler)
	eb.logger.Debug("Event handler subscribed",
		interfaces.String("event_type", eventType),
		interfaces.String("handler", handler.EventType()))

	return nil
}

// Unsubscribe removes a handler for a specific event type
func (eb *InMemoryEventBus) Unsubscribe(eventType string, handler interfaces.EventHandler) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	handlers := eb.handlers[eventType]
	for i, h := range handlers {
		if h == handler {
			eb.handlers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}

	return nil
}

// Start starts the event bus
func (eb *InMemoryEventBus) Start(ctx context.Context) error {
	eb.mu.Lock()
	eb.stopped = false
	eb.mu.Unlock()

	eb.logger.Info("Event bus started")
	return nil
}

// Stop waits for in-flight async deliveries and rejects new ones.
func (eb *InMemoryEventBus) Stop() error {
	eb.mu.Lock()
	eb.stopped = true
	eb.mu.Unlock()

	eb.wg.Wait()
	eb.logger.Info("Event bus stopped")
	return nil
}

// Drain blocks until all async deliveries issued so far have finished.
func (eb *InMemoryEventBus) Drain() {
	eb.wg.Wait()
}
