package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

type Event interface {
	EventType() string
	EventID() string
	OccurredAt() time.Time
	Payload() interface{}
}

type BaseEvent struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) EventID() string {
	return e.ID
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

func (e BaseEvent) Payload() interface{} {
	return e.Data
}

type Handler func(ctx context.Context, event Event) error

// EventBus is a small in-process pub/sub used for fan-out that must not
// affect the request path: the synchronous activity append stays on the
// request, the bus only notifies observers afterwards.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *slog.Logger
}

func NewEventBus(logger *slog.Logger) *EventBus {
	return &EventBus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

func (b *EventBus) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.logger.Debug("handler subscribed", "event_type", eventType, "handler_count", len(b.handlers[eventType]))
}

// Publish delivers the event to all subscribed handlers. Handler errors
// are logged and collected but do not stop delivery to the rest.
func (b *EventBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.EventType()]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.logger.Debug("no handlers for event", "event_type", event.EventType(), "event_id", event.EventID())
		return nil
	}

	var firstErr error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			b.logger.Error("event handler failed",
				"event_type", event.EventType(),
				"event_id", event.EventID(),
				"error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("handler for %s: %w", event.EventType(), err)
			}
		}
	}

	return firstErr
}

// PublishAsync fires the event on a new goroutine; failures are only logged.
func (b *EventBus) PublishAsync(ctx context.Context, event Event) {
	go func() {
		if err := b.Publish(ctx, event); err != nil {
			b.logger.Error("async event publish failed",
				"event_type", event.EventType(),
				"event_id", event.EventID(),
				"error", err)
		}
	}()
}
