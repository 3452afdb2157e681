package events

import (
	"context"
	"time"
)

// EventType identifies the type of event.
type EventType string

// Cache lifecycle events published by the query cache.
const (
	CacheWritten     EventType = "querycache.written"
	CacheInvalidated EventType = "querycache.invalidated"
)

// Event is a generic notification flowing through a Broker.
type Event[T any] struct {
	Type      EventType `json:"type"`
	Payload   T         `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher defines the interface for publishing events.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}

// Subscriber defines the interface for subscribing to events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context, filters ...Filter[T]) <-chan Event[T]
}

// Filter decides whether a subscriber receives an event.
type Filter[T any] func(Event[T]) bool

// FilterByType accepts only the given event types.
func FilterByType[T any](eventTypes ...EventType) Filter[T] {
	typeMap := make(map[EventType]bool, len(eventTypes))
	for _, t := range eventTypes {
		typeMap[t] = true
	}
	return func(event Event[T]) bool {
		return typeMap[event.Type]
	}
}
