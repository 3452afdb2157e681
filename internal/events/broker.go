package events

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const defaultBufferSize = 16

// Broker is a small type-safe publish-subscribe hub. The query cache uses
// one to tell interested surfaces that a key was written or invalidated.
// Publishing never blocks: a subscriber whose channel is full misses the
// event and is expected to re-read the cache instead.
type Broker[T any] struct {
	mu         sync.RWMutex
	subs       map[chan Event[T]][]Filter[T]
	done       chan struct{}
	bufferSize int
}

// NewBroker creates a broker with the default channel buffer size.
func NewBroker[T any]() *Broker[T] {
	return NewBrokerWithBuffer[T](defaultBufferSize)
}

// NewBrokerWithBuffer creates a broker with a custom channel buffer size.
func NewBrokerWithBuffer[T any](bufferSize int) *Broker[T] {
	return &Broker[T]{
		subs:       make(map[chan Event[T]][]Filter[T]),
		done:       make(chan struct{}),
		bufferSize: bufferSize,
	}
}

// Publish delivers an event to every subscriber whose filters accept it.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	select {
	case <-b.done:
		return
	default:
	}

	event := Event[T]{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch, filters := range b.subs {
		if !accepts(event, filters) {
			continue
		}
		select {
		case ch <- event:
		default:
			log.Debug("event channel full, dropping event", "type", eventType)
		}
	}
}

// Subscribe registers a new subscriber. The subscription ends when ctx is
// canceled; the returned channel is closed at that point.
func (b *Broker[T]) Subscribe(ctx context.Context, filters ...Filter[T]) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event[T], b.bufferSize)
	b.subs[ch] = filters

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()

	return ch
}

func (b *Broker[T]) unsubscribe(ch chan Event[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
}

// Shutdown closes all subscriber channels and stops further publishing.
func (b *Broker[T]) Shutdown() {
	select {
	case <-b.done:
		return
	default:
		close(b.done)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}

func accepts[T any](event Event[T], filters []Filter[T]) bool {
	for _, filter := range filters {
		if !filter(event) {
			return false
		}
	}
	return true
}
