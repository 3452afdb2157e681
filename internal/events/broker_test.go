package events

import (
	"context"
	"testing"
	"time"
)

func TestBrokerPublishSubscribe(t *testing.T) {
	b := NewBroker[string]()
	defer b.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)
	b.Publish(CacheWritten, "payload")

	select {
	case ev := <-ch:
		if ev.Type != CacheWritten || ev.Payload != "payload" {
			t.Errorf("unexpected event %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBrokerFilter(t *testing.T) {
	b := NewBroker[string]()
	defer b.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx, FilterByType[string](CacheInvalidated))
	b.Publish(CacheWritten, "skip")
	b.Publish(CacheInvalidated, "keep")

	select {
	case ev := <-ch:
		if ev.Type != CacheInvalidated {
			t.Errorf("filter leaked event %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBrokerUnsubscribeOnCancel(t *testing.T) {
	b := NewBroker[string]()
	defer b.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)
	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return // channel closed as expected
			}
		case <-deadline:
			t.Fatal("channel not closed after context cancellation")
		}
	}
}

func TestBrokerFullChannelDoesNotBlock(t *testing.T) {
	b := NewBrokerWithBuffer[int](1)
	defer b.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b.Subscribe(ctx)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			b.Publish(CacheWritten, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber channel")
	}
}

func TestBrokerShutdownStopsPublishing(t *testing.T) {
	b := NewBroker[string]()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := b.Subscribe(ctx)

	b.Shutdown()
	b.Publish(CacheWritten, "after shutdown")

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("event delivered after shutdown")
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("channel should be closed after shutdown")
	}
}
