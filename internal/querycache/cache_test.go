package querycache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiehdog/havenmind-front/internal/events"
)

func TestCacheWriteGet(t *testing.T) {
	c := New()
	defer c.Close()

	_, ok, _ := c.Get(KeyUsage)
	assert.False(t, ok, "empty cache should report no value")

	c.Write(KeyUsage, []string{"a", "b"})
	value, ok, stale := c.Get(KeyUsage)
	require.True(t, ok)
	assert.False(t, stale)
	assert.Equal(t, []string{"a", "b"}, value)
}

func TestInvalidateKeepsLastKnownGood(t *testing.T) {
	c := New()
	defer c.Close()

	c.Write(KeyDocuments, []string{"doc-1"})
	c.Invalidate(KeyDocuments)

	value, ok, stale := c.Get(KeyDocuments)
	require.True(t, ok, "invalidation must not evict the value")
	assert.True(t, stale)
	assert.Equal(t, []string{"doc-1"}, value)

	// A fresh write clears the stale mark.
	c.Write(KeyDocuments, []string{"doc-2"})
	_, _, stale = c.Get(KeyDocuments)
	assert.False(t, stale)
}

func TestInvalidateUnknownKey(t *testing.T) {
	c := New()
	defer c.Close()

	c.Invalidate(KeyChat)
	_, ok, stale := c.Get(KeyChat)
	assert.True(t, ok)
	assert.True(t, stale)
}

func TestUpdateAtomicMerge(t *testing.T) {
	c := New()
	defer c.Close()

	c.Write(KeyChat, []int{1, 2})
	c.Update(KeyChat, func(current any, ok bool) any {
		require.True(t, ok)
		return append(current.([]int), 3)
	})

	value, _, _ := c.Get(KeyChat)
	assert.Equal(t, []int{1, 2, 3}, value)
}

func TestSubscribeFiltersByKey(t *testing.T) {
	c := New()
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := c.Subscribe(ctx, KeyDocuments)

	c.Write(KeyUsage, "ignored")
	c.Write(KeyDocuments, "seen")
	c.Invalidate(KeyDocuments)

	var got []events.Event[Change]
	deadline := time.After(time.Second)
	for len(got) < 2 {
		select {
		case ev := <-ch:
			got = append(got, ev)
		case <-deadline:
			t.Fatalf("timed out, got %d events", len(got))
		}
	}

	assert.Equal(t, events.CacheWritten, got[0].Type)
	assert.Equal(t, KeyDocuments, got[0].Payload.Key)
	assert.Equal(t, events.CacheInvalidated, got[1].Type)

	// The usage write must not have been delivered.
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestReadSlice(t *testing.T) {
	c := New()
	defer c.Close()

	c.Write(KeyProjects, []string{"maple"})

	slice, ok := ReadSlice[string](c, KeyProjects)
	require.True(t, ok)
	assert.Equal(t, []string{"maple"}, slice)

	_, ok = ReadSlice[int](c, KeyProjects)
	assert.False(t, ok, "mismatched element type should not panic")

	_, ok = ReadSlice[string](c, KeyActivity)
	assert.False(t, ok)
}
