package events_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/formkit/pkg/events"
	formtest "github.com/go-drift/formkit/pkg/testing"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "update-stable", events.UpdateStable.String())
	assert.Equal(t, "unknown", events.Type(42).String())

	for _, typ := range events.Types() {
		parsed, ok := events.ParseType(typ.String())
		require.True(t, ok)
		assert.Equal(t, typ, parsed)
	}
	_, ok := events.ParseType("change")
	assert.False(t, ok)
}

func TestListenersOrderAndRemove(t *testing.T) {
	var ls events.Listeners[int]
	var calls []string

	ls.Add(events.Update, func(events.Event[int]) { calls = append(calls, "first") })
	remove := ls.Add(events.Update, func(events.Event[int]) { calls = append(calls, "second") })
	ls.Add(events.Update, func(events.Event[int]) { calls = append(calls, "third") })
	ls.Add(events.Blur, func(events.Event[int]) { calls = append(calls, "blur") })

	for _, fn := range ls.Snapshot(events.Update) {
		fn(events.Event[int]{})
	}
	assert.Equal(t, []string{"first", "second", "third"}, calls)

	remove()
	remove()
	assert.Equal(t, 2, ls.Count(events.Update))
	assert.Equal(t, 1, ls.Count(events.Blur))

	ls.Clear()
	assert.Nil(t, ls.Snapshot(events.Update))
}

func TestSyncDispatcherRecoversPanics(t *testing.T) {
	rec := formtest.CaptureErrors(t)

	ran := false
	events.SyncDispatcher{}.Dispatch(func() { panic("listener bug") })
	events.SyncDispatcher{}.Dispatch(func() { ran = true })

	assert.True(t, ran)
	require.Len(t, rec.Panics(), 1)
	assert.Equal(t, "listener bug", rec.Panics()[0].Value)
}

func TestQueueDispatcherKeepsOrder(t *testing.T) {
	q := events.NewQueueDispatcher()
	defer q.Close()

	var mu sync.Mutex
	var got []int
	for i := 0; i < 100; i++ {
		i := i
		q.Dispatch(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		})
	}
	q.Flush()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestQueueDispatcherDoesNotBlockCaller(t *testing.T) {
	q := events.NewQueueDispatcher()
	defer q.Close()

	release := make(chan struct{})
	q.Dispatch(func() { <-release })

	done := make(chan struct{})
	go func() {
		q.Dispatch(func() {})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on a slow listener")
	}
	close(release)
	q.Flush()
}

func TestQueueDispatcherAfterClose(t *testing.T) {
	q := events.NewQueueDispatcher()
	q.Close()
	q.Close()

	ran := false
	q.Dispatch(func() { ran = true })
	assert.True(t, ran)
}
