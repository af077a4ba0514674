package events

import (
	"sync"

	"github.com/go-drift/formkit/pkg/errors"
)

// Dispatcher delivers listener calls. The firing input never waits on a
// listener's result and never observes its panics.
type Dispatcher interface {
	Dispatch(call func())
}

// SyncDispatcher runs each call inline on the caller's goroutine, the way an
// event loop runs handlers to completion. A panicking listener is reported
// through pkg/errors and does not propagate.
type SyncDispatcher struct{}

// Dispatch runs call.
func (SyncDispatcher) Dispatch(call func()) {
	defer errors.Recover("events.SyncDispatcher")
	call()
}

// QueueDispatcher hands calls to a single worker goroutine through an
// unbounded FIFO, so a slow listener never blocks the input. Calls are
// never dropped and run in the order they were dispatched.
type QueueDispatcher struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []func()
	running bool
	closed  bool
	done    chan struct{}
}

// NewQueueDispatcher starts the worker goroutine.
func NewQueueDispatcher() *QueueDispatcher {
	q := &QueueDispatcher{done: make(chan struct{})}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return q
}

// Dispatch enqueues call. After Close, calls run inline.
func (q *QueueDispatcher) Dispatch(call func()) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		SyncDispatcher{}.Dispatch(call)
		return
	}
	q.queue = append(q.queue, call)
	q.mu.Unlock()
	q.cond.Broadcast()
}

// Flush blocks until every call dispatched so far has run.
func (q *QueueDispatcher) Flush() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.queue) > 0 || q.running {
		q.cond.Wait()
	}
}

// Close drains the queue and stops the worker.
func (q *QueueDispatcher) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.done
		return
	}
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
	<-q.done
}

func (q *QueueDispatcher) run() {
	defer close(q.done)
	for {
		q.mu.Lock()
		for len(q.queue) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.queue) == 0 && q.closed {
			q.mu.Unlock()
			return
		}
		call := q.queue[0]
		q.queue[0] = nil
		q.queue = q.queue[1:]
		q.running = true
		q.mu.Unlock()

		SyncDispatcher{}.Dispatch(call)

		q.mu.Lock()
		q.running = false
		q.mu.Unlock()
		q.cond.Broadcast()
	}
}
