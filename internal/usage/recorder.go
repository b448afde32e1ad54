package usage

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Observer is notified about recorded and dropped events
type Observer interface {
	UsageRecorded(action string)
	UsageDropped()
}

type nopObserver struct{}

func (nopObserver) UsageRecorded(string) {}
func (nopObserver) UsageDropped()        {}

const (
	DefaultQueueSize    = 256
	DefaultEventTimeout = 5 * time.Second
)

// AsyncRecorder writes events to a Store on a background worker so request
// handlers never wait on the database. Failures are logged, not returned.
type AsyncRecorder struct {
	store    Store
	logger   *zap.Logger
	observer Observer
	timeout  time.Duration

	queue chan Event
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

type RecorderOption func(*AsyncRecorder)

func WithObserver(o Observer) RecorderOption {
	return func(r *AsyncRecorder) {
		if o != nil {
			r.observer = o
		}
	}
}

func WithQueueSize(n int) RecorderOption {
	return func(r *AsyncRecorder) {
		if n > 0 {
			r.queue = make(chan Event, n)
		}
	}
}

func WithEventTimeout(d time.Duration) RecorderOption {
	return func(r *AsyncRecorder) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func NewAsyncRecorder(store Store, logger *zap.Logger, opts ...RecorderOption) *AsyncRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &AsyncRecorder{
		store:    store,
		logger:   logger,
		observer: nopObserver{},
		timeout:  DefaultEventTimeout,
		queue:    make(chan Event, DefaultQueueSize),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	go r.run()
	return r
}

// Record queues an event. It never blocks; false means the event was dropped
// because the queue is full or the recorder is closed.
func (r *AsyncRecorder) Record(event Event) bool {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.observer.UsageDropped()
		return false
	}

	select {
	case r.queue <- event:
		return true
	default:
		r.observer.UsageDropped()
		r.logger.Warn("usage queue full, dropping event",
			zap.String("action", string(event.Action)),
			zap.Int64("tool_id", event.ToolID))
		return false
	}
}

func (r *AsyncRecorder) run() {
	defer close(r.done)
	for event := range r.queue {
		r.process(event)
	}
}

func (r *AsyncRecorder) process(event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.store.InsertEvent(ctx, event); err != nil {
		r.logger.Error("failed to record usage event",
			zap.String("action", string(event.Action)),
			zap.Int64("tool_id", event.ToolID),
			zap.Error(err))
		return
	}
	r.observer.UsageRecorded(string(event.Action))

	if event.Action != ActionGenerate {
		return
	}
	if err := r.store.IncrementUsage(ctx, event.ToolID); err != nil {
		r.logger.Error("failed to increment tool usage",
			zap.Int64("tool_id", event.ToolID),
			zap.Error(err))
	}
}

// Close stops accepting events and waits for the queue to drain or ctx to end
func (r *AsyncRecorder) Close(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
