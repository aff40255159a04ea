// Package notify decouples notification delivery from business
// transactions with a bounded in-memory queue.
package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/ports"
)

var (
	// ErrQueueFull is returned when the message was dropped because the
	// queue is at capacity.
	ErrQueueFull = errors.New("notification queue is full")

	ErrSinkStopped = errors.New("notification sink is stopped")
)

// DefaultDeliveryTimeout bounds a single delivery to the wrapped sink.
const DefaultDeliveryTimeout = 5 * time.Second

type envelope struct {
	ctx     context.Context
	userID  kernel.UUID
	message string
}

// AsyncSink implements ports.NotificationSink. Enqueue never blocks: when
// the queue is full the message is dropped and ErrQueueFull returned.
// A single worker forwards queued messages to the wrapped sink in order.
type AsyncSink struct {
	next    ports.NotificationSink
	queue   chan envelope
	logger  *slog.Logger
	timeout time.Duration

	mu      sync.RWMutex
	stopped bool
	done    chan struct{}
	started sync.Once
}

// NewAsyncSink buffers up to size messages in front of next.
// Call Start before the first Enqueue and Stop on shutdown.
func NewAsyncSink(next ports.NotificationSink, size int, logger *slog.Logger) *AsyncSink {
	return &AsyncSink{
		next:    next,
		queue:   make(chan envelope, max(size, 1)),
		logger:  logger.With("component", "notification_sink"),
		timeout: DefaultDeliveryTimeout,
		done:    make(chan struct{}),
	}
}

// Enqueue hands the message to the worker without waiting for delivery.
// It fails when the buffer is full or the sink is stopped.
func (s *AsyncSink) Enqueue(ctx context.Context, userID kernel.UUID, message string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stopped {
		return ErrSinkStopped
	}

	// the request context ends with the request; keep its values only
	env := envelope{ctx: context.WithoutCancel(ctx), userID: userID, message: message}
	select {
	case s.queue <- env:
		return nil
	default:
		return ErrQueueFull
	}
}

// Start launches the delivery worker. Subsequent calls are no-ops.
func (s *AsyncSink) Start() {
	s.started.Do(func() {
		go s.run()
	})
}

// Stop refuses new messages and waits until the queue is drained or ctx
// expires. The sink must have been started.
func (s *AsyncSink) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		close(s.queue)
	}
	s.mu.Unlock()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *AsyncSink) run() {
	defer close(s.done)

	for env := range s.queue {
		s.deliver(env)
	}
}

func (s *AsyncSink) deliver(env envelope) {
	ctx, cancel := context.WithTimeout(env.ctx, s.timeout)
	defer cancel()

	if err := s.next.Enqueue(ctx, env.userID, env.message); err != nil {
		s.logger.ErrorContext(ctx, "notification delivery failed",
			"user_id", env.userID.String(),
			"error", err,
		)
	}
}
