// Package worker delivers queued notifications in the background.
package worker

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/okian/giftmatch/internal/adapters/mq/queue"
	"github.com/okian/giftmatch/pkg/logger"
	"github.com/okian/giftmatch/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerCount  = 2
	defaultSendTimeout  = 10 * time.Second
	poolShutdownTimeout = 30 * time.Second
)

// Message abstracts what workers read off the queue.
type Message = queue.Message

// Notifier delivers a single notification.
type Notifier interface {
	Notify(ctx context.Context, m Message) error
}

// Queue defines how workers receive messages.
type Queue interface {
	Dequeue() <-chan Message
}

// Worker delivers messages using the provided Notifier.
type Worker interface {
	// Run consumes messages until the queue is closed and drained or ctx
	// is canceled.
	Run(ctx context.Context)

	// Shutdown waits for Run to return.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker implements Worker for delivering notifications.
type InMemoryWorker struct {
	queue       Queue
	notifier    Notifier
	name        string
	sendTimeout time.Duration

	done chan struct{}

	base   logger.Logger
	logger logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options.
func NewInMemoryWorker(q Queue, n Notifier, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:       q,
		notifier:    n,
		name:        "worker",
		sendTimeout: defaultSendTimeout,
		done:        make(chan struct{}),
		base:        logger.Nop(),
	}

	for _, opt := range opts {
		opt(w)
	}
	w.logger = w.base.Named(w.name)

	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer close(w.done)

	messages := w.queue.Dequeue()
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-messages:
			if !ok {
				return
			}
			if err := w.deliver(ctx, m); err != nil {
				w.logger.Error(ctx, "notification delivery failed", logger.Error(err))
			}
		}
	}
}

// Shutdown waits for the worker loop to exit. Close the queue first so the
// loop can drain and stop.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

func (w *InMemoryWorker) deliver(ctx context.Context, m Message) error { //nolint:gocritic // hugeParam: Message is passed by value for channel semantics
	start := time.Now()
	defer func() {
		metrics.RecordWorkerLatency(float64(time.Since(start).Milliseconds()))
	}()

	sendCtx, cancel := context.WithTimeout(ctx, w.sendTimeout)
	defer cancel()

	if err := w.notifier.Notify(sendCtx, m); err != nil {
		metrics.RecordNotification(metrics.NotificationFailed)
		metrics.RecordErrorByComponent("worker", "notify_error")
		return fmt.Errorf("notify assessment %s: %w", m.AssessmentID, err)
	}

	metrics.RecordNotification(metrics.NotificationSent)
	return nil
}

// Pool manages multiple workers reading from one queue.
type Pool struct {
	workers []*InMemoryWorker
	queue   Queue

	stopOnce sync.Once
	logger   logger.Logger
}

// NewPool creates a new worker pool. A count below 1 uses the default.
func NewPool(workerCount int, q Queue, n Notifier, opts ...Option) *Pool {
	if workerCount < 1 {
		workerCount = defaultWorkerCount
	}

	pool := &Pool{
		workers: make([]*InMemoryWorker, workerCount),
		queue:   q,
	}

	for i := 0; i < workerCount; i++ {
		workerOpts := append([]Option{}, opts...)
		workerOpts = append(workerOpts, WithName("worker-"+strconv.Itoa(i)))
		pool.workers[i] = NewInMemoryWorker(q, n, workerOpts...)
	}
	pool.logger = pool.workers[0].base.Named("worker-pool")

	metrics.UpdateWorkerActiveCount(workerCount)

	return pool
}

// Size returns the number of workers.
func (p *Pool) Size() int { return len(p.workers) }

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Shutdown closes the queue and waits for the workers to drain it, bounded
// by ctx and an internal timeout.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() {
		if closer, ok := p.queue.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				p.logger.Error(ctx, "error closing queue", logger.Error(err))
			}
		}
	})

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	var firstErr error
	for i, w := range p.workers {
		if err := w.Shutdown(shutdownCtx); err != nil {
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	metrics.UpdateWorkerActiveCount(0)
	return firstErr
}
