package trigger

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"
)

// Job is the smallest useful unit. Extend as needed later (priority, trace, retry budget).
type Job struct {
	DocumentID  uuid.UUID
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Processor runs one document through the pipeline to completion.
type Processor interface {
	Process(ctx context.Context, documentID uuid.UUID) error
}

// EngineQueue fans jobs out to a fixed worker pool. A document already
// queued or mid-processing is not enqueued again; the terminal-status
// no-op in the engine covers the remaining race window.
type EngineQueue struct {
	proc    Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	// mu is held across the channel send so Shutdown cannot close the
	// channel underneath a blocked Enqueue.
	mu     sync.Mutex
	closed bool

	// inMu guards only the dedup map. Workers take it after each job,
	// so it must not be held while waiting on a full channel.
	inMu     sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

type Option func(*EngineQueue)

func WithWorkers(n int) Option {
	return func(q *EngineQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *EngineQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *EngineQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewEngineQueue(proc Processor, logger *slog.Logger, opts ...Option) *EngineQueue {
	q := &EngineQueue{
		proc:     proc,
		logger:   logger,
		workers:  4,
		timeout:  3 * time.Minute,
		ch:       make(chan Job, 256),
		inFlight: make(map[uuid.UUID]struct{}),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *EngineQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.proc.Process(ctx, job.DocumentID)
					cancel()

					q.inMu.Lock()
					delete(q.inFlight, job.DocumentID)
					q.inMu.Unlock()

					if err != nil {
						q.logger.Error("processing failed", "worker_id", workerID, "document_id", job.DocumentID, "error", err)
					} else {
						q.logger.Info("processed document", "worker_id", workerID, "document_id", job.DocumentID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *EngineQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "document_id", job.DocumentID)
		return nil
	}

	q.inMu.Lock()
	if _, busy := q.inFlight[job.DocumentID]; busy {
		q.inMu.Unlock()
		q.logger.Info("document already queued, skipping", "document_id", job.DocumentID)
		return nil
	}
	q.inFlight[job.DocumentID] = struct{}{}
	q.inMu.Unlock()

	select {
	case q.ch <- job:
		q.logger.Info("queued document for processing", "document_id", job.DocumentID)
	default:
		q.logger.Warn("queue full, applying backpressure", "document_id", job.DocumentID)
		q.ch <- job
	}
	return nil
}

func (q *EngineQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
