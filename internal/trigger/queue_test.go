package trigger

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingProcessor struct {
	mu      sync.Mutex
	started chan uuid.UUID
	release chan struct{}
	counts  map[uuid.UUID]int
}

func newBlockingProcessor() *blockingProcessor {
	return &blockingProcessor{
		started: make(chan uuid.UUID, 16),
		release: make(chan struct{}),
		counts:  make(map[uuid.UUID]int),
	}
}

func (p *blockingProcessor) Process(_ context.Context, id uuid.UUID) error {
	p.mu.Lock()
	p.counts[id]++
	p.mu.Unlock()
	p.started <- id
	<-p.release
	return nil
}

func (p *blockingProcessor) count(id uuid.UUID) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counts[id]
}

func TestEnqueueDeduplicatesInFlightDocuments(t *testing.T) {
	proc := newBlockingProcessor()
	q := NewEngineQueue(proc, slog.Default(), WithWorkers(1), WithQueueSize(8))

	id := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: id, SubmittedAt: time.Now()}))

	// Wait until the worker picked it up, then fire duplicates.
	<-proc.started
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: id}))
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: id}))

	close(proc.release)
	q.Shutdown(context.Background())

	assert.Equal(t, 1, proc.count(id))
}

func TestEnqueueAllowsReprocessingAfterCompletion(t *testing.T) {
	proc := newBlockingProcessor()
	close(proc.release) // never block
	q := NewEngineQueue(proc, slog.Default(), WithWorkers(1), WithQueueSize(8))

	id := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: id}))

	// Wait for the first run to finish before re-enqueueing.
	<-proc.started
	require.Eventually(t, func() bool {
		q.inMu.Lock()
		defer q.inMu.Unlock()
		_, busy := q.inFlight[id]
		return !busy
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: id}))
	<-proc.started
	q.Shutdown(context.Background())

	assert.Equal(t, 2, proc.count(id))
}

func TestEnqueueRacingShutdownDoesNotPanic(t *testing.T) {
	proc := newBlockingProcessor()
	q := NewEngineQueue(proc, slog.Default(), WithWorkers(1), WithQueueSize(1))

	// Occupy the single worker and fill the one-slot channel so the
	// next enqueue blocks in the backpressure send.
	first := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: first}))
	<-proc.started
	second := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: second}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = q.Enqueue(context.Background(), Job{DocumentID: uuid.New()})
	}()
	go func() {
		time.Sleep(10 * time.Millisecond)
		close(proc.release)
		q.Shutdown(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("blocked enqueue never completed during shutdown")
	}
	assert.Equal(t, 1, proc.count(first))
	assert.Equal(t, 1, proc.count(second))
}

func TestEnqueueAfterShutdownIsIgnored(t *testing.T) {
	proc := newBlockingProcessor()
	close(proc.release)
	q := NewEngineQueue(proc, slog.Default(), WithWorkers(1))
	q.Shutdown(context.Background())

	id := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: id}))
	assert.Equal(t, 0, proc.count(id))
}
