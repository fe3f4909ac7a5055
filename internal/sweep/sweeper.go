package sweep

import (
	"context"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/paydocs/billscan/internal/repository"
	"github.com/paydocs/billscan/internal/trigger"
)

const (
	// DefaultLimit keeps a sweep cheap enough to run opportunistically.
	DefaultLimit = 3
	// MaxLimit caps an explicit request so a single sweep cannot
	// monopolize the workers.
	MaxLimit = 10
)

// Result summarizes one sweep pass. Documents lists every ID the pass
// attempted, in selection order.
type Result struct {
	Scanned   int
	Processed int
	Failed    int
	Documents []uuid.UUID
	Elapsed   time.Duration
}

// Sweeper recovers documents stranded IN_PROGRESS by a crash or a lost
// trigger. It picks the oldest first and runs them sequentially, so a
// sweep never amplifies load; the engine's terminal-status no-op makes
// sweeping a document that finished in the meantime harmless.
type Sweeper struct {
	docs   repository.DocumentRepository
	proc   trigger.Processor
	logger *slog.Logger
}

func NewSweeper(docs repository.DocumentRepository, proc trigger.Processor, logger *slog.Logger) *Sweeper {
	return &Sweeper{docs: docs, proc: proc, logger: logger}
}

// Sweep processes up to limit stranded documents, oldest first. A zero
// or negative limit means DefaultLimit; anything above MaxLimit is
// clamped. When target is set, only that document is processed and the
// limit does not apply.
func (s *Sweeper) Sweep(ctx context.Context, limit int, target *uuid.UUID) (Result, error) {
	start := time.Now()

	if target != nil {
		res := Result{Scanned: 1, Documents: []uuid.UUID{*target}}
		if err := s.proc.Process(ctx, *target); err != nil {
			s.logger.Error("sweep.target.failed", "document_id", *target, "error", err)
			res.Failed = 1
		} else {
			res.Processed = 1
		}
		res.Elapsed = time.Since(start)
		return res, nil
	}

	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	docs, err := s.docs.ListInProgress(ctx, limit)
	if err != nil {
		return Result{}, err
	}

	res := Result{Scanned: len(docs)}
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			s.logger.Warn("sweep.budget_exhausted", "processed", res.Processed, "remaining", res.Scanned-res.Processed-res.Failed)
			break
		}
		res.Documents = append(res.Documents, doc.ID)
		if err := s.proc.Process(ctx, doc.ID); err != nil {
			s.logger.Error("sweep.document.failed", "document_id", doc.ID, "stage", doc.Stage, "error", err)
			res.Failed++
			continue
		}
		res.Processed++
	}

	res.Elapsed = time.Since(start)
	s.logger.Info("sweep.done",
		"scanned", res.Scanned,
		"processed", res.Processed,
		"failed", res.Failed,
		"elapsed_ms", res.Elapsed.Milliseconds(),
	)
	return res, nil
}
