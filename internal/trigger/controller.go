package trigger

import (
	"context"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/paydocs/billscan/constants"
	"github.com/paydocs/billscan/internal/common"
	"github.com/paydocs/billscan/internal/entity"
	"github.com/paydocs/billscan/internal/repository"
)

// Controller owns the entry points into automated processing: the
// initial trigger after upload and the explicit retry. Both are
// idempotent; firing either twice leaves the document in the same
// state as firing it once.
type Controller struct {
	docs   repository.DocumentRepository
	queue  Queue
	logger *slog.Logger
}

func NewController(docs repository.DocumentRepository, queue Queue, logger *slog.Logger) *Controller {
	return &Controller{docs: docs, queue: queue, logger: logger}
}

// Start enqueues a freshly created document. Documents no longer
// IN_PROGRESS are left alone.
func (c *Controller) Start(ctx context.Context, documentID uuid.UUID) error {
	doc, err := c.docs.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.Status != string(constants.StatusInProgress) {
		c.logger.Info("trigger.start.skip", "document_id", documentID, "status", doc.Status)
		return nil
	}
	return c.queue.Enqueue(ctx, Job{DocumentID: documentID, SubmittedAt: time.Now()})
}

// Retry rewinds a document to the start of the pipeline: stage back
// to the beginning, stale diagnostics cleared, pipeline re-enqueued.
// IN_PROGRESS documents rewind too, so a retry after a crash does not
// resume from a half-done stage with an old error_code attached.
// Duplicate retry calls reset to the identical state, and the queue's
// in-flight dedup keeps overlapping runs from stacking.
func (c *Controller) Retry(ctx context.Context, documentID, callerCompanyID uuid.UUID) (*entity.BillDocument, error) {
	doc, err := c.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.CompanyID != callerCompanyID {
		c.logger.Warn("trigger.retry.denied", "document_id", documentID, "caller", callerCompanyID)
		return nil, common.ErrUnauthorized
	}

	reset, err := c.docs.ResetForRetry(ctx, documentID)
	if err != nil {
		return nil, err
	}
	c.logger.Info("trigger.retry.reset", "document_id", documentID, "previous_status", doc.Status, "previous_stage", doc.Stage)

	if err := c.queue.Enqueue(ctx, Job{DocumentID: documentID, SubmittedAt: time.Now()}); err != nil {
		return nil, err
	}
	return reset, nil
}
