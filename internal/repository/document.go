package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/paydocs/billscan/constants"
	"github.com/paydocs/billscan/gen/ent"
	"github.com/paydocs/billscan/gen/ent/billdocument"
	"github.com/paydocs/billscan/internal/entity"
	"github.com/paydocs/billscan/internal/utils"
)

// CreateDocumentRequest wraps parameters for creating a document row.
type CreateDocumentRequest struct {
	CompanyID uuid.UUID
	SiteID    *string
}

// FieldPatch carries typed extracted or human-confirmed values. Only
// non-nil members are written.
type FieldPatch struct {
	Vendor         *string
	BillType       *string
	AmountDue      *int64
	DueDate        *time.Time
	PeriodStart    *time.Time
	PeriodEnd      *time.Time
	CustomerNumber *string
	PaymentAccount *string
}

// DocumentRepository is the single mutation surface for bill documents.
// Each method is one atomic update so a crashed run leaves either the
// previous or the next state, never a torn one.
type DocumentRepository interface {
	Create(ctx context.Context, req *CreateDocumentRequest) (*entity.BillDocument, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BillDocument, error)

	// AdvanceStage moves an IN_PROGRESS document forward in the sequence.
	AdvanceStage(ctx context.Context, id uuid.UUID, next constants.DocStage) error
	// AdvanceStageWithError moves forward while recording a non-fatal
	// stage failure (fall-through).
	AdvanceStageWithError(ctx context.Context, id uuid.UUID, next constants.DocStage, code constants.ErrorCode, message string) error
	// RecordExtraction persists a track's field set together with the
	// stage advance and track provenance in one write.
	RecordExtraction(ctx context.Context, id uuid.UUID, track constants.Track, patch FieldPatch, raw json.RawMessage, next constants.DocStage) error
	// FinishValidated closes the pipeline run with the validator verdict.
	FinishValidated(ctx context.Context, id uuid.UUID, status constants.DocStatus, confidence float32, code constants.ErrorCode, message string) error
	// MarkNeedsReview parks the document for humans with the error that
	// exhausted the tracks. The stage freezes where it was.
	MarkNeedsReview(ctx context.Context, id uuid.UUID, code constants.ErrorCode, message string) error
	// ResetForRetry is the only backward transition: stage back to
	// PREPROCESS, diagnostics and confidence cleared, IN_PROGRESS again.
	ResetForRetry(ctx context.Context, id uuid.UUID) (*entity.BillDocument, error)
	// ApplyConfirmation writes human-confirmed fields and confirms.
	ApplyConfirmation(ctx context.Context, id uuid.UUID, patch FieldPatch) (*entity.BillDocument, error)

	// ListInProgress returns the oldest IN_PROGRESS documents, up to limit.
	ListInProgress(ctx context.Context, limit int) ([]*entity.BillDocument, error)
	// ListConfirmed returns confirmed documents for a company, optionally
	// bounded by due date.
	ListConfirmed(ctx context.Context, companyID uuid.UUID, from, to *time.Time) ([]*entity.BillDocument, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) Create(ctx context.Context, req *CreateDocumentRequest) (*entity.BillDocument, error) {
	c := r.client.BillDocument.Create().
		SetCompanyID(req.CompanyID).
		SetStatus(string(constants.StatusInProgress)).
		SetStage(string(constants.StagePreprocess))
	if req.SiteID != nil {
		c = c.SetSiteID(*req.SiteID)
	}
	doc, err := c.Save(ctx)
	if err != nil {
		r.logger.Error("document create failed", "company_id", req.CompanyID, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "document_id", doc.ID, "company_id", req.CompanyID)
	return utils.ToBillDocument(doc), nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.BillDocument, error) {
	doc, err := r.client.BillDocument.
		Query().
		Where(billdocument.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToBillDocument(doc), nil
}

func (r *documentRepository) AdvanceStage(ctx context.Context, id uuid.UUID, next constants.DocStage) error {
	_, err := r.client.BillDocument.
		UpdateOneID(id).
		SetStage(string(next)).
		Save(ctx)
	if err != nil {
		r.logger.Error("stage advance failed", "document_id", id, "next", next, "error", err)
		return err
	}
	r.logger.Info("stage advanced", "document_id", id, "next", next)
	return nil
}

func (r *documentRepository) AdvanceStageWithError(ctx context.Context, id uuid.UUID, next constants.DocStage, code constants.ErrorCode, message string) error {
	_, err := r.client.BillDocument.
		UpdateOneID(id).
		SetStage(string(next)).
		SetErrorCode(string(code)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("stage advance failed", "document_id", id, "next", next, "error", err)
		return err
	}
	r.logger.Warn("stage advanced with error", "document_id", id, "next", next, "code", code)
	return nil
}

func (r *documentRepository) RecordExtraction(ctx context.Context, id uuid.UUID, track constants.Track, patch FieldPatch, raw json.RawMessage, next constants.DocStage) error {
	u := r.client.BillDocument.
		UpdateOneID(id).
		SetTrack(string(track)).
		SetStage(string(next))
	if raw != nil {
		u = u.SetExtractedJSON(raw)
	}
	u = applyPatch(u, patch)
	if _, err := u.Save(ctx); err != nil {
		r.logger.Error("extraction record failed", "document_id", id, "track", track, "error", err)
		return err
	}
	r.logger.Info("extraction recorded", "document_id", id, "track", track, "next", next)
	return nil
}

func (r *documentRepository) FinishValidated(ctx context.Context, id uuid.UUID, status constants.DocStatus, confidence float32, code constants.ErrorCode, message string) error {
	u := r.client.BillDocument.
		UpdateOneID(id).
		SetStage(string(constants.StageDone)).
		SetStatus(string(status)).
		SetConfidence(confidence)
	if code != "" {
		u = u.SetErrorCode(string(code)).SetErrorMessage(message)
	}
	if _, err := u.Save(ctx); err != nil {
		r.logger.Error("validation finish failed", "document_id", id, "status", status, "error", err)
		return err
	}
	r.logger.Info("validation finished", "document_id", id, "status", status, "confidence", confidence)
	return nil
}

func (r *documentRepository) MarkNeedsReview(ctx context.Context, id uuid.UUID, code constants.ErrorCode, message string) error {
	_, err := r.client.BillDocument.
		UpdateOneID(id).
		SetStatus(string(constants.StatusNeedsReview)).
		SetErrorCode(string(code)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("needs-review mark failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Warn("document parked for review", "document_id", id, "code", code)
	return nil
}

func (r *documentRepository) ResetForRetry(ctx context.Context, id uuid.UUID) (*entity.BillDocument, error) {
	doc, err := r.client.BillDocument.
		UpdateOneID(id).
		SetStatus(string(constants.StatusInProgress)).
		SetStage(string(constants.StagePreprocess)).
		ClearConfidence().
		ClearErrorCode().
		ClearErrorMessage().
		ClearTrack().
		Save(ctx)
	if err != nil {
		r.logger.Error("retry reset failed", "document_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("document reset for retry", "document_id", id)
	return utils.ToBillDocument(doc), nil
}

func (r *documentRepository) ApplyConfirmation(ctx context.Context, id uuid.UUID, patch FieldPatch) (*entity.BillDocument, error) {
	u := r.client.BillDocument.
		UpdateOneID(id).
		SetStatus(string(constants.StatusConfirmed)).
		ClearErrorCode().
		ClearErrorMessage()
	u = applyPatch(u, patch)
	doc, err := u.Save(ctx)
	if err != nil {
		r.logger.Error("confirmation apply failed", "document_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("document confirmed", "document_id", id)
	return utils.ToBillDocument(doc), nil
}

func (r *documentRepository) ListInProgress(ctx context.Context, limit int) ([]*entity.BillDocument, error) {
	docs, err := r.client.BillDocument.
		Query().
		Where(billdocument.Status(string(constants.StatusInProgress))).
		Order(billdocument.ByCreatedAt()).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("in-progress list failed", "error", err)
		return nil, err
	}
	out := make([]*entity.BillDocument, len(docs))
	for i, d := range docs {
		out[i] = utils.ToBillDocument(d)
	}
	return out, nil
}

func (r *documentRepository) ListConfirmed(ctx context.Context, companyID uuid.UUID, from, to *time.Time) ([]*entity.BillDocument, error) {
	q := r.client.BillDocument.
		Query().
		Where(
			billdocument.CompanyID(companyID),
			billdocument.Status(string(constants.StatusConfirmed)),
		)
	if from != nil {
		q = q.Where(billdocument.DueDateGTE(*from))
	}
	if to != nil {
		q = q.Where(billdocument.DueDateLTE(*to))
	}
	docs, err := q.Order(billdocument.ByDueDate()).All(ctx)
	if err != nil {
		r.logger.Error("confirmed list failed", "company_id", companyID, "error", err)
		return nil, err
	}
	out := make([]*entity.BillDocument, len(docs))
	for i, d := range docs {
		out[i] = utils.ToBillDocument(d)
	}
	return out, nil
}

func applyPatch(u *ent.BillDocumentUpdateOne, patch FieldPatch) *ent.BillDocumentUpdateOne {
	if patch.Vendor != nil {
		u = u.SetVendor(*patch.Vendor)
	}
	if patch.BillType != nil {
		u = u.SetBillType(*patch.BillType)
	}
	if patch.AmountDue != nil {
		u = u.SetAmountDue(*patch.AmountDue)
	}
	if patch.DueDate != nil {
		u = u.SetDueDate(*patch.DueDate)
	}
	if patch.PeriodStart != nil {
		u = u.SetPeriodStart(*patch.PeriodStart)
	}
	if patch.PeriodEnd != nil {
		u = u.SetPeriodEnd(*patch.PeriodEnd)
	}
	if patch.CustomerNumber != nil {
		u = u.SetCustomerNumber(*patch.CustomerNumber)
	}
	if patch.PaymentAccount != nil {
		u = u.SetPaymentAccount(*patch.PaymentAccount)
	}
	return u
}
