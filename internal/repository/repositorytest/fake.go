// Package repositorytest provides an in-memory DocumentRepository for
// exercising services without a database.
package repositorytest

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/paydocs/billscan/constants"
	"github.com/paydocs/billscan/internal/entity"
	"github.com/paydocs/billscan/internal/repository"
)

type FakeDocumentRepository struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entity.BillDocument
	now  time.Time
}

func NewFakeDocumentRepository() *FakeDocumentRepository {
	return &FakeDocumentRepository{
		docs: make(map[uuid.UUID]*entity.BillDocument),
		now:  time.Now().UTC(),
	}
}

// Seed inserts a document directly, bypassing lifecycle rules. The
// returned copy is safe to mutate.
func (f *FakeDocumentRepository) Seed(doc entity.BillDocument) *entity.BillDocument {
	f.mu.Lock()
	defer f.mu.Unlock()
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.CreatedAt.IsZero() {
		f.now = f.now.Add(time.Second)
		doc.CreatedAt = f.now
	}
	doc.UpdatedAt = doc.CreatedAt
	stored := doc
	f.docs[doc.ID] = &stored
	out := doc
	return &out
}

func (f *FakeDocumentRepository) Create(_ context.Context, req *repository.CreateDocumentRequest) (*entity.BillDocument, error) {
	return f.Seed(entity.BillDocument{
		CompanyID: req.CompanyID,
		SiteID:    req.SiteID,
		Status:    string(constants.StatusInProgress),
		Stage:     string(constants.StagePreprocess),
	}), nil
}

func (f *FakeDocumentRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.BillDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s not found", id)
	}
	out := *doc
	return &out, nil
}

func (f *FakeDocumentRepository) AdvanceStage(_ context.Context, id uuid.UUID, next constants.DocStage) error {
	return f.update(id, func(d *entity.BillDocument) {
		d.Stage = string(next)
	})
}

func (f *FakeDocumentRepository) AdvanceStageWithError(_ context.Context, id uuid.UUID, next constants.DocStage, code constants.ErrorCode, message string) error {
	return f.update(id, func(d *entity.BillDocument) {
		d.Stage = string(next)
		c, m := string(code), message
		d.ErrorCode, d.ErrorMessage = &c, &m
	})
}

func (f *FakeDocumentRepository) RecordExtraction(_ context.Context, id uuid.UUID, track constants.Track, patch repository.FieldPatch, raw json.RawMessage, next constants.DocStage) error {
	return f.update(id, func(d *entity.BillDocument) {
		t := string(track)
		d.Track = &t
		d.Stage = string(next)
		if raw != nil {
			d.ExtractedJSON = append(json.RawMessage(nil), raw...)
		}
		applyPatch(d, patch)
	})
}

func (f *FakeDocumentRepository) FinishValidated(_ context.Context, id uuid.UUID, status constants.DocStatus, confidence float32, code constants.ErrorCode, message string) error {
	return f.update(id, func(d *entity.BillDocument) {
		d.Stage = string(constants.StageDone)
		d.Status = string(status)
		conf := confidence
		d.Confidence = &conf
		if code != "" {
			c, m := string(code), message
			d.ErrorCode, d.ErrorMessage = &c, &m
		}
	})
}

func (f *FakeDocumentRepository) MarkNeedsReview(_ context.Context, id uuid.UUID, code constants.ErrorCode, message string) error {
	return f.update(id, func(d *entity.BillDocument) {
		d.Status = string(constants.StatusNeedsReview)
		c, m := string(code), message
		d.ErrorCode, d.ErrorMessage = &c, &m
	})
}

func (f *FakeDocumentRepository) ResetForRetry(_ context.Context, id uuid.UUID) (*entity.BillDocument, error) {
	err := f.update(id, func(d *entity.BillDocument) {
		d.Status = string(constants.StatusInProgress)
		d.Stage = string(constants.StagePreprocess)
		d.Track = nil
		d.Confidence = nil
		d.ErrorCode = nil
		d.ErrorMessage = nil
	})
	if err != nil {
		return nil, err
	}
	return f.GetByID(context.Background(), id)
}

func (f *FakeDocumentRepository) ApplyConfirmation(_ context.Context, id uuid.UUID, patch repository.FieldPatch) (*entity.BillDocument, error) {
	err := f.update(id, func(d *entity.BillDocument) {
		applyPatch(d, patch)
		d.Status = string(constants.StatusConfirmed)
		d.ErrorCode = nil
		d.ErrorMessage = nil
	})
	if err != nil {
		return nil, err
	}
	return f.GetByID(context.Background(), id)
}

func (f *FakeDocumentRepository) ListInProgress(_ context.Context, limit int) ([]*entity.BillDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.BillDocument
	for _, d := range f.docs {
		if d.Status == string(constants.StatusInProgress) {
			c := *d
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *FakeDocumentRepository) ListConfirmed(_ context.Context, companyID uuid.UUID, from, to *time.Time) ([]*entity.BillDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.BillDocument
	for _, d := range f.docs {
		if d.CompanyID != companyID || d.Status != string(constants.StatusConfirmed) {
			continue
		}
		if from != nil && (d.DueDate == nil || d.DueDate.Before(*from)) {
			continue
		}
		if to != nil && (d.DueDate == nil || d.DueDate.After(*to)) {
			continue
		}
		c := *d
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *FakeDocumentRepository) update(id uuid.UUID, fn func(*entity.BillDocument)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[id]
	if !ok {
		return fmt.Errorf("document %s not found", id)
	}
	fn(doc)
	doc.UpdatedAt = time.Now().UTC()
	return nil
}

func applyPatch(d *entity.BillDocument, patch repository.FieldPatch) {
	if patch.Vendor != nil {
		d.Vendor = patch.Vendor
	}
	if patch.BillType != nil {
		d.BillType = patch.BillType
	}
	if patch.AmountDue != nil {
		d.AmountDue = patch.AmountDue
	}
	if patch.DueDate != nil {
		d.DueDate = patch.DueDate
	}
	if patch.PeriodStart != nil {
		d.PeriodStart = patch.PeriodStart
	}
	if patch.PeriodEnd != nil {
		d.PeriodEnd = patch.PeriodEnd
	}
	if patch.CustomerNumber != nil {
		d.CustomerNumber = patch.CustomerNumber
	}
	if patch.PaymentAccount != nil {
		d.PaymentAccount = patch.PaymentAccount
	}
}

var _ repository.DocumentRepository = (*FakeDocumentRepository)(nil)
