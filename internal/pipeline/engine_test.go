package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydocs/billscan/constants"
	"github.com/paydocs/billscan/internal/entity"
	"github.com/paydocs/billscan/internal/extract"
	"github.com/paydocs/billscan/internal/llm"
	"github.com/paydocs/billscan/internal/repository/repositorytest"
)

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
}

func (m *memStore) Put(_ context.Context, key string, data []byte, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), data...)
	return nil
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s not found", key)
	}
	return append([]byte(nil), data...), nil
}

func (m *memStore) SignedURL(key string, _ time.Duration) (string, error) {
	return "https://signed.example/" + key, nil
}

type stubPre struct {
	fn func([]byte) ([]byte, error)
}

func (s stubPre) Normalize(_ context.Context, img []byte) ([]byte, error) { return s.fn(img) }

type stubMatcher struct {
	fn func([]byte) (extract.TemplateMatch, error)
}

func (s stubMatcher) Match(_ context.Context, img []byte) (extract.TemplateMatch, error) {
	return s.fn(img)
}

type stubOCR struct {
	fn func([]byte) (extract.RecognitionResult, error)
}

func (s stubOCR) Recognize(_ context.Context, img []byte) (extract.RecognitionResult, error) {
	return s.fn(img)
}

type stubLLM struct {
	fn func(llm.NormalizeRequest) (llm.NormalizeResult, error)
}

func (s stubLLM) Normalize(_ context.Context, req llm.NormalizeRequest) (llm.NormalizeResult, error) {
	return s.fn(req)
}

func passthroughPre() stubPre {
	return stubPre{fn: func(img []byte) ([]byte, error) { return img, nil }}
}

func noMatch() stubMatcher {
	return stubMatcher{fn: func([]byte) (extract.TemplateMatch, error) {
		return extract.TemplateMatch{Matched: false}, nil
	}}
}

func noOCR(t *testing.T) stubOCR {
	return stubOCR{fn: func([]byte) (extract.RecognitionResult, error) {
		t.Fatal("general recognition must not run after a template match")
		return extract.RecognitionResult{}, nil
	}}
}

func noLLM(t *testing.T) stubLLM {
	return stubLLM{fn: func(llm.NormalizeRequest) (llm.NormalizeResult, error) {
		t.Fatal("normalizer must not run after a template match")
		return llm.NormalizeResult{}, nil
	}}
}

func fullBillFields() extract.BillFields {
	return extract.BillFields{
		Vendor:         "한국전력공사",
		BillType:       "ELECTRICITY",
		AmountDue:      "53200",
		DueDate:        "2024-03-05",
		CustomerNumber: "123-456-7890",
		PaymentAccount: "012345-67-890123",
	}
}

type fixture struct {
	repo  *repositorytest.FakeDocumentRepository
	store *memStore
	doc   *entity.BillDocument
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := repositorytest.NewFakeDocumentRepository()
	store := newMemStore()
	doc := repo.Seed(entity.BillDocument{
		CompanyID: uuid.New(),
		Status:    string(constants.StatusInProgress),
		Stage:     string(constants.StagePreprocess),
	})
	key := constants.ArtifactKey(doc.CompanyID, doc.ID, constants.ArtifactOriginal)
	require.NoError(t, store.Put(context.Background(), key, []byte("photo-bytes"), "image/jpeg"))
	return &fixture{repo: repo, store: store, doc: doc}
}

func (f *fixture) engine(m extract.TemplateMatcher, o extract.Recognizer, l llm.FieldExtractor) *Engine {
	return NewEngine(slog.Default(), f.repo, f.store, passthroughPre(), m, o, l, NewValidator(0.75))
}

func (f *fixture) reload(t *testing.T) *entity.BillDocument {
	t.Helper()
	doc, err := f.repo.GetByID(context.Background(), f.doc.ID)
	require.NoError(t, err)
	return doc
}

func (f *fixture) hasArtifact(kind constants.ArtifactKind) bool {
	key := constants.ArtifactKey(f.doc.CompanyID, f.doc.ID, kind)
	_, err := f.store.Get(context.Background(), key)
	return err == nil
}

func TestProcessTemplateMatchConfirms(t *testing.T) {
	f := newFixture(t)
	matcher := stubMatcher{fn: func([]byte) (extract.TemplateMatch, error) {
		return extract.TemplateMatch{Matched: true, TemplateID: "kepco-v3", Score: 0.97, Fields: fullBillFields()}, nil
	}}
	eng := f.engine(matcher, noOCR(t), noLLM(t))

	require.NoError(t, eng.Process(context.Background(), f.doc.ID))

	doc := f.reload(t)
	assert.Equal(t, string(constants.StatusConfirmed), doc.Status)
	assert.Equal(t, string(constants.StageDone), doc.Stage)
	require.NotNil(t, doc.Track)
	assert.Equal(t, "A", *doc.Track)
	require.NotNil(t, doc.AmountDue)
	assert.Equal(t, int64(53200), *doc.AmountDue)
	require.NotNil(t, doc.DueDate)
	assert.True(t, doc.DueDate.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.True(t, f.hasArtifact(constants.ArtifactScan))
	assert.True(t, f.hasArtifact(constants.ArtifactTrackA))
	require.NotNil(t, doc.Confidence)
	assert.GreaterOrEqual(t, *doc.Confidence, float32(0.75))
}

func TestProcessTemplateMatchWithBadAmountGoesToReview(t *testing.T) {
	f := newFixture(t)
	fields := fullBillFields()
	fields.AmountDue = "TBD"
	matcher := stubMatcher{fn: func([]byte) (extract.TemplateMatch, error) {
		return extract.TemplateMatch{Matched: true, TemplateID: "kepco-v3", Score: 0.97, Fields: fields}, nil
	}}
	eng := f.engine(matcher, noOCR(t), noLLM(t))

	require.NoError(t, eng.Process(context.Background(), f.doc.ID))

	// The raw string never canonicalized, so the stored amount is
	// null and the record must not confirm.
	doc := f.reload(t)
	assert.Equal(t, string(constants.StatusNeedsReview), doc.Status)
	assert.Equal(t, string(constants.StageDone), doc.Stage)
	assert.Nil(t, doc.AmountDue)
	require.NotNil(t, doc.ErrorCode)
	assert.Equal(t, string(constants.ErrLowConfidence), *doc.ErrorCode)
}

func TestProcessFallsThroughToGeneralTrack(t *testing.T) {
	f := newFixture(t)
	fields := fullBillFields()
	fields.ModelConfidence = 0.9
	eng := f.engine(noMatch(),
		stubOCR{fn: func([]byte) (extract.RecognitionResult, error) {
			return extract.RecognitionResult{Text: "한국전력공사 전기요금 53,200원", Confidence: 0.8}, nil
		}},
		stubLLM{fn: func(req llm.NormalizeRequest) (llm.NormalizeResult, error) {
			assert.Contains(t, req.RawText, "전기요금")
			return llm.NormalizeResult{Fields: fields, Raw: []byte(`{"vendor":"한국전력공사"}`)}, nil
		}})

	require.NoError(t, eng.Process(context.Background(), f.doc.ID))

	doc := f.reload(t)
	assert.Equal(t, string(constants.StatusConfirmed), doc.Status)
	require.NotNil(t, doc.Track)
	assert.Equal(t, "B", *doc.Track)
	assert.True(t, f.hasArtifact(constants.ArtifactTrackB))
	assert.False(t, f.hasArtifact(constants.ArtifactTrackA))
}

func TestProcessParksOnRecognitionFailure(t *testing.T) {
	f := newFixture(t)
	eng := f.engine(noMatch(),
		stubOCR{fn: func([]byte) (extract.RecognitionResult, error) {
			return extract.RecognitionResult{}, errors.New("tesseract exited 1")
		}},
		stubLLM{fn: func(llm.NormalizeRequest) (llm.NormalizeResult, error) {
			t.Fatal("normalizer must not run without recognition output")
			return llm.NormalizeResult{}, nil
		}})

	require.NoError(t, eng.Process(context.Background(), f.doc.ID))

	doc := f.reload(t)
	assert.Equal(t, string(constants.StatusNeedsReview), doc.Status)
	require.NotNil(t, doc.ErrorCode)
	assert.Equal(t, string(constants.ErrOCRFailed), *doc.ErrorCode)
	// Stage freezes where the tracks ran out.
	assert.Equal(t, string(constants.StageGeneralOCR), doc.Stage)
}

func TestProcessRecordsSchemaInvalidSeparately(t *testing.T) {
	f := newFixture(t)
	eng := f.engine(noMatch(),
		stubOCR{fn: func([]byte) (extract.RecognitionResult, error) {
			return extract.RecognitionResult{Text: "noise"}, nil
		}},
		stubLLM{fn: func(llm.NormalizeRequest) (llm.NormalizeResult, error) {
			return llm.NormalizeResult{}, fmt.Errorf("%w: vendor missing", llm.ErrSchemaInvalid)
		}})

	require.NoError(t, eng.Process(context.Background(), f.doc.ID))

	doc := f.reload(t)
	assert.Equal(t, string(constants.StatusNeedsReview), doc.Status)
	require.NotNil(t, doc.ErrorCode)
	assert.Equal(t, string(constants.ErrLLMSchemaInvalid), *doc.ErrorCode)
}

func TestProcessSurvivesPreprocessFailure(t *testing.T) {
	f := newFixture(t)
	eng := NewEngine(slog.Default(), f.repo, f.store,
		stubPre{fn: func([]byte) ([]byte, error) { return nil, errors.New("magick exited 1") }},
		stubMatcher{fn: func(img []byte) (extract.TemplateMatch, error) {
			// Track A still sees the raw upload.
			assert.Equal(t, []byte("photo-bytes"), img)
			return extract.TemplateMatch{Matched: true, TemplateID: "kepco-v3", Score: 0.92, Fields: fullBillFields()}, nil
		}},
		stubOCR{fn: func([]byte) (extract.RecognitionResult, error) {
			return extract.RecognitionResult{}, errors.New("unreachable")
		}},
		stubLLM{fn: func(llm.NormalizeRequest) (llm.NormalizeResult, error) {
			return llm.NormalizeResult{}, errors.New("unreachable")
		}},
		NewValidator(0.75))

	require.NoError(t, eng.Process(context.Background(), f.doc.ID))

	doc := f.reload(t)
	assert.Equal(t, string(constants.StatusConfirmed), doc.Status)
	assert.False(t, f.hasArtifact(constants.ArtifactScan))
}

func TestProcessRoutesLowConfidenceToReview(t *testing.T) {
	f := newFixture(t)
	sparse := extract.BillFields{Vendor: "모호한공급자", AmountDue: "1000"}
	eng := f.engine(noMatch(),
		stubOCR{fn: func([]byte) (extract.RecognitionResult, error) {
			return extract.RecognitionResult{Text: "blurry"}, nil
		}},
		stubLLM{fn: func(llm.NormalizeRequest) (llm.NormalizeResult, error) {
			return llm.NormalizeResult{Fields: sparse, Raw: []byte(`{}`)}, nil
		}})

	require.NoError(t, eng.Process(context.Background(), f.doc.ID))

	doc := f.reload(t)
	assert.Equal(t, string(constants.StatusNeedsReview), doc.Status)
	assert.Equal(t, string(constants.StageDone), doc.Stage)
	require.NotNil(t, doc.ErrorCode)
	assert.Equal(t, string(constants.ErrLowConfidence), *doc.ErrorCode)
	require.NotNil(t, doc.Confidence)
	assert.Less(t, *doc.Confidence, float32(0.75))
}

func TestProcessIsNoOpForTerminalStatuses(t *testing.T) {
	for _, status := range []constants.DocStatus{
		constants.StatusConfirmed,
		constants.StatusRejected,
		constants.StatusNeedsReview,
	} {
		repo := repositorytest.NewFakeDocumentRepository()
		doc := repo.Seed(entity.BillDocument{
			CompanyID: uuid.New(),
			Status:    string(status),
			Stage:     string(constants.StageDone),
		})
		eng := NewEngine(slog.Default(), repo, newMemStore(),
			stubPre{fn: func([]byte) ([]byte, error) {
				t.Fatalf("pipeline must not run for status %s", status)
				return nil, nil
			}},
			noMatch(), stubOCR{fn: func([]byte) (extract.RecognitionResult, error) {
				return extract.RecognitionResult{}, nil
			}}, stubLLM{fn: func(llm.NormalizeRequest) (llm.NormalizeResult, error) {
				return llm.NormalizeResult{}, nil
			}}, nil)

		require.NoError(t, eng.Process(context.Background(), doc.ID))
		after, err := repo.GetByID(context.Background(), doc.ID)
		require.NoError(t, err)
		assert.Equal(t, string(status), after.Status)
	}
}

func TestProcessParksWhenOriginalMissing(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	doc := repo.Seed(entity.BillDocument{
		CompanyID: uuid.New(),
		Status:    string(constants.StatusInProgress),
		Stage:     string(constants.StagePreprocess),
	})
	eng := NewEngine(slog.Default(), repo, newMemStore(), passthroughPre(), noMatch(),
		stubOCR{fn: func([]byte) (extract.RecognitionResult, error) {
			return extract.RecognitionResult{}, nil
		}},
		stubLLM{fn: func(llm.NormalizeRequest) (llm.NormalizeResult, error) {
			return llm.NormalizeResult{}, nil
		}}, nil)

	require.NoError(t, eng.Process(context.Background(), doc.ID))

	after, err := repo.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.StatusNeedsReview), after.Status)
	require.NotNil(t, after.ErrorCode)
	assert.Equal(t, string(constants.ErrArtifactUnreached), *after.ErrorCode)
}

func TestProcessResumesFromValidateStage(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	track := "B"
	doc := repo.Seed(entity.BillDocument{
		CompanyID:     uuid.New(),
		Status:        string(constants.StatusInProgress),
		Stage:         string(constants.StageValidate),
		Track:         &track,
		ExtractedJSON: []byte(`{"vendor":"한국전력공사","amount_due":"53200","due_date":"2024-03-05","customer_number":"123","payment_account":"456","confidence":0.95}`),
	})
	eng := NewEngine(slog.Default(), repo, newMemStore(), passthroughPre(), noMatch(),
		stubOCR{fn: func([]byte) (extract.RecognitionResult, error) {
			t.Fatal("recognition must not rerun when resuming at validation")
			return extract.RecognitionResult{}, nil
		}},
		stubLLM{fn: func(llm.NormalizeRequest) (llm.NormalizeResult, error) {
			t.Fatal("normalizer must not rerun when resuming at validation")
			return llm.NormalizeResult{}, nil
		}}, NewValidator(0.75))

	require.NoError(t, eng.Process(context.Background(), doc.ID))

	after, err := repo.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.StatusConfirmed), after.Status)
	assert.Equal(t, string(constants.StageDone), after.Stage)
}
