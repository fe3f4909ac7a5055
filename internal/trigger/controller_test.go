package trigger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydocs/billscan/constants"
	"github.com/paydocs/billscan/internal/common"
	"github.com/paydocs/billscan/internal/entity"
	"github.com/paydocs/billscan/internal/repository/repositorytest"
)

type recordingQueue struct {
	jobs []Job
}

func (q *recordingQueue) Enqueue(_ context.Context, job Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordingQueue) Shutdown(context.Context) {}

func TestStartEnqueuesInProgressDocument(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	doc := repo.Seed(entity.BillDocument{
		CompanyID: uuid.New(),
		Status:    string(constants.StatusInProgress),
		Stage:     string(constants.StagePreprocess),
	})
	queue := &recordingQueue{}
	c := NewController(repo, queue, slog.Default())

	require.NoError(t, c.Start(context.Background(), doc.ID))
	require.Len(t, queue.jobs, 1)
	assert.Equal(t, doc.ID, queue.jobs[0].DocumentID)
}

func TestStartSkipsFinishedDocument(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	doc := repo.Seed(entity.BillDocument{
		CompanyID: uuid.New(),
		Status:    string(constants.StatusConfirmed),
		Stage:     string(constants.StageDone),
	})
	queue := &recordingQueue{}
	c := NewController(repo, queue, slog.Default())

	require.NoError(t, c.Start(context.Background(), doc.ID))
	assert.Empty(t, queue.jobs)
}

func TestRetryResetsParkedDocument(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	companyID := uuid.New()
	code, msg, track := "OCR_FAILED", "tesseract exited 1", "B"
	conf := float32(0.4)
	doc := repo.Seed(entity.BillDocument{
		CompanyID:    companyID,
		Status:       string(constants.StatusNeedsReview),
		Stage:        string(constants.StageGeneralOCR),
		Track:        &track,
		Confidence:   &conf,
		ErrorCode:    &code,
		ErrorMessage: &msg,
	})
	queue := &recordingQueue{}
	c := NewController(repo, queue, slog.Default())

	reset, err := c.Retry(context.Background(), doc.ID, companyID)
	require.NoError(t, err)

	assert.Equal(t, string(constants.StatusInProgress), reset.Status)
	assert.Equal(t, string(constants.StagePreprocess), reset.Stage)
	assert.Nil(t, reset.Track)
	assert.Nil(t, reset.Confidence)
	assert.Nil(t, reset.ErrorCode)
	assert.Nil(t, reset.ErrorMessage)
	require.Len(t, queue.jobs, 1)
}

func TestRetryRewindsRunningDocument(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	companyID := uuid.New()
	code, msg := "TEMPLATE_FAILED", "template service status 502"
	doc := repo.Seed(entity.BillDocument{
		CompanyID:    companyID,
		Status:       string(constants.StatusInProgress),
		Stage:        string(constants.StageLLMNormalize),
		ErrorCode:    &code,
		ErrorMessage: &msg,
	})
	queue := &recordingQueue{}
	c := NewController(repo, queue, slog.Default())

	got, err := c.Retry(context.Background(), doc.ID, companyID)
	require.NoError(t, err)
	// A stalled run rewinds like any other; errors recorded along the
	// way must not survive the retry.
	assert.Equal(t, string(constants.StatusInProgress), got.Status)
	assert.Equal(t, string(constants.StagePreprocess), got.Stage)
	assert.Nil(t, got.ErrorCode)
	assert.Nil(t, got.ErrorMessage)
	require.Len(t, queue.jobs, 1)
}

func TestRetryTwiceLandsInSameState(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	companyID := uuid.New()
	code := "OCR_FAILED"
	doc := repo.Seed(entity.BillDocument{
		CompanyID: companyID,
		Status:    string(constants.StatusNeedsReview),
		Stage:     string(constants.StageGeneralOCR),
		ErrorCode: &code,
	})
	queue := &recordingQueue{}
	c := NewController(repo, queue, slog.Default())

	first, err := c.Retry(context.Background(), doc.ID, companyID)
	require.NoError(t, err)
	second, err := c.Retry(context.Background(), doc.ID, companyID)
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Stage, second.Stage)
	assert.Equal(t, string(constants.StagePreprocess), second.Stage)
	assert.Nil(t, second.ErrorCode)
	require.Len(t, queue.jobs, 2)
}

func TestRetryDeniesCrossCompanyAccess(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	doc := repo.Seed(entity.BillDocument{
		CompanyID: uuid.New(),
		Status:    string(constants.StatusRejected),
		Stage:     string(constants.StageDone),
	})
	queue := &recordingQueue{}
	c := NewController(repo, queue, slog.Default())

	_, err := c.Retry(context.Background(), doc.ID, uuid.New())
	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Empty(t, queue.jobs)

	reloaded, err := repo.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.StatusRejected), reloaded.Status)
}
