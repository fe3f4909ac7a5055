package confirm

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydocs/billscan/constants"
	"github.com/paydocs/billscan/internal/common"
	"github.com/paydocs/billscan/internal/entity"
	"github.com/paydocs/billscan/internal/repository/repositorytest"
)

func TestConfirmAppliesParsedFields(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	companyID := uuid.New()
	doc := repo.Seed(entity.BillDocument{
		CompanyID: companyID,
		Status:    string(constants.StatusNeedsReview),
		Stage:     string(constants.StageDone),
	})

	svc := NewService(repo, slog.Default())
	updated, rejected, err := svc.Confirm(context.Background(), doc.ID, companyID, Input{
		Vendor:    "한국전력공사",
		BillType:  "electric",
		AmountDue: "1,234,500원",
		DueDate:   "2024년 3월 5일",
	})
	require.NoError(t, err)
	assert.Empty(t, rejected)

	assert.Equal(t, string(constants.StatusConfirmed), updated.Status)
	require.NotNil(t, updated.Vendor)
	assert.Equal(t, "한국전력공사", *updated.Vendor)
	require.NotNil(t, updated.BillType)
	assert.Equal(t, "ELECTRICITY", *updated.BillType)
	require.NotNil(t, updated.AmountDue)
	assert.Equal(t, int64(1234500), *updated.AmountDue)
	require.NotNil(t, updated.DueDate)
	assert.True(t, updated.DueDate.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Nil(t, updated.ErrorCode)
}

func TestConfirmReportsUnparseableFields(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	companyID := uuid.New()
	stored := int64(9900)
	doc := repo.Seed(entity.BillDocument{
		CompanyID: companyID,
		Status:    string(constants.StatusNeedsReview),
		Stage:     string(constants.StageDone),
		AmountDue: &stored,
	})

	svc := NewService(repo, slog.Default())
	updated, rejected, err := svc.Confirm(context.Background(), doc.ID, companyID, Input{
		AmountDue: "TBD",
		DueDate:   "다음주중",
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"amount_due", "due_date"}, rejected)

	// Rejected input never overwrites the stored value.
	require.NotNil(t, updated.AmountDue)
	assert.Equal(t, int64(9900), *updated.AmountDue)
	assert.Nil(t, updated.DueDate)
	assert.Equal(t, string(constants.StatusConfirmed), updated.Status)
}

func TestConfirmRejectsNegativeAmount(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	companyID := uuid.New()
	doc := repo.Seed(entity.BillDocument{
		CompanyID: companyID,
		Status:    string(constants.StatusNeedsReview),
		Stage:     string(constants.StageDone),
	})

	svc := NewService(repo, slog.Default())
	updated, rejected, err := svc.Confirm(context.Background(), doc.ID, companyID, Input{AmountDue: "-5,000원"})
	require.NoError(t, err)
	assert.Contains(t, rejected, "amount_due")
	assert.Nil(t, updated.AmountDue)
}

func TestConfirmDeniesCrossCompanyAccess(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	doc := repo.Seed(entity.BillDocument{
		CompanyID: uuid.New(),
		Status:    string(constants.StatusNeedsReview),
		Stage:     string(constants.StageDone),
	})

	svc := NewService(repo, slog.Default())
	_, _, err := svc.Confirm(context.Background(), doc.ID, uuid.New(), Input{Vendor: "x"})
	require.ErrorIs(t, err, common.ErrUnauthorized)

	reloaded, err := repo.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.StatusNeedsReview), reloaded.Status)
}
