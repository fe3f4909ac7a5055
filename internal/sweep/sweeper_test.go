package sweep

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydocs/billscan/constants"
	"github.com/paydocs/billscan/internal/entity"
	"github.com/paydocs/billscan/internal/repository/repositorytest"
)

type recordingProcessor struct {
	mu        sync.Mutex
	processed []uuid.UUID
	fail      map[uuid.UUID]error
}

func (p *recordingProcessor) Process(_ context.Context, id uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed = append(p.processed, id)
	if err, ok := p.fail[id]; ok {
		return err
	}
	return nil
}

func seedStranded(repo *repositorytest.FakeDocumentRepository, n int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		doc := repo.Seed(entity.BillDocument{
			CompanyID: uuid.New(),
			Status:    string(constants.StatusInProgress),
			Stage:     string(constants.StageGeneralOCR),
		})
		ids = append(ids, doc.ID)
	}
	return ids
}

func TestSweepProcessesOldestFirstUpToLimit(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	ids := seedStranded(repo, 5)
	proc := &recordingProcessor{}
	s := NewSweeper(repo, proc, slog.Default())

	res, err := s.Sweep(context.Background(), 0, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultLimit, res.Scanned)
	assert.Equal(t, DefaultLimit, res.Processed)
	assert.Equal(t, 0, res.Failed)
	// The three oldest, in creation order.
	assert.Equal(t, ids[:3], proc.processed)
}

func TestSweepClampsLimit(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	seedStranded(repo, 15)
	proc := &recordingProcessor{}
	s := NewSweeper(repo, proc, slog.Default())

	res, err := s.Sweep(context.Background(), 50, nil)
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, res.Scanned)
	assert.Len(t, proc.processed, MaxLimit)
}

func TestSweepCountsFailuresAndContinues(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	ids := seedStranded(repo, 3)
	proc := &recordingProcessor{fail: map[uuid.UUID]error{ids[1]: errors.New("boom")}}
	s := NewSweeper(repo, proc, slog.Default())

	res, err := s.Sweep(context.Background(), 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, ids, proc.processed)
	assert.Equal(t, ids, res.Documents)
}

func TestSweepTargetBypassesSelection(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	seedStranded(repo, 4)
	target := uuid.New()
	proc := &recordingProcessor{}
	s := NewSweeper(repo, proc, slog.Default())

	res, err := s.Sweep(context.Background(), 2, &target)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{target}, proc.processed)
	assert.Equal(t, 1, res.Scanned)
	assert.Equal(t, 1, res.Processed)
}

func TestSweepStopsWhenContextExpires(t *testing.T) {
	repo := repositorytest.NewFakeDocumentRepository()
	seedStranded(repo, 3)
	proc := &recordingProcessor{}
	s := NewSweeper(repo, proc, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := s.Sweep(ctx, 3, nil)
	require.NoError(t, err)
	assert.Empty(t, proc.processed)
	assert.Equal(t, 0, res.Processed)
}
