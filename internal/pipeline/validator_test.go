package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/paydocs/billscan/constants"
	"github.com/paydocs/billscan/internal/repository"
)

func fullPatch() repository.FieldPatch {
	vendor := "한국전력공사"
	amount := int64(53200)
	due := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	customer := "123-456-7890"
	account := "012345-67-890123"
	return repository.FieldPatch{
		Vendor:         &vendor,
		AmountDue:      &amount,
		DueDate:        &due,
		CustomerNumber: &customer,
		PaymentAccount: &account,
	}
}

func TestScoreFullTemplateMatch(t *testing.T) {
	v := NewValidator(0)
	score := v.Score(Scorecard{Patch: fullPatch(), Track: constants.TrackTemplate})
	// 0.6 completeness + 0.3 template + 0.05 vendor, clamped.
	assert.InDelta(t, 0.95, score, 0.001)
}

func TestScoreCleanLLMResponse(t *testing.T) {
	v := NewValidator(0)
	score := v.Score(Scorecard{Patch: fullPatch(), Track: constants.TrackLLM})
	assert.InDelta(t, 0.80, score, 0.001)
}

func TestScoreSanitizedLLMResponseShrinks(t *testing.T) {
	v := NewValidator(0)
	clean := v.Score(Scorecard{Patch: fullPatch(), Track: constants.TrackLLM})
	dirty := v.Score(Scorecard{Patch: fullPatch(), Track: constants.TrackLLM, Sanitized: 2})
	assert.Less(t, dirty, clean)
}

func TestScoreBlendsModelConfidence(t *testing.T) {
	v := NewValidator(0)
	blended := v.Score(Scorecard{Patch: fullPatch(), Track: constants.TrackLLM, ModelConfidence: 0.2})
	// 0.7*(0.6+0.15) + 0.3*0.2 + 0.05 vendor = 0.635
	assert.InDelta(t, 0.635, blended, 0.001)
}

func TestScoreStaysInRange(t *testing.T) {
	v := NewValidator(0)
	assert.GreaterOrEqual(t, v.Score(Scorecard{}), float32(0))
	assert.LessOrEqual(t, v.Score(Scorecard{Patch: fullPatch(), Track: constants.TrackTemplate, ModelConfidence: 1}), float32(1))
}

func TestVerdictConfirmsAboveThreshold(t *testing.T) {
	v := NewValidator(0.75)
	status, score := v.Verdict(Scorecard{Patch: fullPatch(), Track: constants.TrackTemplate})
	assert.Equal(t, constants.StatusConfirmed, status)
	assert.GreaterOrEqual(t, score, v.Threshold)
}

func TestVerdictRoutesLowScoreToReview(t *testing.T) {
	v := NewValidator(0.75)
	status, score := v.Verdict(Scorecard{Patch: fullPatch(), Track: constants.TrackLLM, ModelConfidence: 0.1})
	assert.Equal(t, constants.StatusNeedsReview, status)
	assert.Less(t, score, v.Threshold)
}

func TestVerdictRequiresAllFinancialFields(t *testing.T) {
	v := NewValidator(0.75)
	p := fullPatch()
	p.PaymentAccount = nil
	status, _ := v.Verdict(Scorecard{Patch: p, Track: constants.TrackTemplate})
	assert.Equal(t, constants.StatusNeedsReview, status)
}

func TestVerdictIgnoresUncanonicalizedAmount(t *testing.T) {
	// An amount string the canonicalizer rejected never enters the
	// patch; the document must not confirm with a null amount column.
	v := NewValidator(0.75)
	p := fullPatch()
	p.AmountDue = nil
	status, _ := v.Verdict(Scorecard{Patch: p, Track: constants.TrackTemplate})
	assert.Equal(t, constants.StatusNeedsReview, status)
}

func TestNewValidatorRejectsBogusThreshold(t *testing.T) {
	assert.Equal(t, DefaultConfidenceThreshold, NewValidator(-1).Threshold)
	assert.Equal(t, DefaultConfidenceThreshold, NewValidator(1.5).Threshold)
	assert.Equal(t, float32(0.9), NewValidator(0.9).Threshold)
}
