package pipeline

import (
	"github.com/paydocs/billscan/constants"
	"github.com/paydocs/billscan/internal/repository"
)

// DefaultConfidenceThreshold routes a scored document to automatic
// confirmation (at or above) or human review (below).
const DefaultConfidenceThreshold float32 = 0.75

// Scorecard is the validator input: the canonicalized field patch plus
// how it was produced. Scoring runs on the typed values that were
// actually persisted, so a raw string that failed canonicalization
// does not count as populated. Track provenance is part of the score;
// a template match is trusted more than a language-model
// reconstruction of the same fields.
type Scorecard struct {
	Patch     repository.FieldPatch
	Track     constants.Track
	Sanitized int // optional fields coerced/dropped from the LLM response

	// ModelConfidence is the model's own estimate, 0 when absent.
	ModelConfidence float32
}

// Validator turns a scorecard into a confidence score and a terminal
// status verdict.
type Validator struct {
	Threshold float32
}

func NewValidator(threshold float32) *Validator {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultConfidenceThreshold
	}
	return &Validator{Threshold: threshold}
}

// requiredFields are the financial columns a confirmed record must
// carry. Only canonicalized values count.
func requiredFields(p repository.FieldPatch) (populated, total int) {
	total = 4
	if p.AmountDue != nil {
		populated++
	}
	if p.DueDate != nil {
		populated++
	}
	if p.CustomerNumber != nil {
		populated++
	}
	if p.PaymentAccount != nil {
		populated++
	}
	return populated, total
}

// Score computes a confidence in [0,1]. Completeness contributes up to
// 0.6; provenance adds 0.3 for a template match or 0.15 for a clean
// language-model response, shrinking with sanitizer interventions and
// blended with the model's own estimate when it reports one.
func (v *Validator) Score(sc Scorecard) float32 {
	populated, total := requiredFields(sc.Patch)
	score := 0.6 * float32(populated) / float32(total)

	switch sc.Track {
	case constants.TrackTemplate:
		score += 0.3
	case constants.TrackLLM:
		bonus := float32(0.15)
		if sc.Sanitized > 0 {
			bonus -= 0.05 * float32(sc.Sanitized)
			if bonus < 0 {
				bonus = 0
			}
		}
		score += bonus
		if mc := sc.ModelConfidence; mc > 0 {
			score = 0.7*score + 0.3*mc
		}
	}

	if sc.Patch.Vendor != nil {
		score += 0.05
	}

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Verdict maps the score onto the terminal status. A confirmed record
// must carry every required financial field in canonical form, so an
// incomplete patch goes to review no matter how the score came out.
func (v *Validator) Verdict(sc Scorecard) (constants.DocStatus, float32) {
	score := v.Score(sc)
	populated, total := requiredFields(sc.Patch)
	if populated < total {
		return constants.StatusNeedsReview, score
	}
	if score >= v.Threshold {
		return constants.StatusConfirmed, score
	}
	return constants.StatusNeedsReview, score
}
