package extract

import (
	"context"
)

// BillFields is the normalized field set both extraction tracks
// produce. Amounts are numeric strings in minor units; dates are
// YYYY-MM-DD.
type BillFields struct {
	Vendor          string  `json:"vendor"`
	BillType        string  `json:"bill_type,omitempty"`
	AmountDue       string  `json:"amount_due,omitempty"`
	DueDate         string  `json:"due_date,omitempty"`
	PeriodStart     string  `json:"period_start,omitempty"`
	PeriodEnd       string  `json:"period_end,omitempty"`
	CustomerNumber  string  `json:"customer_number,omitempty"`
	PaymentAccount  string  `json:"payment_account,omitempty"`
	ModelConfidence float32 `json:"confidence,omitempty"` // optional (0..1)
}

// Preprocessor normalizes and orients the source image into the
// canonical scan artifact.
type Preprocessor interface {
	Normalize(ctx context.Context, image []byte) ([]byte, error)
}

// TemplateMatcher is track A: match the scan against a known vendor
// template and extract fields from fixed positions. A no-match is not
// an error; callers fall through to track B.
type TemplateMatcher interface {
	Match(ctx context.Context, image []byte) (TemplateMatch, error)
}

type TemplateMatch struct {
	Matched    bool
	TemplateID string
	Score      float32
	Fields     BillFields
}

// DisabledTemplateMatcher reports no-match for every document, so a
// deployment without a template service runs everything through the
// general track.
type DisabledTemplateMatcher struct{}

func (DisabledTemplateMatcher) Match(context.Context, []byte) (TemplateMatch, error) {
	return TemplateMatch{Matched: false}, nil
}

// Recognizer is track B stage one: unstructured recognition producing
// raw text for the language-model normalizer.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (RecognitionResult, error)
}

type RecognitionResult struct {
	Text       string
	Confidence float32
	Language   string
	Warnings   []string
}
