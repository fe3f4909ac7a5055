package llm

import (
	"context"
	"errors"

	"github.com/paydocs/billscan/internal/extract"
)

// ErrSchemaInvalid marks a model response that could not be brought
// into conformance with the bill schema, even leniently. Callers
// branch on it with errors.Is to record the right failure class.
var ErrSchemaInvalid = errors.New("model output failed schema validation")

// NormalizeRequest carries the track-B raw text plus context hints
// into the language-model extraction call.
type NormalizeRequest struct {
	RawText          string
	VendorHint       string
	DefaultCurrency  string
	AllowedBillTypes []string
	PrepConfidence   float32 // OCR confidence, for logging and prompt emphasis
}

// NormalizeResult is the parsed structured-output response. Sanitized
// lists optional fields dropped or coerced during lenient validation;
// a non-empty list marks the response as ambiguous for scoring.
type NormalizeResult struct {
	Fields    extract.BillFields
	Raw       []byte
	Sanitized []string
}

// FieldExtractor is the interface the pipeline depends on.
type FieldExtractor interface {
	Normalize(ctx context.Context, req NormalizeRequest) (NormalizeResult, error)
}
