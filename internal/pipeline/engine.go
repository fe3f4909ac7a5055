package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/paydocs/billscan/constants"
	"github.com/paydocs/billscan/internal/confirm"
	"github.com/paydocs/billscan/internal/entity"
	"github.com/paydocs/billscan/internal/extract"
	"github.com/paydocs/billscan/internal/llm"
	"github.com/paydocs/billscan/internal/repository"
	"github.com/paydocs/billscan/internal/storage"
)

// Engine drives a single document through the stage sequence, invoking
// the extraction adapters and persisting one atomic state update per
// stage. A run executes to completion (DONE, NEEDS_REVIEW, or a
// recorded failure) within one call; re-running any stage is safe
// because artifacts are overwritten idempotently and terminal statuses
// make Process a no-op.
type Engine struct {
	Logger    *slog.Logger
	Docs      repository.DocumentRepository
	Artifacts storage.ArtifactStore
	Pre       extract.Preprocessor
	Templates extract.TemplateMatcher
	OCR       extract.Recognizer
	LLM       llm.FieldExtractor
	Validator *Validator

	// DefaultCurrency seeds the LLM prompt; bills without an explicit
	// currency marker are assumed to be in it.
	DefaultCurrency string
}

func NewEngine(
	logger *slog.Logger,
	docs repository.DocumentRepository,
	artifacts storage.ArtifactStore,
	pre extract.Preprocessor,
	templates extract.TemplateMatcher,
	ocr extract.Recognizer,
	fieldExtractor llm.FieldExtractor,
	validator *Validator,
) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if validator == nil {
		validator = NewValidator(DefaultConfidenceThreshold)
	}
	return &Engine{
		Logger:          logger,
		Docs:            docs,
		Artifacts:       artifacts,
		Pre:             pre,
		Templates:       templates,
		OCR:             ocr,
		LLM:             fieldExtractor,
		Validator:       validator,
		DefaultCurrency: "KRW",
	}
}

// run holds the in-memory carryover between stages of a single call.
// Every member can be reconstructed from artifacts, so a run resuming
// mid-sequence starts with an empty carryover and reloads lazily.
type run struct {
	doc       *entity.BillDocument
	scan      []byte
	rawText   string
	prepConf  float32
	patch     *repository.FieldPatch
	modelConf float32
	track     constants.Track
	sanitized int
}

// Process executes the pipeline for one document. Terminal or
// review-parked documents make this a no-op, which is what makes
// duplicate triggers and overlapping sweeps safe.
func (e *Engine) Process(ctx context.Context, documentID uuid.UUID) error {
	doc, err := e.Docs.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	if doc.Status != string(constants.StatusInProgress) {
		e.Logger.Info("engine.skip", "document_id", documentID, "status", doc.Status)
		return nil
	}

	r := &run{doc: doc}
	stage := constants.DocStage(doc.Stage)

	for {
		var next constants.DocStage
		var done bool
		var err error

		switch stage {
		case constants.StagePreprocess:
			next, done, err = e.preprocess(ctx, r)
		case constants.StageTemplateOCR:
			next, done, err = e.templateRecognition(ctx, r)
		case constants.StageGeneralOCR:
			next, done, err = e.generalRecognition(ctx, r)
		case constants.StageLLMNormalize:
			next, done, err = e.normalize(ctx, r)
		case constants.StageValidate:
			next, done, err = e.validate(ctx, r)
		case constants.StageDone:
			return nil
		default:
			return fmt.Errorf("unknown stage %q for document %s", stage, documentID)
		}

		if err != nil {
			return err
		}
		if done {
			return nil
		}
		stage = next
	}
}

func (e *Engine) preprocess(ctx context.Context, r *run) (constants.DocStage, bool, error) {
	original, err := e.Artifacts.Get(ctx, e.key(r, constants.ArtifactOriginal))
	if err != nil {
		// Without the upload there is nothing any track can do.
		msg := fmt.Sprintf("original artifact unavailable: %v", err)
		if mErr := e.Docs.MarkNeedsReview(ctx, r.doc.ID, constants.ErrArtifactUnreached, msg); mErr != nil {
			return "", false, mErr
		}
		return "", true, nil
	}

	scan, err := e.Pre.Normalize(ctx, original)
	if err != nil {
		// Non-fatal: track A can still try on the raw upload.
		e.Logger.Warn("engine.preprocess.failed", "document_id", r.doc.ID, "error", err)
		r.scan = original
		return constants.StageTemplateOCR, false, e.Docs.AdvanceStageWithError(
			ctx, r.doc.ID, constants.StageTemplateOCR,
			constants.ErrPreprocessFailed, err.Error(),
		)
	}

	if err := e.Artifacts.Put(ctx, e.key(r, constants.ArtifactScan), scan, "image/png"); err != nil {
		return "", false, fmt.Errorf("store scan artifact: %w", err)
	}
	r.scan = scan
	e.Logger.Info("engine.preprocess.ok", "document_id", r.doc.ID, "scan_bytes", len(scan))
	return constants.StageTemplateOCR, false, e.Docs.AdvanceStage(ctx, r.doc.ID, constants.StageTemplateOCR)
}

func (e *Engine) templateRecognition(ctx context.Context, r *run) (constants.DocStage, bool, error) {
	img, err := e.loadScan(ctx, r)
	if err != nil {
		return "", false, err
	}

	match, err := e.Templates.Match(ctx, img)
	if err != nil {
		// Adapter failure is non-fatal here; track B remains.
		e.Logger.Warn("engine.template.failed", "document_id", r.doc.ID, "error", err)
		return constants.StageGeneralOCR, false, e.Docs.AdvanceStageWithError(
			ctx, r.doc.ID, constants.StageGeneralOCR,
			constants.ErrTemplateFailed, err.Error(),
		)
	}
	if !match.Matched {
		e.Logger.Info("engine.template.no_match", "document_id", r.doc.ID, "score", match.Score)
		return constants.StageGeneralOCR, false, e.Docs.AdvanceStage(ctx, r.doc.ID, constants.StageGeneralOCR)
	}

	raw, err := json.Marshal(match.Fields)
	if err != nil {
		return "", false, fmt.Errorf("encode track A fields: %w", err)
	}
	if err := e.Artifacts.Put(ctx, e.key(r, constants.ArtifactTrackA), raw, "application/json"); err != nil {
		return "", false, fmt.Errorf("store track A artifact: %w", err)
	}

	patch := buildPatch(match.Fields, e.Logger)
	if err := e.Docs.RecordExtraction(ctx, r.doc.ID, constants.TrackTemplate, patch, raw, constants.StageValidate); err != nil {
		return "", false, err
	}
	r.patch = &patch
	r.modelConf = match.Fields.ModelConfidence
	r.track = constants.TrackTemplate
	e.Logger.Info("engine.template.ok",
		"document_id", r.doc.ID,
		"template_id", match.TemplateID,
		"score", match.Score,
	)
	return constants.StageValidate, false, nil
}

func (e *Engine) generalRecognition(ctx context.Context, r *run) (constants.DocStage, bool, error) {
	img, err := e.loadScan(ctx, r)
	if err != nil {
		return "", false, err
	}

	res, err := e.OCR.Recognize(ctx, img)
	if err != nil {
		// Track B stage one failed; with track A already behind us no
		// track remains.
		if mErr := e.Docs.MarkNeedsReview(ctx, r.doc.ID, constants.ErrOCRFailed, err.Error()); mErr != nil {
			return "", false, mErr
		}
		return "", true, nil
	}
	if strings.TrimSpace(res.Text) == "" {
		if mErr := e.Docs.MarkNeedsReview(ctx, r.doc.ID, constants.ErrOCRFailed, "recognition produced no text"); mErr != nil {
			return "", false, mErr
		}
		return "", true, nil
	}

	if err := e.Artifacts.Put(ctx, e.key(r, constants.ArtifactTrackB), []byte(res.Text), "text/plain; charset=utf-8"); err != nil {
		return "", false, fmt.Errorf("store track B artifact: %w", err)
	}
	r.rawText = res.Text
	r.prepConf = res.Confidence
	e.Logger.Info("engine.ocr.ok",
		"document_id", r.doc.ID,
		"text_bytes", len(res.Text),
		"confidence", res.Confidence,
	)
	return constants.StageLLMNormalize, false, e.Docs.AdvanceStage(ctx, r.doc.ID, constants.StageLLMNormalize)
}

func (e *Engine) normalize(ctx context.Context, r *run) (constants.DocStage, bool, error) {
	if r.rawText == "" {
		// Resuming mid-sequence: reload the recognition output.
		raw, err := e.Artifacts.Get(ctx, e.key(r, constants.ArtifactTrackB))
		if err != nil {
			if mErr := e.Docs.MarkNeedsReview(ctx, r.doc.ID, constants.ErrArtifactUnreached,
				fmt.Sprintf("track B artifact unavailable: %v", err)); mErr != nil {
				return "", false, mErr
			}
			return "", true, nil
		}
		r.rawText = string(raw)
	}

	result, err := e.LLM.Normalize(ctx, llm.NormalizeRequest{
		RawText:          r.rawText,
		DefaultCurrency:  e.DefaultCurrency,
		AllowedBillTypes: constants.BillTypeStrings(),
		PrepConfidence:   r.prepConf,
	})
	if err != nil {
		// Last track exhausted; park for humans with the error intact.
		code := constants.ErrLLMFailed
		if errors.Is(err, llm.ErrSchemaInvalid) {
			code = constants.ErrLLMSchemaInvalid
		}
		if mErr := e.Docs.MarkNeedsReview(ctx, r.doc.ID, code, err.Error()); mErr != nil {
			return "", false, mErr
		}
		return "", true, nil
	}

	patch := buildPatch(result.Fields, e.Logger)
	if err := e.Docs.RecordExtraction(ctx, r.doc.ID, constants.TrackLLM, patch, result.Raw, constants.StageValidate); err != nil {
		return "", false, err
	}
	r.patch = &patch
	r.modelConf = result.Fields.ModelConfidence
	r.track = constants.TrackLLM
	r.sanitized = len(result.Sanitized)
	e.Logger.Info("engine.normalize.ok",
		"document_id", r.doc.ID,
		"vendor", result.Fields.Vendor,
		"sanitized", r.sanitized,
	)
	return constants.StageValidate, false, nil
}

func (e *Engine) validate(ctx context.Context, r *run) (constants.DocStage, bool, error) {
	if r.patch == nil {
		// Resuming at VALIDATE: reconstruct the scorecard from the
		// persisted raw payload and track provenance. Canonicalizing
		// again mirrors what the interrupted run stored.
		var fields extract.BillFields
		if len(r.doc.ExtractedJSON) > 0 {
			if err := json.Unmarshal(r.doc.ExtractedJSON, &fields); err != nil {
				e.Logger.Warn("engine.validate.payload_unreadable", "document_id", r.doc.ID, "error", err)
			}
		}
		patch := buildPatch(fields, e.Logger)
		r.patch = &patch
		r.modelConf = fields.ModelConfidence
		r.track = constants.TrackLLM
		if r.doc.Track != nil {
			r.track = constants.Track(*r.doc.Track)
		}
	}

	sc := Scorecard{Patch: *r.patch, Track: r.track, Sanitized: r.sanitized, ModelConfidence: r.modelConf}
	status, confidence := e.Validator.Verdict(sc)

	var code constants.ErrorCode
	var message string
	if status == constants.StatusNeedsReview {
		code = constants.ErrLowConfidence
		message = fmt.Sprintf("extraction confidence %.2f below threshold %.2f", confidence, e.Validator.Threshold)
	}
	if err := e.Docs.FinishValidated(ctx, r.doc.ID, status, confidence, code, message); err != nil {
		return "", false, err
	}
	e.Logger.Info("engine.validate.done",
		"document_id", r.doc.ID,
		"status", status,
		"track", r.track,
		"confidence", confidence,
	)
	return constants.StageDone, true, nil
}

// loadScan returns the canonical scan, falling back to the original
// upload when preprocessing never produced one.
func (e *Engine) loadScan(ctx context.Context, r *run) ([]byte, error) {
	if r.scan != nil {
		return r.scan, nil
	}
	scan, err := e.Artifacts.Get(ctx, e.key(r, constants.ArtifactScan))
	if err == nil {
		r.scan = scan
		return scan, nil
	}
	original, oErr := e.Artifacts.Get(ctx, e.key(r, constants.ArtifactOriginal))
	if oErr != nil {
		return nil, fmt.Errorf("load scan: %w", err)
	}
	r.scan = original
	return original, nil
}

func (e *Engine) key(r *run, kind constants.ArtifactKind) string {
	return constants.ArtifactKey(r.doc.CompanyID, r.doc.ID, kind)
}

// buildPatch converts the extracted string fields into typed values.
// Values that fail canonicalization are left out of the patch; the raw
// payload keeps them for audit.
func buildPatch(f extract.BillFields, logger *slog.Logger) repository.FieldPatch {
	var patch repository.FieldPatch
	if v := strings.TrimSpace(f.Vendor); v != "" {
		patch.Vendor = &v
	}
	if f.BillType != "" {
		if t, ok := constants.CanonicalBillType(f.BillType); ok {
			ts := string(t)
			patch.BillType = &ts
		} else {
			logger.Warn("bill type unknown", "label", f.BillType)
		}
	}
	if f.AmountDue != "" {
		if amt, err := confirm.ParseAmount(f.AmountDue); err == nil && amt >= 0 {
			patch.AmountDue = &amt
		} else {
			logger.Warn("amount unparseable", "value", f.AmountDue)
		}
	}
	if f.DueDate != "" {
		if d, err := confirm.ParseDate(f.DueDate); err == nil {
			patch.DueDate = &d
		}
	}
	if f.PeriodStart != "" {
		if d, err := confirm.ParseDate(f.PeriodStart); err == nil {
			patch.PeriodStart = &d
		}
	}
	if f.PeriodEnd != "" {
		if d, err := confirm.ParseDate(f.PeriodEnd); err == nil {
			patch.PeriodEnd = &d
		}
	}
	if v := strings.TrimSpace(f.CustomerNumber); v != "" {
		patch.CustomerNumber = &v
	}
	if v := strings.TrimSpace(f.PaymentAccount); v != "" {
		patch.PaymentAccount = &v
	}
	return patch
}
