package constants

// ErrorCode is the machine-checkable failure class recorded on a
// document alongside the human-readable message. Cleared on retry.
type ErrorCode string

const (
	ErrPreprocessFailed  ErrorCode = "PREPROCESS_FAILED"
	ErrTemplateFailed    ErrorCode = "TEMPLATE_FAILED"
	ErrOCRFailed         ErrorCode = "OCR_FAILED"
	ErrLLMFailed         ErrorCode = "LLM_FAILED"
	ErrLLMSchemaInvalid  ErrorCode = "LLM_SCHEMA_INVALID"
	ErrLowConfidence     ErrorCode = "VALIDATION_LOW_CONFIDENCE"
	ErrArtifactUnreached ErrorCode = "ARTIFACT_UNAVAILABLE"
)
