package constants

// DocStatus is the externally visible lifecycle phase of a bill document.
type DocStatus string

// Stable values (store these exact strings in DB and on the wire).
const (
	StatusInProgress  DocStatus = "IN_PROGRESS"  // pipeline running or resumable
	StatusNeedsReview DocStatus = "NEEDS_REVIEW" // waiting for human confirmation
	StatusConfirmed   DocStatus = "CONFIRMED"    // trusted final record
	StatusRejected    DocStatus = "REJECTED"     // terminal; only explicit retry revives
)

// Statuses lists every valid document status.
var Statuses = []DocStatus{StatusInProgress, StatusNeedsReview, StatusConfirmed, StatusRejected}

func StatusStrings() []string {
	out := make([]string, len(Statuses))
	for i, s := range Statuses {
		out[i] = string(s)
	}
	return out
}

// DocStage is the current automated-processing step of an IN_PROGRESS
// document. Frozen once status leaves IN_PROGRESS.
type DocStage string

const (
	StagePreprocess   DocStage = "PREPROCESS"
	StageTemplateOCR  DocStage = "TEMPLATE_OCR"  // track A: known-vendor template match
	StageGeneralOCR   DocStage = "GENERAL_OCR"   // track B: unstructured recognition
	StageLLMNormalize DocStage = "LLM_NORMALIZE" // track B: language-model field extraction
	StageValidate     DocStage = "VALIDATE"
	StageDone         DocStage = "DONE"
)

// Stages lists every valid stage in processing order. Retry is the only
// backward transition and always resets to StagePreprocess.
var Stages = []DocStage{StagePreprocess, StageTemplateOCR, StageGeneralOCR, StageLLMNormalize, StageValidate, StageDone}

var stageOrder = func() map[DocStage]int {
	m := make(map[DocStage]int, len(Stages))
	for i, s := range Stages {
		m[s] = i
	}
	return m
}()

func StageStrings() []string {
	out := make([]string, len(Stages))
	for i, s := range Stages {
		out[i] = string(s)
	}
	return out
}

// StageAtOrAfter reports whether a sits at the same position as b or
// later in the processing sequence. Unknown stages compare as earliest.
func StageAtOrAfter(a, b DocStage) bool {
	return stageOrder[a] >= stageOrder[b]
}

// Track identifies which extraction strategy produced the field set.
type Track string

const (
	TrackTemplate Track = "A" // template-matched structured recognition
	TrackLLM      Track = "B" // general recognition + language-model reconstruction
)
