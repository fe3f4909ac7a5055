package constants

import (
	"fmt"

	"github.com/google/uuid"
)

// ArtifactKind names the per-document objects kept in artifact storage.
type ArtifactKind string

const (
	ArtifactOriginal ArtifactKind = "original" // upload as received
	ArtifactScan     ArtifactKind = "scan"     // normalized/oriented image
	ArtifactTrackA   ArtifactKind = "track_a"  // template-recognition output
	ArtifactTrackB   ArtifactKind = "track_b"  // general-recognition raw text
)

// ArtifactKey builds the deterministic object key for a document
// artifact: {companyID}/{documentID}/{kind}. Re-running a stage writes
// the same key, so stage re-execution overwrites idempotently.
func ArtifactKey(companyID, documentID uuid.UUID, kind ArtifactKind) string {
	return fmt.Sprintf("%s/%s/%s", companyID, documentID, kind)
}
