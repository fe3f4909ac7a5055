package storage

import (
	"context"
	"time"
)

// ArtifactStore holds per-document pipeline artifacts under
// deterministic keys. Writes are overwrite-safe so a re-executed stage
// can regenerate its artifact without coordination.
type ArtifactStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	// SignedURL returns a short-lived read URL for collaborators.
	SignedURL(key string, ttl time.Duration) (string, error)
}
