package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	gcs "cloud.google.com/go/storage"

	"github.com/paydocs/billscan/internal/common"
)

// GCSStore implements ArtifactStore on a Cloud Storage bucket.
type GCSStore struct {
	bucket *gcs.BucketHandle
	name   string
	logger *slog.Logger
}

func NewGCSStore(client *gcs.Client, bucketName string, logger *slog.Logger) *GCSStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &GCSStore{
		bucket: client.Bucket(bucketName),
		name:   bucketName,
		logger: logger,
	}
}

func (s *GCSStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		s.logger.Error("artifact write failed", "bucket", s.name, "key", key, "error", err)
		return fmt.Errorf("write artifact %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		s.logger.Error("artifact finalize failed", "bucket", s.name, "key", key, "error", err)
		return fmt.Errorf("finalize artifact %s: %w", key, err)
	}
	s.logger.Debug("artifact written", "bucket", s.name, "key", key, "bytes", len(data))
	return nil
}

func (s *GCSStore) Get(ctx context.Context, key string) ([]byte, error) {
	r, err := s.bucket.Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, common.NewAppError("ARTIFACT_NOT_FOUND", key, common.ErrNotFound)
		}
		return nil, fmt.Errorf("open artifact %s: %w", key, err)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			s.logger.Warn("artifact reader close error", "key", key, "error", cerr)
		}
	}()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", key, err)
	}
	return data, nil
}

func (s *GCSStore) SignedURL(key string, ttl time.Duration) (string, error) {
	url, err := s.bucket.SignedURL(key, &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(ttl),
	})
	if err != nil {
		return "", fmt.Errorf("sign url for %s: %w", key, err)
	}
	return url, nil
}
