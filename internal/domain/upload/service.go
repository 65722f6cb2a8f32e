package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/foundit/foundit-api/internal/pkg/imaging"
	"github.com/foundit/foundit-api/internal/pkg/storage"
)

// Service handles report photo uploads. Every image is decoded,
// downscaled and re-encoded before it reaches the blob store, so the
// store only ever holds bounded JPEG files.
type Service struct {
	store     storage.Storage
	processor *imaging.Processor
	maxBytes  int64
}

// NewService creates upload service
func NewService(store storage.Storage, processor *imaging.Processor, maxBytes int64) *Service {
	return &Service{
		store:     store,
		processor: processor,
		maxBytes:  maxBytes,
	}
}

// UploadResult carries the public URL of a stored photo
type UploadResult struct {
	URL string `json:"url"`
}

// Upload validates, processes and stores one image. A failure leaves
// no partial state: the caller only receives a URL once the blob is
// durably stored.
func (s *Service) Upload(ctx context.Context, r io.Reader) (*UploadResult, error) {
	limited := io.LimitReader(r, s.maxBytes+1)
	raw, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(raw)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	processed, err := s.processor.Process(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrInvalidImage
	}

	key := fmt.Sprintf("reports/%s.jpg", uuid.New().String())
	if err := s.store.Put(ctx, key, bytes.NewReader(processed), "image/jpeg"); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to store upload")
		return nil, ErrStoreFailed
	}

	return &UploadResult{URL: s.store.GetURL(key)}, nil
}

// Remove deletes a previously uploaded photo given its public URL.
// URLs outside the upload keyspace are ignored so reports carrying
// externally hosted photos never trigger a store call.
func (s *Service) Remove(ctx context.Context, url string) error {
	idx := strings.Index(url, "reports/")
	if idx == -1 {
		return nil
	}
	return s.store.Delete(ctx, url[idx:])
}
