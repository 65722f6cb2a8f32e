package storage

import (
	"context"
	"io"
)

// Storage is the minimal contract for photo blob backends.
// Put stores bytes under a key, Delete removes them, GetURL maps a key
// to its public URL. Failures surface verbatim to the caller.
type Storage interface {
	Put(ctx context.Context, key string, reader io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	GetURL(key string) string
}

// Config holds blob storage settings
type Config struct {
	S3Endpoint  string // custom endpoint for MinIO/R2; empty for AWS
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	PublicURL   string // public base URL; falls back to the S3 URL scheme
}
