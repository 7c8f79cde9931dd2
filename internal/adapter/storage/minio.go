// Package storage puts uploaded content into an S3-compatible object store.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/config"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

// Store writes objects to one bucket and resolves their public URLs.
type Store struct {
	client  *minio.Client
	bucket  string
	baseURL *url.URL
}

// New creates a Store from StorageConfig. It does not contact the server.
func New(cfg config.StorageConfig) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: create client: %w", err)
	}

	base, err := url.Parse(cfg.PublicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("storage: parse public base url: %w", err)
	}

	return &Store{client: client, bucket: cfg.Bucket, baseURL: base}, nil
}

// Put streams body to path and returns its public URL.
// partSize > 0 selects multipart upload with parts of that size; 0 puts the
// object in a single request.
func (s *Store) Put(ctx context.Context, path string, body io.Reader, size int64, contentType string, partSize int64) (string, error) {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if partSize > 0 {
		opts.PartSize = uint64(partSize)
		opts.NumThreads = 1
	}

	if _, err := s.client.PutObject(ctx, s.bucket, path, body, size, opts); err != nil {
		return "", mapError(err, path)
	}

	return s.PublicURL(path), nil
}

// Remove deletes the object at path. A missing object is not an error.
func (s *Store) Remove(ctx context.Context, path string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}
		return mapError(err, path)
	}
	return nil
}

// Ping checks that the bucket is reachable.
func (s *Store) Ping(ctx context.Context) error {
	ok, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return mapError(err, s.bucket)
	}
	if !ok {
		return fmt.Errorf("storage: bucket %s: %w", s.bucket, domain.ErrNotFound)
	}
	return nil
}

// PublicURL resolves path against the configured public base URL.
func (s *Store) PublicURL(path string) string {
	return s.baseURL.JoinPath(path).String()
}

// mapError keeps authorization failures recognizable and passes everything else through.
func mapError(err error, path string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("storage: %s: %w", path, err)
	}

	switch minio.ToErrorResponse(err).Code {
	case "AccessDenied", "AllAccessDisabled":
		return fmt.Errorf("storage: %s: %w: %v", path, domain.ErrForbidden, err)
	case "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken":
		return fmt.Errorf("storage: %s: %w: %v", path, domain.ErrUnauthorized, err)
	}
	return fmt.Errorf("storage: %s: %w", path, err)
}
