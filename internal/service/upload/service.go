// Package upload validates content files and transfers them to object storage.
// It never touches workflow state.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/config"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

type objectStore interface {
	Put(ctx context.Context, path string, body io.Reader, size int64, contentType string, partSize int64) (string, error)
	Remove(ctx context.Context, path string) error
}

// ProgressFunc receives the uploaded fraction in [0, 1].
type ProgressFunc func(fraction float64)

// Coordinator uploads content files.
type Coordinator struct {
	store objectStore
	cfg   config.UploadConfig
	now   func() time.Time
	log   *slog.Logger
}

// NewCoordinator creates a new upload Coordinator.
func NewCoordinator(
	log *slog.Logger,
	store objectStore,
	cfg config.UploadConfig,
) *Coordinator {
	return &Coordinator{
		store: store,
		cfg:   cfg,
		now:   time.Now,
		log:   log.With("service", "upload"),
	}
}

// Upload validates file against the uploader's limits and streams it to storage.
//
// Files above the chunk threshold go up in parts of the configured chunk size,
// with progress reported once per part. Smaller files go up in one request and
// report 1.0 on completion. Storage authorization errors are returned unchanged;
// every other storage failure, cancellation included, is a *domain.TransferError.
func (c *Coordinator) Upload(ctx context.Context, file File, target Target, progress ProgressFunc) (domain.ContentLocation, error) {
	if err := file.Validate(c.cfg, target.UploadedBy); err != nil {
		return domain.ContentLocation{}, err
	}
	if err := target.Validate(); err != nil {
		return domain.ContentLocation{}, err
	}
	if progress == nil {
		progress = func(float64) {}
	}

	category := target.Category
	if category == "" {
		category = c.cfg.ContentCategory
	}
	path := objectPath(category, target, file, c.now())

	if err := ctx.Err(); err != nil {
		return domain.ContentLocation{}, &domain.TransferError{Path: path, Err: err}
	}

	start := time.Now()
	body := file.Body
	var partSize int64
	if file.Size > c.cfg.ChunkThresholdBytes {
		partSize = c.cfg.ChunkSizeBytes
		body = newProgressReader(ctx, file.Body, file.Size, partSize, progress)
	}

	url, err := c.store.Put(ctx, path, body, file.Size, file.ContentType, partSize)
	if err != nil {
		return domain.ContentLocation{}, c.transferError(ctx, path, err)
	}

	progress(1.0)

	c.log.InfoContext(ctx, "content uploaded",
		slog.String("path", path),
		slog.Int64("size", file.Size),
		slog.Bool("chunked", partSize > 0),
		slog.Duration("took", time.Since(start)),
	)

	return domain.ContentLocation{Path: path, URL: url}, nil
}

// Remove deletes an uploaded object. Used to clean up content whose
// submission record could not be written.
func (c *Coordinator) Remove(ctx context.Context, path string) error {
	if path == "" {
		return domain.NewValidationError("path", "required")
	}
	if err := c.store.Remove(ctx, path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	c.log.InfoContext(ctx, "content removed", slog.String("path", path))
	return nil
}

func (c *Coordinator) transferError(ctx context.Context, path string, err error) error {
	if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrUnauthorized) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		c.log.InfoContext(ctx, "upload cancelled", slog.String("path", path))
		return &domain.TransferError{Path: path, Err: ctxErr}
	}
	c.log.WarnContext(ctx, "upload failed",
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
	return &domain.TransferError{Path: path, Err: err}
}
