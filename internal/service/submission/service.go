// Package submission manages version chains: one ordered list of uploaded
// submissions per (application, slot).
package submission

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/config"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/service/upload"
	"github.com/mktbiz-byte/cnec-kr-sub001/pkg/ctxutil"
)

type submissionRepo interface {
	LockChain(ctx context.Context, chain domain.ChainKey) error
	MaxVersion(ctx context.Context, chain domain.ChainKey) (int, error)
	GetCurrent(ctx context.Context, chain domain.ChainKey) (*domain.Submission, error)
	ListChain(ctx context.Context, chain domain.ChainKey) ([]domain.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	Create(ctx context.Context, s domain.Submission) (*domain.Submission, error)
	UpdateStatus(ctx context.Context, p domain.StatusUpdateParams) (*domain.Submission, error)
}

type uploader interface {
	Upload(ctx context.Context, file upload.File, target upload.Target, progress upload.ProgressFunc) (domain.ContentLocation, error)
	Remove(ctx context.Context, path string) error
}

type notifier interface {
	Dispatch(ctx context.Context, event domain.NotificationEvent) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// cleanupTimeout bounds the removal of orphaned uploads after a failed chain write.
const cleanupTimeout = 30 * time.Second

// Service provides version chain operations.
type Service struct {
	submissions   submissionRepo
	uploads       uploader
	notifier      notifier
	audit         auditLogger
	tx            txManager
	chain         config.ChainConfig
	notify        config.NotifyConfig
	cleanCategory string
	now           func() time.Time
	log           *slog.Logger
}

// NewService creates a new Submission service.
func NewService(
	log *slog.Logger,
	submissions submissionRepo,
	uploads uploader,
	notifier notifier,
	audit auditLogger,
	tx txManager,
	chain config.ChainConfig,
	uploadCfg config.UploadConfig,
	notifyCfg config.NotifyConfig,
) *Service {
	return &Service{
		submissions:   submissions,
		uploads:       uploads,
		notifier:      notifier,
		audit:         audit,
		tx:            tx,
		chain:         chain,
		notify:        notifyCfg,
		cleanCategory: uploadCfg.CleanCategory,
		now:           time.Now,
		log:           log.With("service", "submission"),
	}
}

// Ceiling returns the maximum version allowed for the flow.
func (s *Service) Ceiling(flow domain.Flow) int {
	if flow == domain.FlowExtended {
		return s.chain.ExtendedCeiling
	}
	return s.chain.StandardCeiling
}

// checkAppend decides whether a new version may follow current, the chain's
// highest version (nil for an empty chain), and returns its number.
func (s *Service) checkAppend(chain domain.ChainKey, flow domain.Flow, current *domain.Submission) (int, error) {
	if current == nil {
		return 1, nil
	}
	if current.Status == domain.SubmissionStatusApproved {
		return 0, fmt.Errorf("chain %s: version %d is approved: %w", chain, current.Version, domain.ErrChainClosed)
	}
	next := current.Version + 1
	if ceiling := s.Ceiling(flow); next > ceiling {
		return 0, &domain.CeilingError{Chain: chain, Next: next, Ceiling: ceiling}
	}
	return next, nil
}

// dispatch hands event to the notifier after the workflow step is committed.
// Failures are logged and never returned.
func (s *Service) dispatch(ctx context.Context, event domain.NotificationEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notify.Timeout)
	defer cancel()

	if err := s.notifier.Dispatch(ctx, event); err != nil {
		s.log.ErrorContext(ctx, "notification dispatch failed",
			slog.String("event_id", event.ID.String()),
			slog.String("kind", event.Kind.String()),
			slog.String("submission_id", event.SubmissionID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// actor returns the authenticated user for audit records, if any.
func actor(ctx context.Context) *uuid.UUID {
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return &id
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
