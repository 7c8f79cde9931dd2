// Package review drives submission status through the review workflow.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/config"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/pkg/ctxutil"
)

type submissionRepo interface {
	LockChain(ctx context.Context, chain domain.ChainKey) error
	GetCurrent(ctx context.Context, chain domain.ChainKey) (*domain.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	UpdateStatus(ctx context.Context, p domain.StatusUpdateParams) (*domain.Submission, error)
}

type notifier interface {
	Dispatch(ctx context.Context, event domain.NotificationEvent) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service applies review decisions to submissions.
type Service struct {
	submissions submissionRepo
	notifier    notifier
	audit       auditLogger
	tx          txManager
	notify      config.NotifyConfig
	now         func() time.Time
	log         *slog.Logger
}

// NewService creates a new Review service.
func NewService(
	log *slog.Logger,
	submissions submissionRepo,
	notifier notifier,
	audit auditLogger,
	tx txManager,
	notifyCfg config.NotifyConfig,
) *Service {
	return &Service{
		submissions: submissions,
		notifier:    notifier,
		audit:       audit,
		tx:          tx,
		notify:      notifyCfg,
		now:         time.Now,
		log:         log.With("service", "review"),
	}
}

// dispatch hands event to the notifier once the transition is committed.
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

func actor(ctx context.Context) *uuid.UUID {
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return &id
	}
	return nil
}
