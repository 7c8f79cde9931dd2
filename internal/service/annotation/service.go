// Package annotation manages timestamp-anchored review comments and their reply threads.
package annotation

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

type annotationRepo interface {
	CreateComment(ctx context.Context, a domain.Annotation) (*domain.Annotation, error)
	GetComment(ctx context.Context, id uuid.UUID) (*domain.Annotation, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
	ListBySubmission(ctx context.Context, submissionID uuid.UUID) ([]domain.Annotation, error)
	CreateReply(ctx context.Context, reply domain.Reply) (*domain.Reply, error)
	GetReply(ctx context.Context, id uuid.UUID) (*domain.Reply, error)
	DeleteReply(ctx context.Context, id uuid.UUID) error
}

type submissionRepo interface {
	LockChain(ctx context.Context, chain domain.ChainKey) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	GetCurrent(ctx context.Context, chain domain.ChainKey) (*domain.Submission, error)
	ListChain(ctx context.Context, chain domain.ChainKey) ([]domain.Submission, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// chainReadConcurrency caps the per-version reads of ListChainComments.
const chainReadConcurrency = 4

// Service provides annotation operations.
type Service struct {
	annotations annotationRepo
	submissions submissionRepo
	audit       auditLogger
	tx          txManager
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new Annotation service.
func NewService(
	log *slog.Logger,
	annotations annotationRepo,
	submissions submissionRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		annotations: annotations,
		submissions: submissions,
		audit:       audit,
		tx:          tx,
		log:         log.With("service", "annotation"),
		now:         time.Now,
	}
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
