package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/pkg/ctxutil"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// History returns the audit trail of one submission, newest first. Admin only.
func (s *Service) History(ctx context.Context, submissionID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	if _, err := s.submissions.GetByID(ctx, submissionID); err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}

	records, err := s.audit.GetByEntity(ctx, domain.EntityTypeSubmission, submissionID, limit)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	return records, nil
}
