package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/pkg/ctxutil"
)

// Reopen is the admin override that moves a reviewed version back to
// submitted so it can be reviewed again. Only the current version of a chain
// can be reopened, and only from approved or revision_requested. The reason
// is kept in the audit log. No notification is sent.
func (s *Service) Reopen(ctx context.Context, input ReopenInput) (*domain.Submission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(input.Reason)

	var (
		from    domain.SubmissionStatus
		updated *domain.Submission
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		target, err := s.submissions.GetByID(txCtx, input.SubmissionID)
		if err != nil {
			return fmt.Errorf("get submission: %w", err)
		}

		// Hold the chain so no new version lands while we reopen this one.
		if err := s.submissions.LockChain(txCtx, target.Chain()); err != nil {
			return fmt.Errorf("lock chain: %w", err)
		}

		current, err := s.submissions.GetCurrent(txCtx, target.Chain())
		if err != nil {
			return fmt.Errorf("get current: %w", err)
		}
		if current == nil || current.ID != target.ID {
			return domain.NewValidationError("submission_id", "only the current version can be reopened")
		}

		from = current.Status
		if !domain.CanReopen(from) {
			return &domain.TransitionError{From: from, To: domain.SubmissionStatusSubmitted}
		}

		updated, err = s.submissions.UpdateStatus(txCtx, domain.StatusUpdateParams{
			ID:   target.ID,
			From: from,
			To:   domain.SubmissionStatusSubmitted,
		})
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     &userID,
			EntityType: domain.EntityTypeSubmission,
			EntityID:   target.ID,
			Action:     domain.AuditActionOverride,
			Changes: map[string]any{
				"status": map[string]any{"old": from.String(), "new": domain.SubmissionStatusSubmitted.String()},
				"reason": reason,
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WarnContext(ctx, "submission reopened by admin",
		slog.String("admin_id", userID.String()),
		slog.String("submission_id", updated.ID.String()),
		slog.String("from", from.String()),
		slog.String("reason", reason),
	)

	return updated, nil
}
