package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

// RequestRevision moves a submitted version to revision_requested and stores
// the reviewer's feedback. The creator is notified after commit.
func (s *Service) RequestRevision(ctx context.Context, input RequestRevisionInput) (*domain.Submission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	feedback := strings.TrimSpace(input.Feedback)
	updated, err := s.transition(ctx, input.SubmissionID, domain.SubmissionStatusRevisionRequested, &feedback)
	if err != nil {
		return nil, err
	}

	event := domain.NewSubmissionEvent(domain.NotificationRevisionRequested, *updated,
		input.RecipientRef, s.notify.TemplateRevisionRequested, s.now().UTC())
	event.Variables["feedback"] = feedback
	s.dispatch(ctx, event)

	return updated, nil
}

// Approve moves a submitted version to approved, which closes its chain.
// The creator is notified after commit.
func (s *Service) Approve(ctx context.Context, input ApproveInput) (*domain.Submission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.transition(ctx, input.SubmissionID, domain.SubmissionStatusApproved, nil)
	if err != nil {
		return nil, err
	}

	event := domain.NewSubmissionEvent(domain.NotificationApproved, *updated,
		input.RecipientRef, s.notify.TemplateApproved, s.now().UTC())
	s.dispatch(ctx, event)

	return updated, nil
}

// transition applies a workflow transition with a compare-and-swap on the
// status read at the start, so of two concurrent reviewers only one wins.
func (s *Service) transition(ctx context.Context, id uuid.UUID, to domain.SubmissionStatus, feedback *string) (*domain.Submission, error) {
	var (
		from    domain.SubmissionStatus
		updated *domain.Submission
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.submissions.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get submission: %w", err)
		}
		from = current.Status

		if err := domain.CheckTransition(from, to); err != nil {
			return err
		}

		updated, err = s.submissions.UpdateStatus(txCtx, domain.StatusUpdateParams{
			ID:       id,
			From:     from,
			To:       to,
			Feedback: feedback,
		})
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		changes := map[string]any{
			"status": map[string]any{"old": from.String(), "new": to.String()},
		}
		if feedback != nil {
			changes["feedback"] = map[string]any{"new": *feedback}
		}
		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor(txCtx),
			EntityType: domain.EntityTypeSubmission,
			EntityID:   id,
			Action:     domain.AuditActionTransition,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "submission status changed",
		slog.String("submission_id", id.String()),
		slog.String("chain", updated.Chain().String()),
		slog.Int("version", updated.Version),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	return updated, nil
}
