package annotation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/pkg/ctxutil"
)

// AddComment leaves a timestamp-anchored comment on a submission.
// Only the current version of a chain accepts comments; commenting on an
// older or superseded version fails with domain.ErrConflict.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (*domain.Annotation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var comment *domain.Annotation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		sub, err := s.submissions.GetByID(txCtx, input.SubmissionID)
		if err != nil {
			return fmt.Errorf("get submission: %w", err)
		}

		// Shared with CreateSubmission so a new version cannot land mid-check.
		if err := s.submissions.LockChain(txCtx, sub.Chain()); err != nil {
			return fmt.Errorf("lock chain: %w", err)
		}

		current, err := s.submissions.GetCurrent(txCtx, sub.Chain())
		if err != nil {
			return fmt.Errorf("get current: %w", err)
		}
		if current == nil || current.ID != sub.ID || current.Status == domain.SubmissionStatusSuperseded {
			return fmt.Errorf("submission %s (version %d) is not the current version: %w",
				sub.ID, sub.Version, domain.ErrConflict)
		}

		comment, err = s.annotations.CreateComment(txCtx, domain.Annotation{
			ID:               uuid.New(),
			SubmissionID:     sub.ID,
			TimestampSeconds: input.TimestampSeconds,
			Box:              input.box(),
			Text:             strings.TrimSpace(input.Text),
			AttachmentURL:    trimOrNil(input.AttachmentURL),
			CreatedAt:        s.now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("user_id", userID.String()),
		slog.String("submission_id", comment.SubmissionID.String()),
		slog.String("comment_id", comment.ID.String()),
		slog.Float64("timestamp_seconds", comment.TimestampSeconds),
	)

	return comment, nil
}

// DeleteComment hard-deletes a comment and its replies. Admin only.
func (s *Service) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if commentID == uuid.Nil {
		return domain.NewValidationError("comment_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		comment, err := s.annotations.GetComment(txCtx, commentID)
		if err != nil {
			return fmt.Errorf("get comment: %w", err)
		}

		if err := s.annotations.DeleteComment(txCtx, commentID); err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}

		return s.logDelete(txCtx, userID, domain.EntityTypeComment, commentID, map[string]any{
			"submission_id": comment.SubmissionID.String(),
			"text":          map[string]any{"old": comment.Text},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("user_id", userID.String()),
		slog.String("comment_id", commentID.String()),
	)
	return nil
}

// ListComments returns a submission's comments ordered by timestamp, ties by
// creation time, each with its replies in insertion order. An unknown
// submission is domain.ErrNotFound.
func (s *Service) ListComments(ctx context.Context, submissionID uuid.UUID) ([]domain.Annotation, error) {
	if submissionID == uuid.Nil {
		return nil, domain.NewValidationError("submission_id", "required")
	}

	if _, err := s.submissions.GetByID(ctx, submissionID); err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}

	comments, err := s.annotations.ListBySubmission(ctx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *Service) logDelete(ctx context.Context, userID uuid.UUID, entity domain.EntityType, id uuid.UUID, changes map[string]any) error {
	err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     &userID,
		EntityType: entity,
		EntityID:   id,
		Action:     domain.AuditActionDelete,
		Changes:    changes,
	})
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}
