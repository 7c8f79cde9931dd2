package submission

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

// CreateSubmission appends a new version to the chain.
//
// Under the chain lock it checks the approved-terminal policy and the flow's
// version ceiling, supersedes the previous version when it is still open and
// inserts the new one as submitted. Either all of it commits or none of it does.
func (s *Service) CreateSubmission(ctx context.Context, input CreateSubmissionInput) (*domain.Submission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	flow := input.Flow
	if flow == "" {
		flow = domain.FlowStandard
	}
	chain := input.Chain

	var (
		created    *domain.Submission
		superseded *domain.Submission
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.submissions.LockChain(txCtx, chain); err != nil {
			return fmt.Errorf("lock chain: %w", err)
		}

		current, err := s.submissions.GetCurrent(txCtx, chain)
		if err != nil {
			return fmt.Errorf("get current: %w", err)
		}

		next, err := s.checkAppend(chain, flow, current)
		if err != nil {
			return err
		}

		if current != nil && !current.Status.IsTerminal() {
			superseded, err = s.markSuperseded(txCtx, *current)
			if err != nil {
				return err
			}
		}

		now := s.now().UTC()
		created, err = s.submissions.Create(txCtx, domain.Submission{
			ID:              uuid.New(),
			ApplicationID:   chain.ApplicationID,
			Slot:            chain.Slot,
			Version:         next,
			ContentURL:      strings.TrimSpace(input.ContentURL),
			CleanContentURL: trimOrNil(input.CleanContentURL),
			Title:           trimOrNil(input.Title),
			Caption:         trimOrNil(input.Caption),
			Status:          domain.SubmissionStatusSubmitted,
			UploadedBy:      input.UploadedBy,
			CreatedAt:       now,
			SubmittedAt:     now,
		})
		if err != nil {
			return fmt.Errorf("create submission: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     actor(txCtx),
			EntityType: domain.EntityTypeSubmission,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"chain":       chain.String(),
				"version":     map[string]any{"new": created.Version},
				"uploaded_by": map[string]any{"new": created.UploadedBy.String()},
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

	attrs := []any{
		slog.String("chain", chain.String()),
		slog.String("submission_id", created.ID.String()),
		slog.Int("version", created.Version),
		slog.String("uploaded_by", created.UploadedBy.String()),
	}
	if superseded != nil {
		attrs = append(attrs, slog.String("superseded_id", superseded.ID.String()))
	}
	s.log.InfoContext(ctx, "submission created", attrs...)

	return created, nil
}

// markSuperseded moves prev to superseded with a compare-and-swap on its
// current status and audits the transition. Must run inside the chain lock.
func (s *Service) markSuperseded(ctx context.Context, prev domain.Submission) (*domain.Submission, error) {
	if err := domain.CheckTransition(prev.Status, domain.SubmissionStatusSuperseded); err != nil {
		return nil, err
	}

	updated, err := s.submissions.UpdateStatus(ctx, domain.StatusUpdateParams{
		ID:   prev.ID,
		From: prev.Status,
		To:   domain.SubmissionStatusSuperseded,
	})
	if err != nil {
		return nil, fmt.Errorf("supersede version %d: %w", prev.Version, err)
	}

	auditErr := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     actor(ctx),
		EntityType: domain.EntityTypeSubmission,
		EntityID:   prev.ID,
		Action:     domain.AuditActionTransition,
		Changes: map[string]any{
			"status": map[string]any{"old": prev.Status.String(), "new": updated.Status.String()},
		},
	})
	if auditErr != nil {
		return nil, fmt.Errorf("audit log: %w", auditErr)
	}

	return updated, nil
}
