package submission

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

// NextVersion returns the version number the next upload to chain would get:
// 1 for an empty chain, otherwise the highest version plus one.
func (s *Service) NextVersion(ctx context.Context, chain domain.ChainKey) (int, error) {
	if err := chain.Validate(); err != nil {
		return 0, err
	}

	latest, err := s.submissions.MaxVersion(ctx, chain)
	if err != nil {
		return 0, fmt.Errorf("max version: %w", err)
	}
	return latest + 1, nil
}

// CheckAppend reports whether chain accepts a new version under flow, using
// the same rule as Submit: nil, an error matching domain.ErrChainClosed, or a
// *domain.CeilingError. An empty flow means standard.
func (s *Service) CheckAppend(ctx context.Context, chain domain.ChainKey, flow domain.Flow) error {
	if err := chain.Validate(); err != nil {
		return err
	}
	if flow == "" {
		flow = domain.FlowStandard
	}

	current, err := s.submissions.GetCurrent(ctx, chain)
	if err != nil {
		return fmt.Errorf("get current: %w", err)
	}
	_, err = s.checkAppend(chain, flow, current)
	return err
}

// GetCurrent returns the highest version of chain regardless of status,
// or nil for an empty chain.
func (s *Service) GetCurrent(ctx context.Context, chain domain.ChainKey) (*domain.Submission, error) {
	if err := chain.Validate(); err != nil {
		return nil, err
	}

	current, err := s.submissions.GetCurrent(ctx, chain)
	if err != nil {
		return nil, fmt.Errorf("get current: %w", err)
	}
	return current, nil
}

// ListChain returns every version of chain in ascending version order.
func (s *Service) ListChain(ctx context.Context, chain domain.ChainKey) ([]domain.Submission, error) {
	if err := chain.Validate(); err != nil {
		return nil, err
	}

	list, err := s.submissions.ListChain(ctx, chain)
	if err != nil {
		return nil, fmt.Errorf("list chain: %w", err)
	}
	return list, nil
}

// GetSubmission returns one submission by ID.
func (s *Service) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("submission_id", "required")
	}

	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return sub, nil
}
