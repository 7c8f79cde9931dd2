package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/service/upload"
)

// Submit uploads the content (and the optional clean copy) and appends it to
// the chain as a new version.
//
// The ceiling and the approved-terminal policy are checked before any bytes
// are sent, and again under the chain lock. When the chain write fails the
// uploaded objects are removed, so a cancelled or rejected submit leaves no
// record behind. A NewSubmission notification follows a successful write.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Submission, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	flow := input.Flow
	if flow == "" {
		flow = domain.FlowStandard
	}

	current, err := s.submissions.GetCurrent(ctx, input.Chain)
	if err != nil {
		return nil, fmt.Errorf("get current: %w", err)
	}
	next, err := s.checkAppend(input.Chain, flow, current)
	if err != nil {
		return nil, err
	}

	target := upload.Target{
		OwnerID:    input.OwnerID,
		CampaignID: input.CampaignID,
		Version:    next,
		UploadedBy: input.UploadedBy,
	}

	content, err := s.uploads.Upload(ctx, input.Content, target, input.Progress)
	if err != nil {
		return nil, fmt.Errorf("upload content: %w", err)
	}
	uploaded := []string{content.Path}

	var cleanURL *string
	if input.Clean != nil {
		cleanTarget := target
		cleanTarget.Category = s.cleanCategory

		clean, err := s.uploads.Upload(ctx, *input.Clean, cleanTarget, nil)
		if err != nil {
			s.removeUploads(ctx, uploaded)
			return nil, fmt.Errorf("upload clean content: %w", err)
		}
		uploaded = append(uploaded, clean.Path)
		cleanURL = &clean.URL
	}

	created, err := s.CreateSubmission(ctx, CreateSubmissionInput{
		Chain:           input.Chain,
		Flow:            flow,
		ContentURL:      content.URL,
		CleanContentURL: cleanURL,
		Title:           input.Title,
		Caption:         input.Caption,
		UploadedBy:      input.UploadedBy,
	})
	if err != nil {
		s.removeUploads(ctx, uploaded)
		return nil, err
	}

	event := domain.NewSubmissionEvent(domain.NotificationNewSubmission, *created,
		input.RecipientRef, s.notify.TemplateNewSubmission, s.now().UTC())
	if created.Title != nil {
		event.Variables["title"] = *created.Title
	}
	s.dispatch(ctx, event)

	return created, nil
}

// removeUploads deletes objects whose submission record was never written.
// It runs even when ctx is already cancelled.
func (s *Service) removeUploads(ctx context.Context, paths []string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	var errs []error
	for _, p := range paths {
		if err := s.uploads.Remove(ctx, p); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		s.log.WarnContext(ctx, "orphaned upload cleanup failed",
			slog.Any("paths", paths),
			slog.String("error", err.Error()),
		)
	}
}
