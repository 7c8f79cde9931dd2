package review

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

const (
	maxFeedbackLen = 5000
	maxReasonLen   = 1000
)

// RequestRevisionInput holds the parameters for sending a submission back to the creator.
type RequestRevisionInput struct {
	SubmissionID uuid.UUID
	Feedback     string
	// RecipientRef addresses the notification; empty means the application.
	RecipientRef string
}

// Validate checks all fields and collects all errors.
func (i RequestRevisionInput) Validate() error {
	var errs []domain.FieldError

	if i.SubmissionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "submission_id", Message: "required"})
	}

	feedback := strings.TrimSpace(i.Feedback)
	if feedback == "" {
		errs = append(errs, domain.FieldError{Field: "feedback", Message: "required"})
	}
	if utf8.RuneCountInString(feedback) > maxFeedbackLen {
		errs = append(errs, domain.FieldError{Field: "feedback", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ApproveInput holds the parameters for approving a submission.
type ApproveInput struct {
	SubmissionID uuid.UUID
	RecipientRef string
}

// Validate checks all fields and collects all errors.
func (i ApproveInput) Validate() error {
	if i.SubmissionID == uuid.Nil {
		return domain.NewValidationError("submission_id", "required")
	}
	return nil
}

// ReopenInput holds the parameters for an admin override back to submitted.
type ReopenInput struct {
	SubmissionID uuid.UUID
	Reason       string
}

// Validate checks all fields and collects all errors.
func (i ReopenInput) Validate() error {
	var errs []domain.FieldError

	if i.SubmissionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "submission_id", Message: "required"})
	}

	reason := strings.TrimSpace(i.Reason)
	if reason == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	}
	if utf8.RuneCountInString(reason) > maxReasonLen {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
