package submission

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/service/upload"
)

const (
	maxTitleLen   = 200
	maxCaptionLen = 2000
)

// CreateSubmissionInput holds the parameters for appending an already uploaded version.
type CreateSubmissionInput struct {
	Chain           domain.ChainKey
	Flow            domain.Flow
	ContentURL      string
	CleanContentURL *string
	Title           *string
	Caption         *string
	UploadedBy      domain.UploadedBy
}

// Validate checks all fields and collects all errors.
func (i CreateSubmissionInput) Validate() error {
	errs := validateCommon(i.Chain, i.Flow, i.UploadedBy, i.Title, i.Caption)

	if strings.TrimSpace(i.ContentURL) == "" {
		errs = append(errs, domain.FieldError{Field: "content_url", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SubmitInput holds the parameters for uploading and appending a new version.
type SubmitInput struct {
	Chain      domain.ChainKey
	Flow       domain.Flow
	OwnerID    string
	CampaignID string
	Content    upload.File
	// Clean is the optional caption-free copy of Content.
	Clean      *upload.File
	Title      *string
	Caption    *string
	UploadedBy domain.UploadedBy
	// RecipientRef addresses the NewSubmission notification; empty means the application.
	RecipientRef string
	Progress     upload.ProgressFunc
}

// Validate checks the workflow fields. File checks belong to the upload coordinator.
func (i SubmitInput) Validate() error {
	errs := validateCommon(i.Chain, i.Flow, i.UploadedBy, i.Title, i.Caption)

	if strings.TrimSpace(i.OwnerID) == "" {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "required"})
	}
	if strings.TrimSpace(i.CampaignID) == "" {
		errs = append(errs, domain.FieldError{Field: "campaign_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateCommon(chain domain.ChainKey, flow domain.Flow, by domain.UploadedBy, title, caption *string) []domain.FieldError {
	var errs []domain.FieldError

	if err := chain.Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			errs = append(errs, ve.Errors...)
		}
	}
	if flow != "" && !flow.IsValid() {
		errs = append(errs, domain.FieldError{Field: "flow", Message: "must be standard or extended"})
	}
	if !by.IsValid() {
		errs = append(errs, domain.FieldError{Field: "uploaded_by", Message: "must be creator or admin"})
	}
	if title != nil && utf8.RuneCountInString(strings.TrimSpace(*title)) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if caption != nil && utf8.RuneCountInString(strings.TrimSpace(*caption)) > maxCaptionLen {
		errs = append(errs, domain.FieldError{Field: "caption", Message: "max 2000 characters"})
	}

	return errs
}
