package upload

import (
	"fmt"
	"io"
	"strings"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/config"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

// File is a content file to upload. Size must be the exact length of Body.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Validate checks the media type and the size limit for the uploader.
func (f File) Validate(cfg config.UploadConfig, by domain.UploadedBy) error {
	var errs []domain.FieldError

	contentType := strings.ToLower(strings.TrimSpace(f.ContentType))
	if contentType == "" {
		errs = append(errs, domain.FieldError{Field: "content_type", Message: "required"})
	} else if !hasAllowedPrefix(contentType, cfg.MIMEPrefixes()) {
		errs = append(errs, domain.FieldError{Field: "content_type", Message: "unsupported media type " + contentType})
	}

	limit := cfg.CreatorMaxBytes
	if by == domain.UploadedByAdmin {
		limit = cfg.AdminMaxBytes
	}
	switch {
	case f.Size <= 0:
		errs = append(errs, domain.FieldError{Field: "size", Message: "must be positive"})
	case f.Size > limit:
		errs = append(errs, domain.FieldError{Field: "size", Message: fmt.Sprintf("exceeds limit of %d bytes", limit)})
	}

	if f.Body == nil {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Target says whose content this is and where it goes.
type Target struct {
	OwnerID    string
	CampaignID string
	// Version is embedded in the object name when > 0.
	Version int
	// Category is the top-level folder; empty means the configured content category.
	Category   string
	UploadedBy domain.UploadedBy
}

// Validate checks all fields and collects all errors.
func (t Target) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(t.OwnerID) == "" {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "required"})
	}
	if strings.TrimSpace(t.CampaignID) == "" {
		errs = append(errs, domain.FieldError{Field: "campaign_id", Message: "required"})
	}
	if t.Version < 0 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "must be non-negative"})
	}
	if !t.UploadedBy.IsValid() {
		errs = append(errs, domain.FieldError{Field: "uploaded_by", Message: "must be creator or admin"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func hasAllowedPrefix(contentType string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(contentType, p) {
			return true
		}
	}
	return false
}
