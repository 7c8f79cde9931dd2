package annotation

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

const (
	maxCommentLen    = 2000
	maxReplyLen      = 2000
	maxAuthorNameLen = 100
)

// AddCommentInput holds the parameters for annotating a submission.
type AddCommentInput struct {
	SubmissionID     uuid.UUID
	TimestampSeconds float64
	// DurationSeconds is the client-reported media length. When set, the
	// timestamp must not exceed it.
	DurationSeconds *float64

	// Box coordinates are normalized to [0, 1]; set all four or none.
	BoxX      *float64
	BoxY      *float64
	BoxWidth  *float64
	BoxHeight *float64

	Text          string
	AttachmentURL *string
}

// Validate checks all fields and collects all errors.
func (i AddCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.SubmissionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "submission_id", Message: "required"})
	}

	ts := i.TimestampSeconds
	switch {
	case math.IsNaN(ts) || math.IsInf(ts, 0):
		errs = append(errs, domain.FieldError{Field: "timestamp_seconds", Message: "must be a finite number"})
	case ts < 0:
		errs = append(errs, domain.FieldError{Field: "timestamp_seconds", Message: "must be non-negative"})
	case i.DurationSeconds != nil:
		d := *i.DurationSeconds
		if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
			errs = append(errs, domain.FieldError{Field: "duration_seconds", Message: "must be a positive finite number"})
		} else if ts > d {
			errs = append(errs, domain.FieldError{Field: "timestamp_seconds", Message: "must not exceed the media duration"})
		}
	}

	errs = append(errs, i.validateBox()...)

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if utf8.RuneCountInString(text) > maxCommentLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i AddCommentInput) validateBox() []domain.FieldError {
	fields := []struct {
		name string
		v    *float64
	}{
		{"box_x", i.BoxX}, {"box_y", i.BoxY}, {"box_width", i.BoxWidth}, {"box_height", i.BoxHeight},
	}

	set := 0
	for _, f := range fields {
		if f.v != nil {
			set++
		}
	}
	if set == 0 {
		return nil
	}
	if set != len(fields) {
		return []domain.FieldError{{Field: "box", Message: "set all of x, y, width, height or none"}}
	}

	var errs []domain.FieldError
	for _, f := range fields {
		if v := *f.v; math.IsNaN(v) || v < 0 || v > 1 {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "must be within [0, 1]"})
		}
	}
	return errs
}

// box returns the validated box, or nil when none was given.
func (i AddCommentInput) box() *domain.Box {
	if i.BoxX == nil {
		return nil
	}
	return &domain.Box{X: *i.BoxX, Y: *i.BoxY, Width: *i.BoxWidth, Height: *i.BoxHeight}
}

// AddReplyInput holds the parameters for replying to a comment.
type AddReplyInput struct {
	CommentID  uuid.UUID
	AuthorName string
	Text       string
}

// Validate checks all fields and collects all errors.
func (i AddReplyInput) Validate() error {
	var errs []domain.FieldError

	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}

	name := strings.TrimSpace(i.AuthorName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "author_name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxAuthorNameLen {
		errs = append(errs, domain.FieldError{Field: "author_name", Message: "max 100 characters"})
	}

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if utf8.RuneCountInString(text) > maxReplyLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
