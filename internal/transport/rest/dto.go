package rest

import (
	"time"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

type submissionResponse struct {
	ID              string    `json:"id"`
	ApplicationID   string    `json:"applicationId"`
	Slot            string    `json:"slot"`
	Version         int       `json:"version"`
	ContentURL      string    `json:"contentUrl"`
	CleanContentURL *string   `json:"cleanContentUrl,omitempty"`
	Title           *string   `json:"title,omitempty"`
	Caption         *string   `json:"caption,omitempty"`
	Status          string    `json:"status"`
	Feedback        *string   `json:"feedback,omitempty"`
	UploadedBy      string    `json:"uploadedBy"`
	CreatedAt       time.Time `json:"createdAt"`
	SubmittedAt     time.Time `json:"submittedAt"`
}

type boxResponse struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type annotationResponse struct {
	ID               string       `json:"id"`
	SubmissionID     string       `json:"submissionId"`
	Version          int          `json:"version,omitempty"`
	TimestampSeconds float64      `json:"timestampSeconds"`
	Box              *boxResponse `json:"box,omitempty"`
	// DisplayBox is Box, or a stable placeholder position when none was drawn.
	DisplayBox    boxResponse     `json:"displayBox"`
	Text          string          `json:"text"`
	AttachmentURL *string         `json:"attachmentUrl,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	Replies       []replyResponse `json:"replies"`
}

type replyResponse struct {
	ID         string    `json:"id"`
	CommentID  string    `json:"commentId"`
	AuthorID   *string   `json:"authorId,omitempty"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

type auditResponse struct {
	ID        string         `json:"id"`
	UserID    *string        `json:"userId,omitempty"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

func toSubmissionResponse(s *domain.Submission) submissionResponse {
	return submissionResponse{
		ID:              s.ID.String(),
		ApplicationID:   s.ApplicationID.String(),
		Slot:            s.Slot.String(),
		Version:         s.Version,
		ContentURL:      s.ContentURL,
		CleanContentURL: s.CleanContentURL,
		Title:           s.Title,
		Caption:         s.Caption,
		Status:          s.Status.String(),
		Feedback:        s.Feedback,
		UploadedBy:      s.UploadedBy.String(),
		CreatedAt:       s.CreatedAt,
		SubmittedAt:     s.SubmittedAt,
	}
}

func toSubmissionList(list []domain.Submission) []submissionResponse {
	out := make([]submissionResponse, 0, len(list))
	for i := range list {
		out = append(out, toSubmissionResponse(&list[i]))
	}
	return out
}

func toBoxResponse(b domain.Box) boxResponse {
	return boxResponse{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

func toAnnotationResponse(a *domain.Annotation) annotationResponse {
	resp := annotationResponse{
		ID:               a.ID.String(),
		SubmissionID:     a.SubmissionID.String(),
		TimestampSeconds: a.TimestampSeconds,
		DisplayBox:       toBoxResponse(a.DisplayBox()),
		Text:             a.Text,
		AttachmentURL:    a.AttachmentURL,
		CreatedAt:        a.CreatedAt,
		Replies:          make([]replyResponse, 0, len(a.Replies)),
	}
	if a.Box != nil {
		b := toBoxResponse(*a.Box)
		resp.Box = &b
	}
	for i := range a.Replies {
		resp.Replies = append(resp.Replies, toReplyResponse(&a.Replies[i]))
	}
	return resp
}

func toReplyResponse(r *domain.Reply) replyResponse {
	resp := replyResponse{
		ID:         r.ID.String(),
		CommentID:  r.CommentID.String(),
		AuthorName: r.AuthorName,
		Text:       r.Text,
		CreatedAt:  r.CreatedAt,
	}
	if r.AuthorID != nil {
		id := r.AuthorID.String()
		resp.AuthorID = &id
	}
	return resp
}

func toAuditResponse(a *domain.AuditRecord) auditResponse {
	resp := auditResponse{
		ID:        a.ID.String(),
		Action:    a.Action.String(),
		Changes:   a.Changes,
		CreatedAt: a.CreatedAt,
	}
	if a.UserID != nil {
		id := a.UserID.String()
		resp.UserID = &id
	}
	return resp
}
