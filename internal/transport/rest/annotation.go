package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/service/annotation"
)

type annotationService interface {
	AddComment(ctx context.Context, input annotation.AddCommentInput) (*domain.Annotation, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) error
	ListComments(ctx context.Context, submissionID uuid.UUID) ([]domain.Annotation, error)
	ListChainComments(ctx context.Context, chain domain.ChainKey) ([]domain.VersionedAnnotation, error)
	AddReply(ctx context.Context, input annotation.AddReplyInput) (*domain.Reply, error)
	DeleteReply(ctx context.Context, replyID uuid.UUID) error
}

// AnnotationHandler serves timestamped comments and their replies.
type AnnotationHandler struct {
	svc annotationService
	log *slog.Logger
}

// NewAnnotationHandler creates an AnnotationHandler.
func NewAnnotationHandler(svc annotationService, logger *slog.Logger) *AnnotationHandler {
	return &AnnotationHandler{svc: svc, log: logger.With("handler", "annotation")}
}

type boxRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type addCommentRequest struct {
	TimestampSeconds float64     `json:"timestampSeconds"`
	DurationSeconds  *float64    `json:"durationSeconds"`
	Box              *boxRequest `json:"box"`
	Text             string      `json:"text"`
	AttachmentURL    *string     `json:"attachmentUrl"`
}

type addReplyRequest struct {
	AuthorName string `json:"authorName"`
	Text       string `json:"text"`
}

// AddComment handles POST /v1/submissions/{submissionID}/comments.
func (h *AnnotationHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "submissionID", "submission_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req addCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := annotation.AddCommentInput{
		SubmissionID:     id,
		TimestampSeconds: req.TimestampSeconds,
		DurationSeconds:  req.DurationSeconds,
		Text:             req.Text,
		AttachmentURL:    req.AttachmentURL,
	}
	if req.Box != nil {
		input.BoxX = &req.Box.X
		input.BoxY = &req.Box.Y
		input.BoxWidth = &req.Box.Width
		input.BoxHeight = &req.Box.Height
	}

	created, err := h.svc.AddComment(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAnnotationResponse(created))
}

// ListComments handles GET /v1/submissions/{submissionID}/comments.
func (h *AnnotationHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "submissionID", "submission_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	list, err := h.svc.ListComments(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]annotationResponse, 0, len(list))
	for i := range list {
		out = append(out, toAnnotationResponse(&list[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// ListChainComments handles GET /v1/applications/{applicationID}/slots/{slot}/comments.
func (h *AnnotationHandler) ListChainComments(w http.ResponseWriter, r *http.Request) {
	chain, err := chainParam(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	list, err := h.svc.ListChainComments(r.Context(), chain)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]annotationResponse, 0, len(list))
	for i := range list {
		resp := toAnnotationResponse(&list[i].Annotation)
		resp.Version = list[i].Version
		out = append(out, resp)
	}
	writeJSON(w, http.StatusOK, out)
}

// DeleteComment handles DELETE /v1/comments/{commentID}.
func (h *AnnotationHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "commentID", "comment_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteComment(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddReply handles POST /v1/comments/{commentID}/replies.
func (h *AnnotationHandler) AddReply(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "commentID", "comment_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req addReplyRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.AddReply(r.Context(), annotation.AddReplyInput{
		CommentID:  id,
		AuthorName: req.AuthorName,
		Text:       req.Text,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReplyResponse(created))
}

// DeleteReply handles DELETE /v1/replies/{replyID}.
func (h *AnnotationHandler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "replyID", "reply_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteReply(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
