package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/service/review"
)

type reviewService interface {
	RequestRevision(ctx context.Context, input review.RequestRevisionInput) (*domain.Submission, error)
	Approve(ctx context.Context, input review.ApproveInput) (*domain.Submission, error)
	Reopen(ctx context.Context, input review.ReopenInput) (*domain.Submission, error)
	History(ctx context.Context, submissionID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

// ReviewHandler serves reviewer decisions on submissions.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type requestRevisionRequest struct {
	Feedback     string `json:"feedback"`
	RecipientRef string `json:"recipientRef"`
}

type approveRequest struct {
	RecipientRef string `json:"recipientRef"`
}

type reopenRequest struct {
	Reason string `json:"reason"`
}

// RequestRevision handles POST /v1/submissions/{submissionID}/revision-request.
func (h *ReviewHandler) RequestRevision(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "submissionID", "submission_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req requestRevisionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.RequestRevision(r.Context(), review.RequestRevisionInput{
		SubmissionID: id,
		Feedback:     req.Feedback,
		RecipientRef: req.RecipientRef,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(updated))
}

// Approve handles POST /v1/submissions/{submissionID}/approve. The body is optional.
func (h *ReviewHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "submissionID", "submission_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req approveRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			handleError(w, r, h.log, err)
			return
		}
	}

	updated, err := h.svc.Approve(r.Context(), review.ApproveInput{
		SubmissionID: id,
		RecipientRef: req.RecipientRef,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(updated))
}

// Reopen handles POST /v1/submissions/{submissionID}/reopen.
func (h *ReviewHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "submissionID", "submission_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req reopenRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.Reopen(r.Context(), review.ReopenInput{
		SubmissionID: id,
		Reason:       req.Reason,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(updated))
}

// History handles GET /v1/submissions/{submissionID}/history?limit=.
func (h *ReviewHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "submissionID", "submission_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			handleError(w, r, h.log, domain.NewValidationError("limit", "must be an integer"))
			return
		}
	}

	records, err := h.svc.History(r.Context(), id, limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]auditResponse, 0, len(records))
	for i := range records {
		out = append(out, toAuditResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, out)
}
