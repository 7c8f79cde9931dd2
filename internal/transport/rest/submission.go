package rest

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/service/submission"
	"github.com/mktbiz-byte/cnec-kr-sub001/internal/service/upload"
	"github.com/mktbiz-byte/cnec-kr-sub001/pkg/ctxutil"
)

// multipartMemory is how much of a multipart body is buffered in memory;
// the rest spills to temporary files.
const multipartMemory = 32 << 20

type submissionService interface {
	Submit(ctx context.Context, input submission.SubmitInput) (*domain.Submission, error)
	NextVersion(ctx context.Context, chain domain.ChainKey) (int, error)
	GetCurrent(ctx context.Context, chain domain.ChainKey) (*domain.Submission, error)
	ListChain(ctx context.Context, chain domain.ChainKey) ([]domain.Submission, error)
	GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	Ceiling(flow domain.Flow) int
	CheckAppend(ctx context.Context, chain domain.ChainKey, flow domain.Flow) error
}

// SubmissionHandler serves version chain endpoints.
type SubmissionHandler struct {
	svc     submissionService
	maxBody int64
	log     *slog.Logger
}

// NewSubmissionHandler creates a SubmissionHandler. maxBody caps the whole
// multipart request, both files included.
func NewSubmissionHandler(svc submissionService, maxBody int64, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		svc:     svc,
		maxBody: maxBody,
		log:     logger.With("handler", "submission"),
	}
}

type nextVersionResponse struct {
	Version int `json:"version"`
	Ceiling int `json:"ceiling"`
	// Allowed mirrors whether Submit would accept a new version now.
	Allowed bool `json:"allowed"`
	// Closed is set once the chain's current version is approved.
	Closed bool `json:"closed"`
}

// Submit handles POST /v1/applications/{applicationID}/slots/{slot}/submissions.
// The body is multipart: a required "content" file, an optional "clean" file,
// and the fields campaign_id, flow, title, caption and recipient_ref.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		handleError(w, r, h.log, domain.ErrUnauthorized)
		return
	}

	chain, err := chainParam(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "TOO_LARGE", "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "VALIDATION", "invalid multipart body")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	content, closeContent, err := formFile(r, "content")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	defer closeContent()

	input := submission.SubmitInput{
		Chain:        chain,
		Flow:         domain.Flow(r.FormValue("flow")),
		OwnerID:      userID.String(),
		CampaignID:   r.FormValue("campaign_id"),
		Content:      content,
		Title:        optionalForm(r, "title"),
		Caption:      optionalForm(r, "caption"),
		UploadedBy:   domain.UploadedByCreator,
		RecipientRef: r.FormValue("recipient_ref"),
		Progress: func(fraction float64) {
			h.log.DebugContext(r.Context(), "upload progress",
				slog.String("chain", chain.String()),
				slog.Float64("fraction", fraction),
			)
		},
	}
	if ctxutil.IsAdminCtx(r.Context()) {
		input.UploadedBy = domain.UploadedByAdmin
	}

	if _, ok := r.MultipartForm.File["clean"]; ok {
		clean, closeClean, err := formFile(r, "clean")
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		defer closeClean()
		input.Clean = &clean
	}

	created, err := h.svc.Submit(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSubmissionResponse(created))
}

// ListChain handles GET /v1/applications/{applicationID}/slots/{slot}/submissions.
func (h *SubmissionHandler) ListChain(w http.ResponseWriter, r *http.Request) {
	chain, err := chainParam(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	list, err := h.svc.ListChain(r.Context(), chain)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionList(list))
}

// GetCurrent handles GET /v1/applications/{applicationID}/slots/{slot}/submissions/current.
func (h *SubmissionHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	chain, err := chainParam(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	current, err := h.svc.GetCurrent(r.Context(), chain)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if current == nil {
		handleError(w, r, h.log, domain.ErrNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(current))
}

// NextVersion handles GET /v1/applications/{applicationID}/slots/{slot}/next-version?flow=.
func (h *SubmissionHandler) NextVersion(w http.ResponseWriter, r *http.Request) {
	chain, err := chainParam(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	flow := domain.Flow(r.URL.Query().Get("flow"))
	if flow != "" && !flow.IsValid() {
		handleError(w, r, h.log, domain.NewValidationError("flow", "must be standard or extended"))
		return
	}

	next, err := h.svc.NextVersion(r.Context(), chain)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	appendErr := h.svc.CheckAppend(r.Context(), chain, flow)
	closed := errors.Is(appendErr, domain.ErrChainClosed)
	if appendErr != nil && !closed && !errors.Is(appendErr, domain.ErrVersionCeilingExceeded) {
		handleError(w, r, h.log, appendErr)
		return
	}

	writeJSON(w, http.StatusOK, nextVersionResponse{
		Version: next,
		Ceiling: h.svc.Ceiling(flow),
		Allowed: appendErr == nil,
		Closed:  closed,
	})
}

// GetSubmission handles GET /v1/submissions/{submissionID}.
func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "submissionID", "submission_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sub, err := h.svc.GetSubmission(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// formFile opens the named multipart file. The returned func closes it.
func formFile(r *http.Request, field string) (upload.File, func(), error) {
	f, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return upload.File{}, nil, domain.NewValidationError(field, "required")
		}
		return upload.File{}, nil, domain.NewValidationError(field, "unreadable file")
	}
	return fileFromHeader(f, header), func() { _ = f.Close() }, nil
}

func fileFromHeader(f multipart.File, header *multipart.FileHeader) upload.File {
	return upload.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        f,
	}
}

func optionalForm(r *http.Request, key string) *string {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return nil
	}
	return &v
}
