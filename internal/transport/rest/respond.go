package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

type errorResponse struct {
	Error  string          `json:"error"`
	Code   string          `json:"code"`
	Fields []fieldResponse `json:"fields,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// handleError maps domain errors to HTTP responses. Unknown errors are
// logged and reported as 500 without detail.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		ve *domain.ValidationError
		ce *domain.CeilingError
		te *domain.TransitionError
	)

	switch {
	case errors.As(err, &ve):
		resp := errorResponse{Error: ve.Error(), Code: "VALIDATION"}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")
	case errors.As(err, &ce):
		writeError(w, http.StatusConflict, "VERSION_CEILING_EXCEEDED", ce.Error())
	case errors.As(err, &te):
		writeError(w, http.StatusConflict, "INVALID_TRANSITION", te.Error())
	case errors.Is(err, domain.ErrChainClosed):
		writeError(w, http.StatusConflict, "CHAIN_CLOSED", "chain is closed")
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "CONFLICT", "conflict")
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the body.
		log.InfoContext(r.Context(), "request cancelled", slog.String("error", err.Error()))
		writeError(w, http.StatusRequestTimeout, "CANCELLED", "request cancelled")
	case errors.Is(err, domain.ErrTransfer):
		log.WarnContext(r.Context(), "transfer failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "TRANSFER_FAILED", "upload failed, retry the whole file")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}
