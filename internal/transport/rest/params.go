package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

// chainParam reads the {applicationID} and {slot} path segments.
func chainParam(r *http.Request) (domain.ChainKey, error) {
	appID, err := uuidParam(r, "applicationID", "application_id")
	if err != nil {
		return domain.ChainKey{}, err
	}
	slot, err := domain.ParseSlotKey(chi.URLParam(r, "slot"))
	if err != nil {
		return domain.ChainKey{}, err
	}
	return domain.ChainKey{ApplicationID: appID, Slot: slot}, nil
}

func uuidParam(r *http.Request, name, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(field, "invalid UUID")
	}
	return id, nil
}
