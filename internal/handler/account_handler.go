package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/kryva/kryva/internal/failure"
	"github.com/kryva/kryva/internal/observability"
	"github.com/kryva/kryva/internal/preferences"
	"github.com/kryva/kryva/internal/schema"
	"github.com/kryva/kryva/internal/transport"
)

// Delete removes the caller's account after the confirmation phrase check.
// An account whose profile is already marked deleted answers 204 without
// further writes.
func (h *PreferencesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}
	if err := schema.Validate(schema.AccountDelete, body); err != nil {
		writeSchemaError(w, err)
		return
	}

	var req struct {
		Confirmation string `json:"confirmation"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	s := h.screen(r)
	defer s.Close()

	if err := s.Load(r.Context()); err != nil {
		if errors.Is(err, preferences.ErrDeleted) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeLoadError(w, err)
		return
	}

	if err := s.OpenDeletion(); err != nil {
		transport.WriteError(w, http.StatusConflict, "not_deletable", err.Error())
		return
	}
	if err := s.SetConfirmation(req.Confirmation); err != nil {
		transport.WriteError(w, http.StatusConflict, "not_deletable", err.Error())
		return
	}

	err = s.ConfirmDeletion(r.Context())
	switch {
	case err == nil:
		observability.AccountDeletionsTotal.WithLabelValues(observability.ResultSuccess).Inc()
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, preferences.ErrUnauthenticated):
		transport.WriteError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
	case errors.Is(err, preferences.ErrConfirmationMismatch):
		observability.AccountDeletionsTotal.WithLabelValues(observability.ResultMismatch).Inc()
		transport.WriteError(w, http.StatusBadRequest, "confirmation_mismatch", s.Deletion().Error)
	case failure.Classify(err) == failure.KindRequiresRecentLogin:
		observability.AccountDeletionsTotal.WithLabelValues(observability.ResultError).Inc()
		transport.WriteError(w, http.StatusUnauthorized, failure.KindRequiresRecentLogin.String(), s.Deletion().Error)
	default:
		observability.AccountDeletionsTotal.WithLabelValues(observability.ResultError).Inc()
		transport.WriteError(w, http.StatusInternalServerError, "delete_failed", s.Deletion().Error)
	}
}
