package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/kryva/kryva/internal/failure"
	"github.com/kryva/kryva/internal/identity"
	"github.com/kryva/kryva/internal/middleware"
	"github.com/kryva/kryva/internal/observability"
	"github.com/kryva/kryva/internal/preferences"
	"github.com/kryva/kryva/internal/schema"
	"github.com/kryva/kryva/internal/transport"
)

const maxBodyBytes = 64 << 10

const noChangesMessage = "No changes to save."

// PreferencesHandler serves the account preferences screen. Each request
// drives a fresh preferences.Screen for the caller's session.
type PreferencesHandler struct {
	Docs       preferences.DocumentStore
	Identity   preferences.IdentityProvider
	SuccessTTL time.Duration
}

func NewPreferencesHandler(docs preferences.DocumentStore, ids preferences.IdentityProvider, successTTL time.Duration) *PreferencesHandler {
	return &PreferencesHandler{Docs: docs, Identity: ids, SuccessTTL: successTTL}
}

func (h *PreferencesHandler) screen(r *http.Request) *preferences.Screen {
	opts := []preferences.Option{preferences.WithLogger(observability.GetLogger(r.Context()))}
	if h.SuccessTTL > 0 {
		opts = append(opts, preferences.WithSuccessTTL(h.SuccessTTL))
	}
	return preferences.NewScreen(middleware.SessionFromContext(r.Context()), h.Docs, h.Identity, opts...)
}

type preferencesResponse struct {
	Profile  any              `json:"profile"`
	Identity identity.Session `json:"identity"`
}

// Get returns the caller's editable profile.
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	s := h.screen(r)
	defer s.Close()

	if !h.load(w, r, s) {
		return
	}

	transport.WriteJSON(w, http.StatusOK, preferencesResponse{
		Profile:  s.Current(),
		Identity: s.Session(),
	})
}

type saveResponse struct {
	Saved   bool   `json:"saved"`
	Message string `json:"message"`
	Profile any    `json:"profile"`
}

// Update applies the submitted record over the stored one and saves it.
// Fields missing from the body keep their stored values.
func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}
	if err := schema.Validate(schema.Preferences, body); err != nil {
		writeSchemaError(w, err)
		return
	}

	s := h.screen(r)
	defer s.Close()

	if !h.load(w, r, s) {
		return
	}

	fields := s.Current()
	if err := json.Unmarshal(body, &fields); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}
	if err := s.Apply(fields); err != nil {
		transport.WriteError(w, http.StatusConflict, "not_editable", err.Error())
		return
	}

	err = s.Save(r.Context())

	var verr *preferences.ValidationError
	switch {
	case err == nil:
		observability.PreferenceSavesTotal.WithLabelValues(observability.ResultSuccess).Inc()
		transport.WriteJSON(w, http.StatusOK, saveResponse{
			Saved:   true,
			Message: s.Banner().Success,
			Profile: s.Original(),
		})
	case errors.Is(err, preferences.ErrNoChanges):
		observability.PreferenceSavesTotal.WithLabelValues(observability.ResultNoChanges).Inc()
		transport.WriteJSON(w, http.StatusOK, saveResponse{
			Saved:   false,
			Message: noChangesMessage,
			Profile: s.Original(),
		})
	case errors.As(err, &verr):
		observability.PreferenceSavesTotal.WithLabelValues(observability.ResultValidation).Inc()
		transport.WriteJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":   "validation",
			"field":   string(verr.Field),
			"message": verr.Message,
		})
	default:
		observability.PreferenceSavesTotal.WithLabelValues(observability.ResultError).Inc()
		kind := failure.Classify(err)
		transport.WriteError(w, StatusForKind(kind), kind.String(), s.Banner().Error)
	}
}

func (h *PreferencesHandler) load(w http.ResponseWriter, r *http.Request, s *preferences.Screen) bool {
	err := s.Load(r.Context())
	if err == nil {
		return true
	}
	writeLoadError(w, err)
	return false
}

func writeLoadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, preferences.ErrUnauthenticated):
		transport.WriteError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
	case errors.Is(err, preferences.ErrDeleted):
		transport.WriteError(w, http.StatusGone, "account_deleted", "this account has been deleted")
	default:
		transport.WriteError(w, http.StatusInternalServerError, "load_failed", failure.LoadMessage)
	}
}

func writeSchemaError(w http.ResponseWriter, err error) {
	var serr *schema.Error
	if errors.As(err, &serr) {
		transport.WriteJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "invalid_request",
			"field":   serr.Field,
			"message": serr.Message,
		})
		return
	}
	transport.WriteError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}
