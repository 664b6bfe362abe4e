package sos

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"saheli/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// A failed SOS must never leave the user without a next step.
const callEmergencyServices = "Unable to reach your contacts. Call emergency services directly."

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var status int
	action := ""
	switch {
	case errors.Is(err, e.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, e.ErrNoContacts):
		status = http.StatusUnprocessableEntity
		action = "Add an emergency contact to your profile, then retry."
	case errors.Is(err, e.ErrPermissionDenied):
		status = http.StatusForbidden
		action = "Grant location permission, then retry."
	case errors.Is(err, e.ErrPositionUnavailable), errors.Is(err, e.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
		action = callEmergencyServices
	case errors.Is(err, e.ErrCanceled):
		status = http.StatusRequestTimeout
	default:
		status = http.StatusInternalServerError
		action = callEmergencyServices
	}

	body := map[string]string{"error": err.Error()}
	if action != "" {
		body["action"] = action
	}
	h.writeJSON(w, status, body)
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
