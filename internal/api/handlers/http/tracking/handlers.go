package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"saheli/internal/domain"
	"saheli/internal/middleware"
	"saheli/internal/storage"
	"saheli/pkg/e"
	"saheli/pkg/validator"

	"github.com/google/uuid"
)

// LiveStore is the TTL'd last-fix store; entries expire when sharing stops.
type LiveStore interface {
	SetLive(ctx context.Context, loc domain.LiveLocation) error
	GetLive(ctx context.Context, userID uuid.UUID) (domain.LiveLocation, error)
}

// Tracker is the per-user background sharing lifecycle.
type Tracker interface {
	Start(ctx context.Context, userID uuid.UUID) error
	Stop(userID uuid.UUID)
	Active(userID uuid.UUID) bool
}

type Handler struct {
	logger  *slog.Logger
	live    LiveStore
	store   storage.RecordStore
	tracker Tracker
}

func NewHandler(logger *slog.Logger, live LiveStore, store storage.RecordStore, tracker Tracker) *Handler {
	return &Handler{logger: logger, live: live, store: store, tracker: tracker}
}

// StartTracking begins periodic background sharing for the caller. A second
// start while already active succeeds without side effects.
func (h *Handler) StartTracking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	if err := h.tracker.Start(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, e.ErrPermissionDenied):
			h.writeJSON(w, http.StatusForbidden, map[string]string{"error": "location permission denied"})
		default:
			h.logger.Error("tracking start failed", slog.Any("error", err))
			h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "location unavailable"})
		}
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"active": true})
}

func (h *Handler) StopTracking(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}
	h.tracker.Stop(userID)
	h.writeJSON(w, http.StatusOK, map[string]bool{"active": false})
}

func (h *Handler) TrackingStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"active": h.tracker.Active(userID)})
}

// ShareLocation records the caller's current fix for their trusted contacts.
func (h *Handler) ShareLocation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	var req domain.ShareLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	loc := domain.LiveLocation{
		UserID:    userID,
		Lat:       req.Lat,
		Lng:       req.Lng,
		Accuracy:  req.Accuracy,
		UpdatedAt: time.Now().UTC(),
	}
	if err := h.live.SetLive(r.Context(), loc); err != nil {
		h.logger.Error("live location write failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not record location"})
		return
	}
	h.writeJSON(w, http.StatusOK, loc)
}

// ContactsLocations returns last known fixes for the caller's emergency
// contacts that are themselves registered users. Contacts without a linked
// account, or without a recent fix, are simply absent from the result.
func (h *Handler) ContactsLocations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	contacts, err := h.store.ListEmergencyContacts(r.Context(), userID)
	if err != nil {
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	locations := []domain.LiveLocation{}
	for _, c := range contacts {
		if c.ContactUserID == nil {
			continue
		}
		loc, err := h.live.GetLive(r.Context(), *c.ContactUserID)
		if err != nil {
			if !errors.Is(err, e.ErrNotFound) {
				h.logger.Warn("live location read failed",
					slog.String("contact_user_id", c.ContactUserID.String()),
					slog.Any("error", err),
				)
			}
			continue
		}
		locations = append(locations, loc)
	}
	h.writeJSON(w, http.StatusOK, locations)
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
