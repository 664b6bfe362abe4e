package profile

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"saheli/internal/domain"
	"saheli/internal/middleware"
	"saheli/internal/storage"
	"saheli/pkg/validator"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	logger *slog.Logger
	store  storage.RecordStore
}

func NewHandler(logger *slog.Logger, store storage.RecordStore) *Handler {
	return &Handler{logger: logger, store: store}
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	user, err := h.store.GetUserProfile(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	contacts, err := h.store.ListEmergencyContacts(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if contacts == nil {
		contacts = []domain.EmergencyContact{}
	}
	h.writeJSON(w, http.StatusOK, contacts)
}

func (h *Handler) AddContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	var req domain.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	contact := &domain.EmergencyContact{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          req.Name,
		Phone:         req.Phone,
		ContactUserID: req.ContactUserID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.store.AddEmergencyContact(r.Context(), contact); err != nil {
		h.handleError(w, err)
		return
	}

	h.log(r).Info("emergency contact added", slog.String("contact_id", contact.ID.String()))
	h.writeJSON(w, http.StatusCreated, contact)
}

func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	contactID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid contact id"})
		return
	}

	if err := h.store.DeleteEmergencyContact(r.Context(), userID, contactID); err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	limit := parseInt(r.URL.Query().Get("limit"), 50)
	alerts, err := h.store.ListAlerts(r.Context(), userID, limit)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if alerts == nil {
		alerts = []domain.SOSAlertRecord{}
	}
	h.writeJSON(w, http.StatusOK, alerts)
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
