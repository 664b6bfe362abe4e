package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"saheli/internal/domain"
	"saheli/internal/middleware"
	"saheli/internal/storage"
	"saheli/pkg/e"
	"saheli/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// maxMessageLimit caps the history window a single request can pull.
const maxMessageLimit = 200

// Publisher fans a stored message out to live subscribers, at least once.
type Publisher interface {
	Publish(ctx context.Context, msg domain.ChatMessage) error
}

type Handler struct {
	logger *slog.Logger
	store  storage.RecordStore
	pub    Publisher
}

func NewHandler(logger *slog.Logger, store storage.RecordStore, pub Publisher) *Handler {
	return &Handler{logger: logger, store: store, pub: pub}
}

func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.store.ListChatRooms(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	if rooms == nil {
		rooms = []domain.ChatRoom{}
	}
	h.writeJSON(w, http.StatusOK, rooms)
}

func (h *Handler) RoomMessages(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid room id"})
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxMessageLimit {
		limit = maxMessageLimit
	}

	msgs, err := h.store.ListRoomMessages(r.Context(), roomID, limit)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	h.writeJSON(w, http.StatusOK, msgs)
}

func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	roomID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid room id"})
		return
	}

	var req domain.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	msg := &domain.ChatMessage{
		ID:          uuid.New(),
		RoomID:      roomID,
		UserID:      userID,
		Message:     req.Message,
		IsAnonymous: req.IsAnonymous,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.store.SaveChatMessage(r.Context(), msg); err != nil {
		h.handleError(w, err)
		return
	}

	// History is the source of truth; a failed fan-out is not a failed send.
	if err := h.pub.Publish(r.Context(), *msg); err != nil {
		h.log(r).Warn("chat publish failed", slog.Any("error", err))
	}

	h.writeJSON(w, http.StatusCreated, msg)
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, e.ErrInvalidInput):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
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
