package sos

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"saheli/internal/domain"
	"saheli/internal/service"
	"saheli/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type SOSActivator interface {
	Activate(ctx context.Context, opts service.ActivateOptions) (domain.SOSReport, error)
}

type Handler struct {
	logger           *slog.Logger
	sos              SOSActivator
	countdownDefault time.Duration
}

func NewHandler(logger *slog.Logger, sosSvc SOSActivator, countdownDefault time.Duration) *Handler {
	return &Handler{
		logger:           logger,
		sos:              sosSvc,
		countdownDefault: countdownDefault,
	}
}

// ActivateSOS runs one activation for the authenticated user. An empty body
// means default countdown and no calls.
func (h *Handler) ActivateSOS(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.ActivateSOSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	opts := service.ActivateOptions{Countdown: h.countdownDefault}
	if req.CountdownSeconds != nil {
		opts.Countdown = time.Duration(*req.CountdownSeconds) * time.Second
	}
	if req.CallPolicy == "call" {
		opts.Prompter = service.NewPolicyPrompter(domain.ChoiceCall)
	}
	if req.Location != nil {
		opts.Fix = &domain.Location{
			Lat:      req.Location.Lat,
			Lng:      req.Location.Lng,
			Accuracy: req.Location.Accuracy,
		}
	}

	report, err := h.sos.Activate(r.Context(), opts)
	if err != nil {
		l.Warn("sos activation failed", slog.Any("error", err))
		h.handleError(w, err)
		return
	}

	l.Info("sos activation completed",
		slog.Int("contacts_notified", report.ContactsNotified),
		slog.Int("total_contacts", report.TotalContacts),
	)
	h.writeJSON(w, http.StatusOK, report)
}
