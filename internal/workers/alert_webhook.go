package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"saheli/internal/config"
	"saheli/internal/domain"
	"saheli/pkg/e"
)

// AlertSource is the queue side the sender drains; in production it is the
// redis alert queue.
type AlertSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.SOSAlertRecord, error)
}

// AlertWebhookSender forwards completed SOS activations to the configured ops
// webhook (guardian dashboards, incident tooling). Runs until ctx is done.
type AlertWebhookSender struct {
	logger *slog.Logger
	cfg    config.WebhookConfig
	queue  AlertSource
	http   *http.Client
}

func NewAlertWebhookSender(logger *slog.Logger, cfg config.WebhookConfig, q AlertSource) *AlertWebhookSender {
	return &AlertWebhookSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *AlertWebhookSender) Run(ctx context.Context) {
	if s.cfg.Disabled || s.cfg.URL == "" {
		s.logger.Info("alert webhook sender disabled")
		return
	}
	s.logger.Info("alert webhook sender started", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("alert webhook sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		rec, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrAlertQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			s.logger.Error("alert queue pop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending alert webhook", slog.String("user_id", rec.UserID.String()))
		s.sendWithRetry(ctx, rec)
	}
}

func (s *AlertWebhookSender) sendWithRetry(ctx context.Context, rec domain.SOSAlertRecord) {
	const maxRetries = 3

	body, err := json.Marshal(rec)
	if err != nil {
		s.logger.Error("marshal alert payload failed", slog.Any("error", err))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create webhook request failed", slog.Any("error", err))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}
		s.logger.Warn("alert webhook failed",
			slog.Int("attempt", attempt),
			slog.String("reason", reason),
		)

		select {
		case <-time.After(time.Duration(attempt) * time.Second):
		case <-ctx.Done():
			return
		}
	}
}
