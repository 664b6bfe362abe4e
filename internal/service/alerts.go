package service

import (
	"context"
	"log/slog"

	"saheli/internal/domain"
)

// AlertSink records a completed activation in the history store and hands it
// to the outbound webhook queue. A store failure does not block the queue
// write; the orchestrator treats the whole sink as best effort anyway.
type AlertSink struct {
	store  AlertStore
	queue  AlertQueue
	logger *slog.Logger
}

func NewAlertSink(store AlertStore, queue AlertQueue, logger *slog.Logger) *AlertSink {
	return &AlertSink{store: store, queue: queue, logger: logger}
}

func (s *AlertSink) Enqueue(ctx context.Context, rec domain.SOSAlertRecord) error {
	if s.store != nil {
		if err := s.store.SaveAlert(ctx, &rec); err != nil {
			s.logger.Error("alert history write failed",
				slog.String("user_id", rec.UserID.String()),
				slog.Any("error", err),
			)
		}
	}
	if s.queue == nil {
		return nil
	}
	return s.queue.Enqueue(ctx, rec)
}
