package postgres

import (
	"context"
	"log/slog"

	"saheli/internal/domain"
	"saheli/pkg/e"

	"github.com/google/uuid"
)

func (s *Store) SaveAlert(ctx context.Context, rec *domain.SOSAlertRecord) error {
	const op = "postgres.SaveAlert"
	const query = `
INSERT INTO sos_alerts (id, user_id, lat, lng, contacts_notified, total_contacts, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := s.Pool.Exec(ctx, query,
		rec.ID, rec.UserID, rec.Lat, rec.Lng, rec.ContactsNotified, rec.TotalContacts, rec.CreatedAt)
	if err != nil {
		s.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (s *Store) ListAlerts(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SOSAlertRecord, error) {
	const op = "postgres.ListAlerts"
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const query = `
SELECT id, user_id, lat, lng, contacts_notified, total_contacts, created_at
FROM sos_alerts
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2
`
	rows, err := s.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var alerts []domain.SOSAlertRecord
	for rows.Next() {
		var a domain.SOSAlertRecord
		if err := rows.Scan(&a.ID, &a.UserID, &a.Lat, &a.Lng, &a.ContactsNotified, &a.TotalContacts, &a.CreatedAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return alerts, nil
}
