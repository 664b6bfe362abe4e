package postgres

import (
	"context"
	"errors"
	"log/slog"

	"saheli/internal/domain"
	"saheli/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Store) GetUserProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	const op = "postgres.GetUserProfile"
	const query = `
SELECT id, name, email, COALESCE(address, ''), COALESCE(occupation, ''), created_at
FROM users
WHERE id = $1
`
	var u domain.User
	err := s.Pool.QueryRow(ctx, query, userID).
		Scan(&u.ID, &u.Name, &u.Email, &u.Address, &u.Occupation, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(op, e.ErrNotFound)
		}
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return &u, nil
}

func (s *Store) ListEmergencyContacts(ctx context.Context, userID uuid.UUID) ([]domain.EmergencyContact, error) {
	const op = "postgres.ListEmergencyContacts"
	const query = `
SELECT id, user_id, name, phone, contact_user_id, created_at
FROM emergency_contacts
WHERE user_id = $1
ORDER BY created_at ASC
`
	rows, err := s.Pool.Query(ctx, query, userID)
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var contacts []domain.EmergencyContact
	for rows.Next() {
		var c domain.EmergencyContact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.ContactUserID, &c.CreatedAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return contacts, nil
}

func (s *Store) AddEmergencyContact(ctx context.Context, contact *domain.EmergencyContact) error {
	const op = "postgres.AddEmergencyContact"
	const query = `
INSERT INTO emergency_contacts (id, user_id, name, phone, contact_user_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := s.Pool.Exec(ctx, query,
		contact.ID, contact.UserID, contact.Name, contact.Phone, contact.ContactUserID, contact.CreatedAt)
	if err != nil {
		s.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (s *Store) DeleteEmergencyContact(ctx context.Context, userID, contactID uuid.UUID) error {
	const op = "postgres.DeleteEmergencyContact"
	const query = `DELETE FROM emergency_contacts WHERE id = $1 AND user_id = $2`

	tag, err := s.Pool.Exec(ctx, query, contactID, userID)
	if err != nil {
		s.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(op, e.ErrNotFound)
	}
	return nil
}
