package postgres

import (
	"context"
	"log/slog"

	"saheli/internal/domain"
	"saheli/pkg/e"

	"github.com/google/uuid"
)

func (s *Store) ListChatRooms(ctx context.Context) ([]domain.ChatRoom, error) {
	const op = "postgres.ListChatRooms"
	const query = `
SELECT id, name, COALESCE(description, ''), created_at
FROM chat_rooms
ORDER BY created_at ASC
`
	rows, err := s.Pool.Query(ctx, query)
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var rooms []domain.ChatRoom
	for rows.Next() {
		var r domain.ChatRoom
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.CreatedAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		rooms = append(rooms, r)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return rooms, nil
}

// ListRoomMessages returns the latest messages oldest-first, the way chat
// screens render them.
func (s *Store) ListRoomMessages(ctx context.Context, roomID uuid.UUID, limit int) ([]domain.ChatMessage, error) {
	const op = "postgres.ListRoomMessages"
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const query = `
SELECT id, room_id, user_id, message, is_anonymous, created_at
FROM chat_messages
WHERE room_id = $1
ORDER BY created_at DESC
LIMIT $2
`
	rows, err := s.Pool.Query(ctx, query, roomID, limit)
	if err != nil {
		s.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var msgs []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.RoomID, &m.UserID, &m.Message, &m.IsAnonymous, &m.CreatedAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func (s *Store) SaveChatMessage(ctx context.Context, msg *domain.ChatMessage) error {
	const op = "postgres.SaveChatMessage"
	const query = `
INSERT INTO chat_messages (id, room_id, user_id, message, is_anonymous, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := s.Pool.Exec(ctx, query,
		msg.ID, msg.RoomID, msg.UserID, msg.Message, msg.IsAnonymous, msg.CreatedAt)
	if err != nil {
		s.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}
