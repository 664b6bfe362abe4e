package postgres

import "context"

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	address    TEXT,
	occupation TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS emergency_contacts (
	id              UUID PRIMARY KEY,
	user_id         UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name            TEXT NOT NULL CHECK (name <> ''),
	phone           TEXT NOT NULL,
	contact_user_id UUID,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_emergency_contacts_user ON emergency_contacts (user_id, created_at);

CREATE TABLE IF NOT EXISTS sos_alerts (
	id                UUID PRIMARY KEY,
	user_id           UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	lat               DOUBLE PRECISION NOT NULL,
	lng               DOUBLE PRECISION NOT NULL,
	contacts_notified INT NOT NULL,
	total_contacts    INT NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_sos_alerts_user ON sos_alerts (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS chat_rooms (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS chat_messages (
	id           UUID PRIMARY KEY,
	room_id      UUID NOT NULL REFERENCES chat_rooms(id) ON DELETE CASCADE,
	user_id      UUID NOT NULL,
	message      TEXT NOT NULL,
	is_anonymous BOOLEAN NOT NULL DEFAULT false,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_chat_messages_room ON chat_messages (room_id, created_at DESC);
`

func (s *Store) initSchema(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, schema)
	return err
}
