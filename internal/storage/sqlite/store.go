// Package sqlite is the embedded RecordStore backend, used for single-node
// and development deployments where Postgres is not available.
package sqlite

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"saheli/internal/config"
	"saheli/internal/domain"
	"saheli/pkg/e"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type userRow struct {
	ID         string `gorm:"primaryKey"`
	Name       string
	Email      string `gorm:"uniqueIndex"`
	Address    string
	Occupation string
	CreatedAt  time.Time
}

func (userRow) TableName() string { return "users" }

type contactRow struct {
	ID            string `gorm:"primaryKey"`
	UserID        string `gorm:"index:idx_contacts_user"`
	Name          string
	Phone         string
	ContactUserID *string
	CreatedAt     time.Time `gorm:"index:idx_contacts_user"`
}

func (contactRow) TableName() string { return "emergency_contacts" }

type alertRow struct {
	ID               string `gorm:"primaryKey"`
	UserID           string `gorm:"index"`
	Lat              float64
	Lng              float64
	ContactsNotified int
	TotalContacts    int
	CreatedAt        time.Time
}

func (alertRow) TableName() string { return "sos_alerts" }

type roomRow struct {
	ID          string `gorm:"primaryKey"`
	Name        string
	Description string
	CreatedAt   time.Time
}

func (roomRow) TableName() string { return "chat_rooms" }

type messageRow struct {
	ID          string `gorm:"primaryKey"`
	RoomID      string `gorm:"index"`
	UserID      string
	Message     string
	IsAnonymous bool
	CreatedAt   time.Time
}

func (messageRow) TableName() string { return "chat_messages" }

type Store struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewStore(cfg *config.Config, log *slog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Sqlite.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, e.Wrap("storage.sqlite.NewStore.Open", err)
	}
	if err := db.AutoMigrate(&userRow{}, &contactRow{}, &alertRow{}, &roomRow{}, &messageRow{}); err != nil {
		return nil, e.Wrap("storage.sqlite.NewStore.AutoMigrate", err)
	}
	log.Info("sqlite store ready", slog.String("path", cfg.Sqlite.Path))
	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() {
	if db, err := s.db.DB(); err == nil {
		_ = db.Close()
	}
}

func (s *Store) GetUserProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	const op = "sqlite.GetUserProfile"
	var row userRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", userID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, e.Wrap(op, e.ErrNotFound)
		}
		return nil, e.Wrap(op, err)
	}
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return &domain.User{
		ID:         id,
		Name:       row.Name,
		Email:      row.Email,
		Address:    row.Address,
		Occupation: row.Occupation,
		CreatedAt:  row.CreatedAt,
	}, nil
}

func (s *Store) ListEmergencyContacts(ctx context.Context, userID uuid.UUID) ([]domain.EmergencyContact, error) {
	const op = "sqlite.ListEmergencyContacts"
	var rows []contactRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	contacts := make([]domain.EmergencyContact, 0, len(rows))
	for _, r := range rows {
		c, err := toContact(r)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		contacts = append(contacts, c)
	}
	if len(contacts) == 0 {
		return nil, nil
	}
	return contacts, nil
}

func (s *Store) AddEmergencyContact(ctx context.Context, contact *domain.EmergencyContact) error {
	const op = "sqlite.AddEmergencyContact"
	row := contactRow{
		ID:        contact.ID.String(),
		UserID:    contact.UserID.String(),
		Name:      contact.Name,
		Phone:     contact.Phone,
		CreatedAt: contact.CreatedAt,
	}
	if contact.ContactUserID != nil {
		v := contact.ContactUserID.String()
		row.ContactUserID = &v
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (s *Store) DeleteEmergencyContact(ctx context.Context, userID, contactID uuid.UUID) error {
	const op = "sqlite.DeleteEmergencyContact"
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", contactID.String(), userID.String()).
		Delete(&contactRow{})
	if res.Error != nil {
		return e.Wrap(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return e.Wrap(op, e.ErrNotFound)
	}
	return nil
}

func (s *Store) SaveAlert(ctx context.Context, rec *domain.SOSAlertRecord) error {
	const op = "sqlite.SaveAlert"
	row := alertRow{
		ID:               rec.ID.String(),
		UserID:           rec.UserID.String(),
		Lat:              rec.Lat,
		Lng:              rec.Lng,
		ContactsNotified: rec.ContactsNotified,
		TotalContacts:    rec.TotalContacts,
		CreatedAt:        rec.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (s *Store) ListAlerts(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SOSAlertRecord, error) {
	const op = "sqlite.ListAlerts"
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var rows []alertRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	alerts := make([]domain.SOSAlertRecord, 0, len(rows))
	for _, r := range rows {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		uid, err := uuid.Parse(r.UserID)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		alerts = append(alerts, domain.SOSAlertRecord{
			ID:               id,
			UserID:           uid,
			Lat:              r.Lat,
			Lng:              r.Lng,
			ContactsNotified: r.ContactsNotified,
			TotalContacts:    r.TotalContacts,
			CreatedAt:        r.CreatedAt,
		})
	}
	return alerts, nil
}

func (s *Store) ListChatRooms(ctx context.Context) ([]domain.ChatRoom, error) {
	const op = "sqlite.ListChatRooms"
	var rows []roomRow
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, e.Wrap(op, err)
	}
	rooms := make([]domain.ChatRoom, 0, len(rows))
	for _, r := range rows {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		rooms = append(rooms, domain.ChatRoom{
			ID:          id,
			Name:        r.Name,
			Description: r.Description,
			CreatedAt:   r.CreatedAt,
		})
	}
	return rooms, nil
}

func (s *Store) ListRoomMessages(ctx context.Context, roomID uuid.UUID, limit int) ([]domain.ChatMessage, error) {
	const op = "sqlite.ListRoomMessages"
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var rows []messageRow
	err := s.db.WithContext(ctx).
		Where("room_id = ?", roomID.String()).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	msgs := make([]domain.ChatMessage, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		m, err := toMessage(rows[i])
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (s *Store) SaveChatMessage(ctx context.Context, msg *domain.ChatMessage) error {
	const op = "sqlite.SaveChatMessage"
	row := messageRow{
		ID:          msg.ID.String(),
		RoomID:      msg.RoomID.String(),
		UserID:      msg.UserID.String(),
		Message:     msg.Message,
		IsAnonymous: msg.IsAnonymous,
		CreatedAt:   msg.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func toContact(r contactRow) (domain.EmergencyContact, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return domain.EmergencyContact{}, err
	}
	uid, err := uuid.Parse(r.UserID)
	if err != nil {
		return domain.EmergencyContact{}, err
	}
	c := domain.EmergencyContact{
		ID:        id,
		UserID:    uid,
		Name:      r.Name,
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt,
	}
	if r.ContactUserID != nil {
		cid, err := uuid.Parse(*r.ContactUserID)
		if err != nil {
			return domain.EmergencyContact{}, err
		}
		c.ContactUserID = &cid
	}
	return c, nil
}

func toMessage(r messageRow) (domain.ChatMessage, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	roomID, err := uuid.Parse(r.RoomID)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	userID, err := uuid.Parse(r.UserID)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	return domain.ChatMessage{
		ID:          id,
		RoomID:      roomID,
		UserID:      userID,
		Message:     r.Message,
		IsAnonymous: r.IsAnonymous,
		CreatedAt:   r.CreatedAt,
	}, nil
}
