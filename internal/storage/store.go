package storage

import (
	"context"

	"saheli/internal/domain"

	"github.com/google/uuid"
)

// RecordStore abstracts the persistent-data backend. The upstream app carried
// two behaviorally-equivalent backends; here both adapters (postgres, sqlite)
// satisfy this one interface and everything above it is backend-agnostic.
//
//go:generate mockgen -source=store.go -destination=mocks/mock.go
type RecordStore interface {
	GetUserProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	ListEmergencyContacts(ctx context.Context, userID uuid.UUID) ([]domain.EmergencyContact, error)
	AddEmergencyContact(ctx context.Context, contact *domain.EmergencyContact) error
	DeleteEmergencyContact(ctx context.Context, userID, contactID uuid.UUID) error

	SaveAlert(ctx context.Context, rec *domain.SOSAlertRecord) error
	ListAlerts(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SOSAlertRecord, error)

	ListChatRooms(ctx context.Context) ([]domain.ChatRoom, error)
	ListRoomMessages(ctx context.Context, roomID uuid.UUID, limit int) ([]domain.ChatMessage, error)
	SaveChatMessage(ctx context.Context, msg *domain.ChatMessage) error
}
