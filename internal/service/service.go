// Package service implements the SOS activation workflow: location + contact
// loading, alert composition, concurrent SMS dispatch and sequential call
// escalation, orchestrated as one activation per call.
package service

import (
	"context"

	"saheli/internal/domain"

	"github.com/google/uuid"
)

// Collaborator contracts. The workflow owns no transport or storage of its
// own; everything side-effecting enters through one of these.
//
//go:generate mockgen -source=service.go -destination=mocks/mock.go
type Session interface {
	CurrentUserID(ctx context.Context) (uuid.UUID, bool)
}

type ContactStore interface {
	GetUserProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	ListEmergencyContacts(ctx context.Context, userID uuid.UUID) ([]domain.EmergencyContact, error)
}

type LocationCapability interface {
	RequestPermission(ctx context.Context, userID uuid.UUID) (bool, error)
	CurrentFix(ctx context.Context, userID uuid.UUID) (domain.Location, error)
}

type SMSGateway interface {
	Send(ctx context.Context, toPhone, body string) error
}

type Dialer interface {
	CanDial() bool
	Dial(ctx context.Context, phone string) error
}

// DecisionPrompter obtains the operator's call-now-or-skip decision for one
// contact. Implementations must honor ctx; the escalator bounds the wait
// regardless.
type DecisionPrompter interface {
	PromptCallDecision(ctx context.Context, contactName string) (domain.CallChoice, error)
}

type AlertQueue interface {
	Enqueue(ctx context.Context, rec domain.SOSAlertRecord) error
}

type AlertStore interface {
	SaveAlert(ctx context.Context, rec *domain.SOSAlertRecord) error
}

type LiveLocationStore interface {
	SetLive(ctx context.Context, loc domain.LiveLocation) error
}
