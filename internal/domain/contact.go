package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyContact is a (name, phone) pair the user designates to be alerted
// during SOS. ContactUserID links the contact to their own account when the
// contact is also a registered user, which enables live-location sharing.
type EmergencyContact struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	ContactUserID *uuid.UUID `json:"contact_user_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type CreateContactRequest struct {
	Name          string     `json:"name" validate:"required,min=1,max=100"`
	Phone         string     `json:"phone" validate:"required,phone_cc"`
	ContactUserID *uuid.UUID `json:"contact_user_id,omitempty"`
}
