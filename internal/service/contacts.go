package service

import (
	"context"

	"saheli/internal/domain"
	"saheli/pkg/e"

	"github.com/google/uuid"
)

// loadContacts reads the user's profile and emergency-contact list. Contact
// order is the store's order and is preserved through dispatch and escalation.
func (s *SOSService) loadContacts(ctx context.Context, userID uuid.UUID) (string, []domain.EmergencyContact, error) {
	user, err := s.store.GetUserProfile(ctx, userID)
	if err != nil {
		return "", nil, e.WrapStore("sos.loadContacts.profile", err)
	}

	contacts, err := s.store.ListEmergencyContacts(ctx, userID)
	if err != nil {
		return "", nil, e.WrapStore("sos.loadContacts.contacts", err)
	}
	if len(contacts) == 0 {
		// Recoverable from the user's side: add a contact and retry.
		return "", nil, e.Wrap("sos.loadContacts", e.ErrNoContacts)
	}

	return user.Name, contacts, nil
}
