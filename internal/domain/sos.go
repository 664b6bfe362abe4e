package domain

import (
	"time"

	"github.com/google/uuid"
)

// SOSMessage is the composed alert, immutable within one activation.
type SOSMessage struct {
	Body    string `json:"body"`
	MapLink string `json:"map_link"`
}

type DispatchStatus string

const (
	DispatchSent   DispatchStatus = "sent"
	DispatchFailed DispatchStatus = "failed"
)

// DispatchResult records one contact's SMS send outcome.
type DispatchResult struct {
	ContactID   uuid.UUID      `json:"contact_id"`
	ContactName string         `json:"contact_name"`
	Phone       string         `json:"phone"`
	Status      DispatchStatus `json:"status"`
	Reason      string         `json:"reason,omitempty"`
}

// CallChoice is the operator's answer to a call prompt.
type CallChoice string

const (
	ChoiceCall CallChoice = "call"
	ChoiceSkip CallChoice = "skip"
)

type CallOutcome string

const (
	CallAccepted CallOutcome = "accepted"
	CallSkipped  CallOutcome = "skipped"
	CallTimedOut CallOutcome = "timed_out"
)

// CallDecision is the terminal escalation state for one contact.
type CallDecision struct {
	ContactID   uuid.UUID   `json:"contact_id"`
	ContactName string      `json:"contact_name"`
	Outcome     CallOutcome `json:"outcome"`
	DialError   string      `json:"dial_error,omitempty"`
}

// SOSReport is the aggregate outcome of one completed activation.
type SOSReport struct {
	ContactsNotified int              `json:"contacts_notified"`
	TotalContacts    int              `json:"total_contacts"`
	Location         Location         `json:"location"`
	Dispatch         []DispatchResult `json:"dispatch"`
	CallDecisions    []CallDecision   `json:"call_decisions"`
}

// SOSAlertRecord is the persisted trace of an activation, also pushed to the
// ops webhook queue.
type SOSAlertRecord struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Lat              float64   `json:"lat"`
	Lng              float64   `json:"lng"`
	ContactsNotified int       `json:"contacts_notified"`
	TotalContacts    int       `json:"total_contacts"`
	CreatedAt        time.Time `json:"created_at"`
}

type ActivateSOSRequest struct {
	CountdownSeconds *int   `json:"countdown_seconds,omitempty" validate:"omitempty,min=0,max=60"`
	CallPolicy       string `json:"call_policy,omitempty" validate:"omitempty,oneof=call skip"`
	// Location is the device's fresh fix; without it the server falls back
	// to the user's last shared live location.
	Location *ShareLocationRequest `json:"location,omitempty"`
}
