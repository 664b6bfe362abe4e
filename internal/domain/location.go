package domain

import (
	"time"

	"github.com/google/uuid"
)

// Location is one point-in-time GPS fix. Captured fresh for every SOS
// activation, never cached across activations.
type Location struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Accuracy float64 `json:"accuracy,omitempty"` // meters, 0 when unknown
}

// LiveLocation is a user's last shared fix, held by the live-location store
// with a TTL.
type LiveLocation struct {
	UserID    uuid.UUID `json:"user_id"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ShareLocationRequest struct {
	Lat      float64 `json:"lat" validate:"lat"`
	Lng      float64 `json:"lng" validate:"lng"`
	Accuracy float64 `json:"accuracy,omitempty" validate:"omitempty,min=0"`
}
