package domain

import (
	"time"

	"github.com/google/uuid"
)

type ChatRoom struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChatMessage struct {
	ID          uuid.UUID `json:"id"`
	RoomID      uuid.UUID `json:"room_id"`
	UserID      uuid.UUID `json:"user_id"`
	Message     string    `json:"message"`
	IsAnonymous bool      `json:"is_anonymous"`
	CreatedAt   time.Time `json:"created_at"`
}

type SendMessageRequest struct {
	Message     string `json:"message" validate:"required,min=1,max=2000"`
	IsAnonymous bool   `json:"is_anonymous"`
}
