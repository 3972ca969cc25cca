package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage represents one contact form submission.
// Messages are append-only: they are inserted once and never updated,
// only deleted from the admin dashboard.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
