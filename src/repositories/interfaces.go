package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/sriramnerella/portfolio-server/src/models"
)

// MessageRepository defines the interface for contact message data access
type MessageRepository interface {
	// Insert persists a new message. Callers assign the ID and timestamp;
	// values are stored verbatim (validation happens upstream).
	Insert(ctx context.Context, msg *models.ContactMessage) error

	// ListByRecency returns all messages ordered newest-first.
	// An empty store yields an empty slice, not an error.
	ListByRecency(ctx context.Context) ([]models.ContactMessage, error)

	// DeleteByID removes the matching message. A missing id is a benign
	// no-op; errors indicate infrastructure failure only.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
