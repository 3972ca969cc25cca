package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sriramnerella/portfolio-server/src/models"
	"github.com/sriramnerella/portfolio-server/src/repositories"
)

// MessageService handles contact message persistence
type MessageService struct {
	pool *pgxpool.Pool
	repo repositories.MessageRepository
}

// NewMessageService creates a new message service
func NewMessageService(pool *pgxpool.Pool) *MessageService {
	return &MessageService{pool: pool}
}

// NewMessageServiceWithRepo creates a new message service with repository (for testing)
func NewMessageServiceWithRepo(repo repositories.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

// Create persists a new contact message. The service assigns the id and the
// creation timestamp; inputs are expected to have passed validation already.
// Fields are trimmed and the email lower-cased before storage.
func (ms *MessageService) Create(ctx context.Context, name, email, message string) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Message:   strings.TrimSpace(message),
		CreatedAt: time.Now().UTC(),
	}

	// Use repository if available (for testing)
	if ms.repo != nil {
		if err := ms.repo.Insert(ctx, msg); err != nil {
			return nil, fmt.Errorf("failed to save message: %w", err)
		}
		return msg, nil
	}

	_, err := ms.pool.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, message, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.Name, msg.Email, msg.Message, msg.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	return msg, nil
}

// List returns all stored messages, newest first. An empty store yields an
// empty slice rather than an error.
func (ms *MessageService) List(ctx context.Context) ([]models.ContactMessage, error) {
	// Use repository if available (for testing)
	if ms.repo != nil {
		msgs, err := ms.repo.ListByRecency(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list messages: %w", err)
		}
		if msgs == nil {
			msgs = []models.ContactMessage{}
		}
		return msgs, nil
	}

	rows, err := ms.pool.Query(ctx,
		`SELECT id, name, email, message, created_at
		 FROM contact_messages
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}

	return messages, nil
}

// Delete removes the message with the given id. Deleting an id that does not
// exist is a no-op; only infrastructure failures surface as errors.
func (ms *MessageService) Delete(ctx context.Context, id uuid.UUID) error {
	// Use repository if available (for testing)
	if ms.repo != nil {
		if err := ms.repo.DeleteByID(ctx, id); err != nil {
			return fmt.Errorf("failed to delete message: %w", err)
		}
		return nil
	}

	_, err := ms.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
