package mock

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sriramnerella/portfolio-server/src/models"
)

// MessageRepository is a mock implementation of repositories.MessageRepository.
// By default it behaves as an in-memory store (newest-first listing, no-op
// delete on a missing id); individual methods can be overridden with the
// function stubs to simulate failures.
type MessageRepository struct {
	// Function stubs that can be overridden in tests
	InsertFunc        func(ctx context.Context, msg *models.ContactMessage) error
	ListByRecencyFunc func(ctx context.Context) ([]models.ContactMessage, error)
	DeleteByIDFunc    func(ctx context.Context, id uuid.UUID) error

	// Call tracking
	Calls map[string][]interface{}

	mu       sync.Mutex
	messages []models.ContactMessage
}

// NewMessageRepository creates a new mock message repository
func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *MessageRepository) Insert(ctx context.Context, msg *models.ContactMessage) error {
	m.mu.Lock()
	m.Calls["Insert"] = append(m.Calls["Insert"], msg)
	m.mu.Unlock()
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, msg)
	}
	m.mu.Lock()
	m.messages = append(m.messages, *msg)
	m.mu.Unlock()
	return nil
}

func (m *MessageRepository) ListByRecency(ctx context.Context) ([]models.ContactMessage, error) {
	m.mu.Lock()
	m.Calls["ListByRecency"] = append(m.Calls["ListByRecency"], nil)
	m.mu.Unlock()
	if m.ListByRecencyFunc != nil {
		return m.ListByRecencyFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.ContactMessage, len(m.messages))
	copy(out, m.messages)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MessageRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.Calls["DeleteByID"] = append(m.Calls["DeleteByID"], id)
	m.mu.Unlock()
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, msg := range m.messages {
		if msg.ID == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			break
		}
	}
	return nil
}

// Stored returns a snapshot of the messages currently held by the mock
func (m *MessageRepository) Stored() []models.ContactMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.ContactMessage, len(m.messages))
	copy(out, m.messages)
	return out
}
