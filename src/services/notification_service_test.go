package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mailgun/mailgun-go/v4"
	"github.com/sriramnerella/portfolio-server/src/models"
)

// stubSender captures outgoing mail instead of talking to Mailgun
type stubSender struct {
	mg       *mailgun.MailgunImpl
	sent     []*mailgun.Message
	sendErr  error
	lastFrom string
}

func newStubSender() *stubSender {
	return &stubSender{mg: mailgun.NewMailgun("test.example.com", "key-test")}
}

func (s *stubSender) NewMessage(from, subject, text string, to ...string) *mailgun.Message {
	s.lastFrom = from
	return s.mg.NewMessage(from, subject, text, to...)
}

func (s *stubSender) Send(ctx context.Context, m *mailgun.Message) (string, string, error) {
	if s.sendErr != nil {
		return "", "", s.sendErr
	}
	s.sent = append(s.sent, m)
	return "Queued", uuid.New().String(), nil
}

func testNotificationService(sender *stubSender) *NotificationService {
	svc := NewNotificationService("test.example.com", "key-test", "noreply@test.example.com", "Portfolio", "owner@example.com", 5*time.Second)
	svc.mg = sender
	return svc
}

func testMessage() *models.ContactMessage {
	return &models.ContactMessage{
		ID:        uuid.New(),
		Name:      "Sri Ram",
		Email:     "sriram@example.com",
		Message:   "Hello from the contact form",
		CreatedAt: time.Now().UTC(),
	}
}

func TestNotificationService_Send(t *testing.T) {
	t.Run("delivers one email to the owner", func(t *testing.T) {
		sender := newStubSender()
		svc := testNotificationService(sender)

		svc.send(testMessage())

		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 sent message, got %d", len(sender.sent))
		}
		if !strings.Contains(sender.lastFrom, "noreply@test.example.com") {
			t.Errorf("expected from address in %q", sender.lastFrom)
		}
	})

	t.Run("send failure is absorbed", func(t *testing.T) {
		sender := newStubSender()
		sender.sendErr = errors.New("mailgun unavailable")
		svc := testNotificationService(sender)

		// Must not panic and must not send
		svc.send(testMessage())

		if len(sender.sent) != 0 {
			t.Errorf("expected 0 sent messages, got %d", len(sender.sent))
		}
	})
}

func TestNotificationService_NotifyNewMessage(t *testing.T) {
	t.Run("nil service is a no-op", func(t *testing.T) {
		var svc *NotificationService
		// Must not panic; mirrors running without Mailgun credentials
		svc.NotifyNewMessage(testMessage())
	})

	t.Run("returns without waiting for delivery", func(t *testing.T) {
		sender := newStubSender()
		svc := testNotificationService(sender)

		done := make(chan struct{})
		go func() {
			svc.NotifyNewMessage(testMessage())
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("NotifyNewMessage blocked the caller")
		}
	})
}
