package services

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/rs/zerolog"
	"github.com/sriramnerella/portfolio-server/src/logging"
	"github.com/sriramnerella/portfolio-server/src/models"
)

// mailSender is the slice of the Mailgun client the notifier needs.
// Narrowing it here lets tests substitute a stub transport.
type mailSender interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

// NotificationService emails the site owner about new contact submissions
// via Mailgun. Delivery is best-effort: sends run in the background under a
// deadline, and failures are logged and swallowed. A nil *NotificationService
// is valid and does nothing, which is how the server runs when Mailgun
// credentials are absent.
type NotificationService struct {
	mg        mailSender
	fromEmail string
	fromName  string
	recipient string
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewNotificationService creates a notification service with Mailgun configuration
func NewNotificationService(domain, apiKey, fromEmail, fromName, recipient string, timeout time.Duration) *NotificationService {
	return &NotificationService{
		mg:        mailgun.NewMailgun(domain, apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		recipient: recipient,
		timeout:   timeout,
		logger:    logging.NewLogger("notifier"),
	}
}

// NotifyNewMessage starts a background send for the given message and
// returns immediately. The outcome never reaches the caller: persistence
// already succeeded, so the submission is reported successful regardless
// of whether the owner's copy goes out.
func (s *NotificationService) NotifyNewMessage(msg *models.ContactMessage) {
	if s == nil {
		return
	}
	m := *msg
	go s.send(&m)
}

// send builds and delivers the notification email under the configured deadline
func (s *NotificationService) send(msg *models.ContactMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	subject := fmt.Sprintf("New Contact Form Submission from %s", msg.Name)
	textBody := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", msg.Name, msg.Email, msg.Message)

	message := s.mg.NewMessage(
		fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		subject,
		textBody,
		s.recipient,
	)
	message.SetHtml(fmt.Sprintf(
		"<p>Name: %s</p><p>Email: %s</p><p>Message: %s</p>",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Message),
	))
	message.SetReplyTo(msg.Email)

	if _, _, err := s.mg.Send(ctx, message); err != nil {
		s.logger.Error().
			Err(err).
			Str("message_id", msg.ID.String()).
			Msg("failed to send contact notification")
		return
	}

	s.logger.Info().
		Str("message_id", msg.ID.String()).
		Msg("contact notification sent")
}
