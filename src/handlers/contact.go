package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sriramnerella/portfolio-server/src/middleware"
	"github.com/sriramnerella/portfolio-server/src/services"
	"github.com/sriramnerella/portfolio-server/src/validation"
)

// ContactHandler orchestrates the contact form flow:
// validate, persist, best-effort notify, redirect.
type ContactHandler struct {
	messages *services.MessageService
	notifier *services.NotificationService
}

// NewContactHandler creates a new contact handler. The notifier may be nil
// when outbound mail is not configured.
func NewContactHandler(messages *services.MessageService, notifier *services.NotificationService) *ContactHandler {
	return &ContactHandler{
		messages: messages,
		notifier: notifier,
	}
}

// HandleSubmit processes a contact form submission. Outcomes are reported
// through query indicators on the contact page, never as error statuses:
// validation failures and persistence failures redirect with a generic flag,
// and a successful insert redirects with success regardless of whether the
// owner notification goes out.
func (ch *ContactHandler) HandleSubmit(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	message := c.PostForm("message")

	if errs := validation.ValidateContactInput(name, email, message); len(errs) > 0 {
		log.Warn().
			Str("request_id", middleware.GetRequestID(c)).
			Strs("validation_errors", errs).
			Msg("contact submission rejected")
		c.Redirect(http.StatusFound, "/contact?error=validation_failed")
		return
	}

	msg, err := ch.messages.Create(c.Request.Context(), name, email, message)
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Msg("failed to save contact message")
		c.Redirect(http.StatusFound, "/contact?error=database_error")
		return
	}

	log.Info().
		Str("request_id", middleware.GetRequestID(c)).
		Str("message_id", msg.ID.String()).
		Msg("contact message saved")

	// Fire-and-forget; the submission already succeeded
	ch.notifier.NotifyNewMessage(msg)

	c.Redirect(http.StatusFound, "/contact?success=true")
}
