package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sriramnerella/portfolio-server/src/middleware"
	"github.com/sriramnerella/portfolio-server/src/models"
	"github.com/sriramnerella/portfolio-server/src/services"
)

// maxResumeSize caps résumé uploads at 5 MB
const maxResumeSize = 5 << 20

// AdminHandler handles the admin login flow and the message dashboard
type AdminHandler struct {
	admins     *services.AdminService
	messages   *services.MessageService
	resumePath string
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(admins *services.AdminService, messages *services.MessageService, resumePath string) *AdminHandler {
	return &AdminHandler{
		admins:     admins,
		messages:   messages,
		resumePath: resumePath,
	}
}

// HandleLoginPage renders the login form with any error indicator
func (ah *AdminHandler) HandleLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"page":  "admin",
		"error": c.Query("error"),
	})
}

// HandleLogin authenticates the admin and starts a session. Bad username
// and bad password produce the same redirect so the two cases cannot be
// told apart.
func (ah *AdminHandler) HandleLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	admin, err := ah.admins.Authenticate(username, password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.Error().Err(err).Msg("admin authentication failed")
		}
		c.Redirect(http.StatusFound, "/admin/login?error=invalid_credentials")
		return
	}

	token, err := middleware.GenerateSessionToken(admin.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session token")
		c.Redirect(http.StatusFound, "/admin/login?error=invalid_credentials")
		return
	}

	middleware.SetSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// HandleLogout clears the session cookie and redirects home
func (ah *AdminHandler) HandleLogout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// HandleDashboard renders the stored messages, newest first. A listing
// failure still renders the page, with an error note and no messages.
func (ah *AdminHandler) HandleDashboard(c *gin.Context) {
	messages, err := ah.messages.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to load messages for dashboard")
		c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
			"page":     "admin",
			"messages": []models.ContactMessage{},
			"success":  "",
			"error":    "Failed to load messages",
		})
		return
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"page":     "admin",
		"messages": messages,
		"success":  c.Query("success"),
		"error":    errorNote(c.Query("error")),
	})
}

// errorNote maps dashboard error indicators to display text
func errorNote(code string) string {
	switch code {
	case "":
		return ""
	case "delete_failed":
		return "Failed to delete message"
	case "no_file":
		return "No file was selected"
	case "invalid_file":
		return "Only PDF files up to 5 MB are allowed"
	case "upload_failed":
		return "Failed to update resume"
	default:
		return "Something went wrong"
	}
}

// HandleDeleteMessage removes a message by id. A malformed id reports the
// same failure indicator as a store error; a well-formed id that matches
// nothing is treated as deleted.
func (ah *AdminHandler) HandleDeleteMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/dashboard?error=delete_failed")
		return
	}

	if err := ah.messages.Delete(c.Request.Context(), id); err != nil {
		log.Error().Err(err).Str("message_id", id.String()).Msg("failed to delete message")
		c.Redirect(http.StatusFound, "/admin/dashboard?error=delete_failed")
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard?success=message_deleted")
}

// HandleUploadResume replaces the served résumé PDF with an uploaded file
func (ah *AdminHandler) HandleUploadResume(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/dashboard?error=no_file")
		return
	}

	if file.Size > maxResumeSize || !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		c.Redirect(http.StatusFound, "/admin/dashboard?error=invalid_file")
		return
	}

	// Write beside the target, then rename so the served file is never
	// observed half-written
	tmpPath := ah.resumePath + ".tmp"
	if err := os.MkdirAll(filepath.Dir(ah.resumePath), 0o755); err != nil {
		log.Error().Err(err).Msg("failed to prepare resume directory")
		c.Redirect(http.StatusFound, "/admin/dashboard?error=upload_failed")
		return
	}
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		log.Error().Err(err).Msg("failed to store uploaded resume")
		c.Redirect(http.StatusFound, "/admin/dashboard?error=upload_failed")
		return
	}
	if err := os.Rename(tmpPath, ah.resumePath); err != nil {
		log.Error().Err(err).Msg("failed to replace resume")
		c.Redirect(http.StatusFound, "/admin/dashboard?error=upload_failed")
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard?success=resume_updated")
}
