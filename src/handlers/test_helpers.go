package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sriramnerella/portfolio-server/src/middleware"
	"github.com/sriramnerella/portfolio-server/src/repositories"
	"github.com/sriramnerella/portfolio-server/src/services"
	"golang.org/x/crypto/bcrypt"
)

// Test helpers for handler tests

const (
	testSessionSecret = "handler-test-secret-at-least-32-chars"
	testAdminUser     = "admin"
	testAdminPass     = "portfolio123"
)

// testTemplates are minimal stand-ins for the real page templates
func testTemplates() *template.Template {
	tpl := template.New("")
	template.Must(tpl.New("index.html").Parse(`home {{.error}}`))
	template.Must(tpl.New("about.html").Parse(`about`))
	template.Must(tpl.New("projects.html").Parse(`projects`))
	template.Must(tpl.New("achievements.html").Parse(`achievements`))
	template.Must(tpl.New("contact.html").Parse(`contact success={{.success}} error={{.error}}`))
	template.Must(tpl.New("admin_login.html").Parse(`login error={{.error}}`))
	template.Must(tpl.New("admin_dashboard.html").Parse(`dashboard error={{.error}} {{range .messages}}{{.Name}};{{end}}`))
	return tpl
}

// newTestRouter wires the handlers the way main.go does, backed by the
// given repository and (possibly nil) notifier
func newTestRouter(t *testing.T, repo repositories.MessageRepository, notifier *services.NotificationService) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if err := middleware.SetSessionSecret(testSessionSecret); err != nil {
		t.Fatalf("failed to set session secret: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPass), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	resumePath := filepath.Join(t.TempDir(), "resume.pdf")

	admins := services.NewAdminService(testAdminUser, string(hash))
	messages := services.NewMessageServiceWithRepo(repo)
	contactHandler := NewContactHandler(messages, notifier)
	adminHandler := NewAdminHandler(admins, messages, resumePath)

	router := gin.New()
	router.SetHTMLTemplate(testTemplates())

	router.POST("/contact", contactHandler.HandleSubmit)
	router.GET("/admin/login", adminHandler.HandleLoginPage)
	router.POST("/admin/login", adminHandler.HandleLogin)
	router.GET("/admin/logout", adminHandler.HandleLogout)

	authorized := router.Group("/admin", middleware.RequireAdmin())
	authorized.GET("/dashboard", adminHandler.HandleDashboard)
	authorized.POST("/delete-message/:id", adminHandler.HandleDeleteMessage)
	authorized.POST("/upload-resume", adminHandler.HandleUploadResume)

	return router, resumePath
}

// adminSessionCookie returns a valid session cookie for the test admin
func adminSessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := middleware.GenerateSessionToken(testAdminUser)
	if err != nil {
		t.Fatalf("failed to generate session token: %v", err)
	}
	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

// postForm submits a form-encoded POST and returns the recorder
func postForm(router *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)
	return w
}

// get performs a GET and returns the recorder
func get(router *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)
	return w
}

// assertRedirect checks for a 302 to the expected location
func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != location {
		t.Errorf("expected redirect to %s, got %s", location, loc)
	}
}
