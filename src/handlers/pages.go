package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sriramnerella/portfolio-server/src/content"
)

// PagesHandler renders the public portfolio pages
type PagesHandler struct {
	content    *content.Content
	resumePath string
}

// NewPagesHandler creates a new pages handler
func NewPagesHandler(c *content.Content, resumePath string) *PagesHandler {
	return &PagesHandler{content: c, resumePath: resumePath}
}

// pageData assembles the template context shared by every page
func (ph *PagesHandler) pageData(c *gin.Context, page string) gin.H {
	return gin.H{
		"data":    ph.content,
		"page":    page,
		"success": c.Query("success"),
		"error":   c.Query("error"),
	}
}

// HandleHome renders the landing page
func (ph *PagesHandler) HandleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", ph.pageData(c, "home"))
}

// HandleAbout renders the about page
func (ph *PagesHandler) HandleAbout(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", ph.pageData(c, "about"))
}

// HandleProjects renders the projects page
func (ph *PagesHandler) HandleProjects(c *gin.Context) {
	c.HTML(http.StatusOK, "projects.html", ph.pageData(c, "projects"))
}

// HandleAchievements renders the achievements page
func (ph *PagesHandler) HandleAchievements(c *gin.Context) {
	c.HTML(http.StatusOK, "achievements.html", ph.pageData(c, "achievements"))
}

// HandleContact renders the contact page with any success/error indicator
// carried over from a form submission redirect
func (ph *PagesHandler) HandleContact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", ph.pageData(c, "contact"))
}

// HandleNotFound renders the landing page with an error note
func (ph *PagesHandler) HandleNotFound(c *gin.Context) {
	data := ph.pageData(c, "home")
	data["error"] = "Page not found"
	c.HTML(http.StatusNotFound, "index.html", data)
}

// HandleDownloadResume streams the résumé PDF, or a plaintext placeholder
// when no file has been uploaded yet
func (ph *PagesHandler) HandleDownloadResume(c *gin.Context) {
	if _, err := os.Stat(ph.resumePath); err == nil {
		c.FileAttachment(ph.resumePath, "sriram_resume.pdf")
		return
	}

	c.Header("Content-Type", "text/plain")
	c.Header("Content-Disposition", `attachment; filename="resume.txt"`)
	c.String(http.StatusOK, "Resume placeholder - PDF file would be available here in production.")
}
