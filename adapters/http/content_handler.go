package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmorandeau/portfolio-os/internal/application/usecase/reconcile"
	"github.com/nmorandeau/portfolio-os/pkg/apperror"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

// ContentHandler serves the public, read-only side: every response is the
// reconciled view of defaults, custom content and hidden sets.
type ContentHandler struct {
	reconciler *reconcile.Service
	logger     logger.Logger
}

func NewContentHandler(reconciler *reconcile.Service, log logger.Logger) *ContentHandler {
	return &ContentHandler{reconciler: reconciler, logger: log}
}

func (h *ContentHandler) GetSiteContent(c *gin.Context) {
	c.JSON(http.StatusOK, SiteContent{
		Projects:         h.reconciler.Projects(),
		Categories:       h.reconciler.ProjectCategories(),
		Experiences:      h.reconciler.Experiences(),
		SkillCategories:  h.reconciler.SkillCategories(),
		Certifications:   h.reconciler.Certifications(),
		Articles:         h.reconciler.Articles(),
		TechWatchProfile: h.reconciler.TechWatchProfile(),
	})
}

func (h *ContentHandler) GetProjects(c *gin.Context) {
	projects := h.reconciler.Projects()
	if category := c.Query("category"); category != "" {
		projects = reconcile.FilterByCategory(projects, category)
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ContentHandler) GetProjectCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.reconciler.ProjectCategories())
}

func (h *ContentHandler) GetProjectBySlug(c *gin.Context) {
	value := c.Param("slug")
	project, ok := h.reconciler.ProjectBySlug(value)
	if !ok {
		c.Error(apperror.NewNotFound("project", value))
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ContentHandler) GetExperiences(c *gin.Context) {
	c.JSON(http.StatusOK, h.reconciler.Experiences())
}

func (h *ContentHandler) GetSkillCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.reconciler.SkillCategories())
}

func (h *ContentHandler) GetCertifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.reconciler.Certifications())
}

func (h *ContentHandler) GetArticles(c *gin.Context) {
	c.JSON(http.StatusOK, h.reconciler.Articles())
}

func (h *ContentHandler) GetTechWatch(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"profile":            h.reconciler.TechWatchProfile(),
		"accountsByPlatform": h.reconciler.SocialAccountsByPlatform(),
	})
}
