package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmorandeau/portfolio-os/internal/application/usecase/curate"
	"github.com/nmorandeau/portfolio-os/internal/domain/content"
	"github.com/nmorandeau/portfolio-os/pkg/apperror"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

// CurateHandler exposes the admin edit surface. Reads return the raw table
// state (custom rows + hidden ids); writes go through the curate service so
// soft-delete semantics and change events apply uniformly.
type CurateHandler struct {
	curator *curate.Service
	store   content.Store
	logger  logger.Logger
}

func NewCurateHandler(curator *curate.Service, store content.Store, log logger.Logger) *CurateHandler {
	return &CurateHandler{curator: curator, store: store, logger: log}
}

// --- Projects ---

func (h *CurateHandler) GetProjectsState(c *gin.Context) {
	c.JSON(http.StatusOK, TableState[content.Project]{
		Custom:    h.store.CustomProjects(),
		HiddenIDs: h.store.HiddenProjectIDs(),
	})
}

func (h *CurateHandler) ReplaceProjects(c *gin.Context) {
	var req ReplaceTableRequest[content.Project]
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for projects table", err))
		return
	}
	h.curator.ReplaceProjects(req.Custom, req.HiddenIDs)
	c.Status(http.StatusNoContent)
}

func (h *CurateHandler) UpsertProject(c *gin.Context) {
	var item content.Project
	if err := c.ShouldBindJSON(&item); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for project", err))
		return
	}
	c.JSON(http.StatusOK, h.curator.UpsertProject(item))
}

func (h *CurateHandler) RemoveProject(c *gin.Context) {
	h.curator.RemoveProject(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *CurateHandler) RestoreProject(c *gin.Context) {
	h.curator.RestoreProject(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// --- Experiences ---

func (h *CurateHandler) GetExperiencesState(c *gin.Context) {
	c.JSON(http.StatusOK, TableState[content.Experience]{
		Custom:    h.store.CustomExperiences(),
		HiddenIDs: h.store.HiddenExperienceIDs(),
	})
}

func (h *CurateHandler) ReplaceExperiences(c *gin.Context) {
	var req ReplaceTableRequest[content.Experience]
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for experiences table", err))
		return
	}
	h.curator.ReplaceExperiences(req.Custom, req.HiddenIDs)
	c.Status(http.StatusNoContent)
}

func (h *CurateHandler) UpsertExperience(c *gin.Context) {
	var item content.Experience
	if err := c.ShouldBindJSON(&item); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for experience", err))
		return
	}
	c.JSON(http.StatusOK, h.curator.UpsertExperience(item))
}

func (h *CurateHandler) RemoveExperience(c *gin.Context) {
	h.curator.RemoveExperience(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *CurateHandler) RestoreExperience(c *gin.Context) {
	h.curator.RestoreExperience(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// --- Skills ---

func (h *CurateHandler) GetSkillsState(c *gin.Context) {
	c.JSON(http.StatusOK, SkillsState{
		Custom:            h.store.CustomSkillCategories(),
		HiddenCategoryIDs: h.store.HiddenSkillCategoryIDs(),
		HiddenSkillIDs:    h.store.HiddenSkillIDs(),
	})
}

func (h *CurateHandler) ReplaceSkills(c *gin.Context) {
	var req ReplaceSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skills table", err))
		return
	}
	h.curator.ReplaceSkillCategories(req.Custom, req.HiddenCategoryIDs, req.HiddenSkillIDs)
	c.Status(http.StatusNoContent)
}

func (h *CurateHandler) UpsertSkillCategory(c *gin.Context) {
	var item content.SkillCategory
	if err := c.ShouldBindJSON(&item); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill category", err))
		return
	}
	c.JSON(http.StatusOK, h.curator.UpsertSkillCategory(item))
}

func (h *CurateHandler) RemoveSkillCategory(c *gin.Context) {
	h.curator.RemoveSkillCategory(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *CurateHandler) RestoreSkillCategory(c *gin.Context) {
	h.curator.RestoreSkillCategory(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *CurateHandler) HideSkill(c *gin.Context) {
	h.curator.HideSkill(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *CurateHandler) RestoreSkill(c *gin.Context) {
	h.curator.RestoreSkill(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// --- Certifications ---

func (h *CurateHandler) GetCertificationsState(c *gin.Context) {
	c.JSON(http.StatusOK, TableState[content.Certification]{
		Custom:    h.store.CustomCertifications(),
		HiddenIDs: h.store.HiddenCertificationIDs(),
	})
}

func (h *CurateHandler) ReplaceCertifications(c *gin.Context) {
	var req ReplaceTableRequest[content.Certification]
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for certifications table", err))
		return
	}
	h.curator.ReplaceCertifications(req.Custom, req.HiddenIDs)
	c.Status(http.StatusNoContent)
}

func (h *CurateHandler) UpsertCertification(c *gin.Context) {
	var item content.Certification
	if err := c.ShouldBindJSON(&item); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for certification", err))
		return
	}
	c.JSON(http.StatusOK, h.curator.UpsertCertification(item))
}

func (h *CurateHandler) RemoveCertification(c *gin.Context) {
	h.curator.RemoveCertification(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *CurateHandler) RestoreCertification(c *gin.Context) {
	h.curator.RestoreCertification(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// --- Articles ---

func (h *CurateHandler) GetArticlesState(c *gin.Context) {
	c.JSON(http.StatusOK, TableState[content.TechWatchArticle]{
		Custom:    h.store.CustomArticles(),
		HiddenIDs: h.store.HiddenArticleIDs(),
	})
}

func (h *CurateHandler) ReplaceArticles(c *gin.Context) {
	var req ReplaceTableRequest[content.TechWatchArticle]
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for articles table", err))
		return
	}
	h.curator.ReplaceArticles(req.Custom, req.HiddenIDs)
	c.Status(http.StatusNoContent)
}

func (h *CurateHandler) UpsertArticle(c *gin.Context) {
	var item content.TechWatchArticle
	if err := c.ShouldBindJSON(&item); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for article", err))
		return
	}
	c.JSON(http.StatusOK, h.curator.UpsertArticle(item))
}

func (h *CurateHandler) RemoveArticle(c *gin.Context) {
	h.curator.RemoveArticle(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *CurateHandler) RestoreArticle(c *gin.Context) {
	h.curator.RestoreArticle(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// --- Tech-watch profile ---

func (h *CurateHandler) GetTechWatchProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"custom": h.store.CustomTechWatchProfile()})
}

func (h *CurateHandler) UpdateTechWatchProfile(c *gin.Context) {
	var profile content.TechWatchProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for tech-watch profile", err))
		return
	}
	h.curator.UpdateTechWatchProfile(profile)
	c.Status(http.StatusNoContent)
}
