package http

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nmorandeau/portfolio-os/internal/application/service"
	"github.com/nmorandeau/portfolio-os/pkg/apperror"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

const mediaFolder = "portfolio"

type MediaHandler struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewMediaHandler(up service.Uploader, log logger.Logger) *MediaHandler {
	return &MediaHandler{uploader: up, logger: log}
}

// Upload receives a multipart image and returns its public URL. The route is
// only registered when an uploader is configured.
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("missing multipart file field", err))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInvalidInput("unable to open uploaded file", err))
		return
	}
	defer src.Close()

	base := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	publicID := base + "-" + uuid.NewString()

	url, err := h.uploader.Upload(c.Request.Context(), src, mediaFolder, publicID)
	if err != nil {
		c.Error(apperror.NewUpstream("media upload failed", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "publicId": publicID})
}

func (h *MediaHandler) Delete(c *gin.Context) {
	publicID := c.Param("id")
	if err := h.uploader.Delete(c.Request.Context(), publicID); err != nil {
		c.Error(apperror.NewUpstream("media delete failed", err))
		return
	}
	c.Status(http.StatusNoContent)
}
