package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nmorandeau/portfolio-os/internal/application/usecase/snapshot"
	"github.com/nmorandeau/portfolio-os/pkg/apperror"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

type SnapshotHandler struct {
	snapshots  *snapshot.Service
	publishDir string
	logger     logger.Logger
}

func NewSnapshotHandler(snapshots *snapshot.Service, publishDir string, log logger.Logger) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots, publishDir: publishDir, logger: log}
}

// Export produces a downloadable snapshot of the current persisted state.
func (h *SnapshotHandler) Export(c *gin.Context) {
	snap := h.snapshots.Create()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", snapshot.PublishedFileName))
	c.JSON(http.StatusOK, snap)
}

// Import normalizes and applies a raw snapshot body. Any syntactically valid
// JSON object is accepted; unusable payloads come back as 400.
func (h *SnapshotHandler) Import(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.Error(apperror.NewInvalidInput("unable to read request body", err))
		return
	}
	snap, err := h.snapshots.Import(raw)
	if err != nil {
		c.Error(err)
		return
	}
	h.logger.Info("snapshot imported", zap.String("version", snap.Version))
	c.JSON(http.StatusOK, gin.H{"version": snap.Version})
}

// Publish writes the public snapshot file, the same export the worker
// refreshes on content events, for deployments running without a broker.
func (h *SnapshotHandler) Publish(c *gin.Context) {
	if h.publishDir == "" {
		c.Error(apperror.NewInvalidInput("no publish directory is configured", nil))
		return
	}
	path, err := h.snapshots.Publish(h.publishDir)
	if err != nil {
		c.Error(apperror.NewInternal("cannot publish snapshot", err))
		return
	}
	h.logger.Info("snapshot published", zap.String("path", path))
	c.JSON(http.StatusOK, gin.H{"path": path})
}
