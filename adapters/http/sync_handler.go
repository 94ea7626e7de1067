package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmorandeau/portfolio-os/internal/application/usecase/sync"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

type SyncHandler struct {
	sync   *sync.UseCase
	logger logger.Logger
}

func NewSyncHandler(uc *sync.UseCase, log logger.Logger) *SyncHandler {
	return &SyncHandler{sync: uc, logger: log}
}

// Run triggers a sync pass against the published snapshot and reports the
// outcome: missing, up-to-date, or updated.
func (h *SyncHandler) Run(c *gin.Context) {
	result, err := h.sync.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}
