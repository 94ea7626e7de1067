package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmorandeau/portfolio-os/internal/application/usecase/contact"
	"github.com/nmorandeau/portfolio-os/pkg/apperror"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

type ContactHandler struct {
	contact *contact.Service
	logger  logger.Logger
}

func NewContactHandler(svc *contact.Service, log logger.Logger) *ContactHandler {
	return &ContactHandler{contact: svc, logger: log}
}

func (h *ContactHandler) Send(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid contact message", err))
		return
	}
	result, err := h.contact.Send(c.Request.Context(), contact.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
		Company: req.Company,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}
