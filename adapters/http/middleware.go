package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmorandeau/portfolio-os/pkg/apperror"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

// ErrorMiddleware turns errors attached by handlers into JSON responses,
// mapping apperror kinds to HTTP statuses. Anything else is a 500 with a
// generic body; the details only go to the log.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if status >= http.StatusInternalServerError {
				log.Error("request failed", err)
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("request failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
