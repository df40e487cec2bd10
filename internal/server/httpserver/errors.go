package httpserver

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/electro/internal/common"
	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, common.ErrInvalidCredentials), errors.Is(err, common.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes the JSON error body for err. Internal failures are
// logged and answered with a generic message.
func (s *HTTPServer) abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		msg = internalErrorMessage
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
