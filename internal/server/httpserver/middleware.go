package httpserver

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/electro/internal/common"
	"github.com/dmitrijs2005/electro/internal/server/auth"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

func cors(c *gin.Context) {
	h := c.Writer.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization")
	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

func (s *HTTPServer) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.logger.Info(c.Request.Context(), "request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}

// requireToken rejects requests without a valid bearer token and stores the
// caller's auth.Identity in the gin context.
func (s *HTTPServer) requireToken(c *gin.Context) {
	id, err := auth.Authorize(c.GetHeader(common.AuthorizationHeaderName), s.jwtSecret, s.now)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Set(identityKey, id)
	c.Next()
}

func identity(c *gin.Context) auth.Identity {
	id, _ := c.Get(identityKey)
	v, _ := id.(auth.Identity)
	return v
}
