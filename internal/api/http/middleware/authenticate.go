package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/techhive/userdir/internal/logger"
)

const bearerPrefix = "Bearer "

// Authenticate rejects requests that do not present the shared bearer
// token. A fixed set of paths is allowed through unauthenticated.
type Authenticate struct {
	token  []byte
	logger *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware for the given
// shared-secret token.
func NewAuthenticate(token string, logger *logger.Logger) *Authenticate {
	return &Authenticate{token: []byte(token), logger: logger}
}

// Handle checks the Authorization header and aborts with 401 on mismatch.
func (m *Authenticate) Handle(c *gin.Context) {
	if authSkip(c.Request.URL.Path) {
		c.Next()
		return
	}

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) || !m.tokenMatches(strings.TrimPrefix(header, bearerPrefix)) {
		m.logger.Warn("unauthorized request", "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.Next()
}

// tokenMatches compares the presented token with the shared secret in
// constant time.
func (m *Authenticate) tokenMatches(presented string) bool {
	return subtle.ConstantTimeCompare(m.token, []byte(presented)) == 1
}

// authSkip reports whether the path is served without authentication:
// the favicon, so browsers can probe it, and the swagger UI.
func authSkip(path string) bool {
	return path == "/favicon.ico" || strings.HasPrefix(path, "/swagger/")
}
