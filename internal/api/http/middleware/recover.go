package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/techhive/userdir/internal/logger"
)

// Recover converts panics escaping a handler into an opaque 500 response.
// Full details are logged server-side and never reach the client.
type Recover struct {
	logger *logger.Logger
}

// NewRecover creates a new Recover middleware.
func NewRecover(logger *logger.Logger) *Recover {
	return &Recover{logger: logger}
}

// Handle runs the rest of the chain under a recover.
func (m *Recover) Handle(c *gin.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			m.logger.Error("unhandled panic",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"panic", fmt.Sprintf("%v", rec),
				"stack", string(debug.Stack()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		}
	}()

	c.Next()
}
