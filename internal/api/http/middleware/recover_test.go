package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/techhive/userdir/internal/testutil"
)

func TestRecover_Handle_PanicBecomesOpaque500(t *testing.T) {
	var buf bytes.Buffer
	engine := gin.New()
	engine.Use(NewRecover(captureLogger(&buf)).Handle)
	engine.GET("/panic", func(c *gin.Context) {
		panic("secret detail that must not leak")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error."}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "secret detail")

	logged := buf.String()
	assert.Contains(t, logged, "unhandled panic")
	assert.Contains(t, logged, "secret detail that must not leak")
	assert.Contains(t, logged, "path=/panic")
}

func TestRecover_Handle_PassesThroughNormally(t *testing.T) {
	engine := gin.New()
	engine.Use(NewRecover(testutil.MakeNoopLogger()).Handle)
	engine.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
