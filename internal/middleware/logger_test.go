package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func serveWithLogger(t *testing.T, status int, path string) *observer.ObservedLogs {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core).Sugar()

	r := gin.New()
	r.Use(Logger(logger))
	r.GET("/endpoint", func(c *gin.Context) {
		c.Status(status)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	return logs
}

func TestLogger(t *testing.T) {
	t.Run("success logged at info", func(t *testing.T) {
		logs := serveWithLogger(t, http.StatusOK, "/endpoint")

		entries := logs.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, zap.InfoLevel, entries[0].Level)
	})

	t.Run("client error logged at warn", func(t *testing.T) {
		logs := serveWithLogger(t, http.StatusBadRequest, "/endpoint")

		entries := logs.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, zap.WarnLevel, entries[0].Level)
	})

	t.Run("server error logged at error", func(t *testing.T) {
		logs := serveWithLogger(t, http.StatusInternalServerError, "/endpoint")

		entries := logs.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	})

	t.Run("query string included", func(t *testing.T) {
		logs := serveWithLogger(t, http.StatusOK, "/endpoint?limit=5")

		entries := logs.All()
		assert.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "limit=5", fields["query"])
	})
}
