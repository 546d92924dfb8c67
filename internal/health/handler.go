// Package health provides the liveness endpoint handler.
package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response represents the health check response.
type Response struct {
	Status string `json:"status"`
}

// Check handles GET /api/health. Liveness only: it reports ok whenever
// the process is serving requests, independent of store availability.
func Check(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Status: "ok"})
}

// RegisterRoutes registers the health endpoint.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/api/health", Check)
}
