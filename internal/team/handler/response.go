package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the error body returned by team endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// messageResponse writes a JSON error body with the given status.
func messageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// serverErrorResponse writes a generic 500 response. Store failure detail
// stays in the server log.
func serverErrorResponse(c *gin.Context) {
	messageResponse(c, http.StatusInternalServerError, "Server error")
}
