// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/trenchcomp/teams-service/internal/team/model"
	"github.com/trenchcomp/teams-service/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// List handles GET /api/teams request. Returns all teams, newest first.
func (h *Handler) List(c *gin.Context) {
	teams, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error fetching teams", "error", err)
		serverErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// ListRecent handles GET /api/teams/recent request. Returns the limit most
// recent teams projected to summary fields. A missing, non-numeric or
// non-positive limit falls back to the default.
func (h *Handler) ListRecent(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = service.DefaultRecentLimit
	}

	summaries, err := h.service.ListRecent(c.Request.Context(), limit)
	if err != nil {
		h.logger.Errorw("error fetching recent teams", "error", err)
		serverErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// Count handles GET /api/teams/count request.
func (h *Handler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error counting teams", "error", err)
		serverErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, teamModel.CountResponse{Count: count})
}

// GetByID handles GET /api/teams/:id request.
func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")

	team, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			messageResponse(c, http.StatusNotFound, "Team not found")
			return
		}
		h.logger.Errorw("error fetching team", "id", id, "error", err)
		serverErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, team)
}

// Register handles POST /api/teams/register request. Validation failures
// are reported with the validator's reason and are not server faults.
func (h *Handler) Register(c *gin.Context) {
	var req teamModel.RegisterTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		messageResponse(c, http.StatusBadRequest, "All fields are required")
		return
	}

	team, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		var validationErr *teamModel.ValidationError
		if errors.As(err, &validationErr) {
			messageResponse(c, http.StatusBadRequest, validationErr.Message)
			return
		}
		h.logger.Errorw("error registering team", "team_name", req.TeamName, "error", err)
		serverErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, team)
}
