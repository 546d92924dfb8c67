// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/trenchcomp/teams-service/internal/team/handler"
	"github.com/trenchcomp/teams-service/internal/team/repository"
	"github.com/trenchcomp/teams-service/internal/team/service"
)

// RegisterRoutes registers team module routes. The broadcaster receives a
// team:created event after each successful registration.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, broadcaster service.Broadcaster, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, broadcaster, logger)
	h := handler.New(svc, logger)

	teams := r.Group("/api/teams")
	teams.GET("", h.List)
	teams.GET("/recent", h.ListRecent)
	teams.GET("/count", h.Count)
	teams.GET("/:id", h.GetByID)
	teams.POST("/register", h.Register)
}
