package team

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gullyscore/api/config"
)

// RegisterTeamRoutes wires the team configuration endpoints into the API group.
func RegisterTeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo, appConfig)

	teams := router.Group("/teams")
	{
		teams.GET("", teamController.GetTeams)
		teams.PUT("", teamController.ReplaceTeams)
	}
}
