package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gullyscore/api/config"
	"github.com/gullyscore/api/internal/team"
)

// RegisterPlayerRoutes wires the roster endpoints into the API group.
func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	playerRepo := NewPlayerRepository(db)
	teamRepo := team.NewTeamRepository(db)
	playerController := NewPlayerController(playerRepo, teamRepo, appConfig)

	players := router.Group("/players")
	{
		players.GET("", playerController.GetAllPlayers)
		players.POST("", playerController.CreatePlayer)
		players.POST("/reset-stats", playerController.ResetStats)
		players.PUT("/:id", playerController.UpdatePlayer)
		players.DELETE("/:id", playerController.DeletePlayer)
	}
}
