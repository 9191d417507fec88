package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gullyscore/api/config"
)

// RegisterMatchRoutes wires the live-match endpoints into the API group.
func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	matchController := NewMatchController(db, appConfig)

	m := router.Group("/match")
	{
		m.GET("", matchController.GetMatch)
		m.GET("/summary", matchController.GetSummary)
		m.POST("/setup", matchController.SetupMatch)
		m.POST("/start", matchController.StartMatch)
		m.POST("/ball", matchController.RecordBall)
		m.POST("/undo", matchController.UndoBall)
		m.PUT("/batsman", matchController.SelectBatsman)
		m.PUT("/bowler", matchController.SelectBowler)
		m.POST("/end-innings", matchController.EndInnings)
		m.POST("/second-innings", matchController.StartSecondInnings)
		m.POST("/complete", matchController.CompleteMatch)
		m.POST("/reset", matchController.ResetMatch)
		m.POST("/archive", matchController.ArchiveMatch)
	}

	router.POST("/reset-all", matchController.ResetAll)
}
