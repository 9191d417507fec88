package history

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gullyscore/api/config"
)

// RegisterHistoryRoutes wires the archive read endpoints into the API group.
func RegisterHistoryRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	historyRepo := NewHistoryRepository(db)
	historyController := NewHistoryController(historyRepo, appConfig)

	hist := router.Group("/history")
	{
		hist.GET("", historyController.GetHistory)
		hist.GET("/:id", historyController.GetHistoryRecord)
	}
}
