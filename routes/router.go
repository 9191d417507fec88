package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/gullyscore/api/config"
	"github.com/gullyscore/api/internal/history"
	"github.com/gullyscore/api/internal/match"
	"github.com/gullyscore/api/internal/player"
	"github.com/gullyscore/api/internal/team"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>GullyScore</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>GullyScore 🏏</h1>
					<p>Ball-by-ball scoring API. See <a href="/swagger/index.html">swagger</a>.</p>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	player.RegisterPlayerRoutes(api, db, appConfig)
	team.RegisterTeamRoutes(api, db, appConfig)
	match.RegisterMatchRoutes(api, db, appConfig)
	history.RegisterHistoryRoutes(api, db, appConfig)

	return r
}
