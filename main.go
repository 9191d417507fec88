package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/gullyscore/api/config"
	_ "github.com/gullyscore/api/docs"
	"github.com/gullyscore/api/internal/history"
	"github.com/gullyscore/api/internal/match"
	"github.com/gullyscore/api/internal/player"
	"github.com/gullyscore/api/internal/team"
	"github.com/gullyscore/api/routes"
)

// @title GullyScore REST API
// @version 1.0
// @description Ball-by-ball cricket scoring server 🏏
// @host localhost:5000
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&player.Player{},
		&team.Team{}, &team.TeamMember{},
		&match.Match{},
		&history.Record{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Info("AutoMigrate successful")

	if err := team.NewTeamRepository(config.DB).EnsureDefaults(); err != nil {
		log.Fatalf("Failed to seed default teams: %v", err)
	}

	r := routes.SetupRoutes(config.DB, cfg)

	log.WithFields(log.Fields{"port": cfg.App.Port, "env": cfg.App.Env}).
		Info("Starting server")
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
