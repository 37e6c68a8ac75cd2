// main.go
package main

import (
	"log"

	"trip-planner/cmd"
	"trip-planner/internal/data/repository"
	"trip-planner/internal/wire"
	"trip-planner/pkg/database"
	"trip-planner/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Catalog source: database when configured, built-in tables otherwise
	var repos *repository.Repository
	if config.Database.Host != "" {
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to catalog database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Catalog database connected")
		repos = repository.NewRepository(db, logger)
	} else {
		logger.Warn("No catalog database configured, using built-in catalogs")
		repos = repository.NewSeededRepository()
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
