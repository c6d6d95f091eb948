// main.go
package main

import (
	"ricemill-app/config"
	"ricemill-app/controllers"
	"ricemill-app/logger"
	"ricemill-app/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	log := logger.Must(logger.New())
	defer func() { _ = log.Sync() }()

	cfg := config.Load()

	// Initialize the database.
	if err := config.InitDB(cfg.DBPath); err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	controllers.Logger = log

	// Create a new Gin router.
	router := gin.Default()

	// Register the API routes.
	routes.RegisterRoutes(router)

	log.Info("starting server", zap.String("port", cfg.Port), zap.String("db", cfg.DBPath))
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("failed to run server", zap.Error(err))
	}
}
