package main

import (
	"fmt"
	"log"

	"github.com/rumdien113/tiktok-api/internal/app"
	"github.com/rumdien113/tiktok-api/internal/config"
	"github.com/rumdien113/tiktok-api/internal/util"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Initialize structured logging
	if err := util.InitLogger(cfg); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer util.Logger.Sync()

	// Initialize router
	router := app.NewRouter(cfg)

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	log.Printf("Server starting on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
