package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mixedpower/adapters/stats/engine"
	"mixedpower/app"
	"mixedpower/internal/config"
	"mixedpower/ui"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(cfg.Server.GinMode)

	opts := engine.DefaultSolveOptions()
	opts.MaxIterations = cfg.Solver.MaxIterations
	service := app.NewPowerServiceWithOptions(opts)

	server := ui.NewServer(service)
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
