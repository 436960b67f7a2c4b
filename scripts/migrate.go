package main

import (
	"log"
	"os"

	"github.com/pulsehq/meeting-relevance/internal/infrastructure/database"
	"github.com/pulsehq/meeting-relevance/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database using GORM
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Apply migrations from the migrations/ directory
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	os.Exit(0)
}
