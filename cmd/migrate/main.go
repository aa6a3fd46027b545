package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"qa-review-be/internal/model"
	"qa-review-be/pkg/database"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting GORM Migration...")

	// 2. Pre-Migration: extensions GORM AutoMigrate doesn't create
	color.Yellow("Step 1: Setting up extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Red("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 3. AutoMigrate All Models
	color.Yellow("Step 2: Running AutoMigrate for 7 tables...")

	models := []interface{}{
		&model.Reviewer{},
		&model.ResponseQueue{},
		&model.Review{},
		&model.ReviewAuditLog{},
		&model.RereviewRequest{},
		&model.ReviewSession{},
		&model.ProductionUpdate{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	color.Green("Migration completed!")
}
