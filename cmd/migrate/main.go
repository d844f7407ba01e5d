package main

import (
	"os"

	"studynotes-be/internal/config"
	"studynotes-be/internal/model"
	"studynotes-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.Open(cfg.Database.Driver, cfg.Database.Connection, false)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Starting GORM migration (%s)", cfg.Database.Driver)

	// 3. Pre-Migration: Extensions
	if cfg.Database.Driver == database.DriverPostgres || cfg.Database.Driver == "" {
		color.Yellow("Step 1: Setting up extensions...")
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
			color.Red("Warn: Failed to create pgcrypto: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	models := model.All()
	color.Yellow("Step 2: Running AutoMigrate for %d tables...", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	// 5. Post-Migration: indexes GORM tags cannot express
	color.Yellow("Step 3: Creating listing indexes...")
	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_notes_trend ON notes ((likes_count * 2 + views_count) DESC, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_updated_at ON notes (updated_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_note_parent ON comments (note_id, parent_id)`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Red("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	color.Green("Migration completed successfully")
}
