package main

import (
	"log"
	"os"

	"rescueos-be/internal/model"
	"rescueos-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
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

	color.Cyan("Starting GORM migration...")

	// Extensions first, gen_random_uuid() needs pgcrypto.
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	models := []interface{}{
		&model.Profile{},
		&model.Rescue{},
		&model.RescueMember{},
		&model.RescueInvitation{},
		&model.Animal{},
		&model.AnimalPhoto{},
		&model.AnimalStageEvent{},
		&model.Inquiry{},
		&model.InquiryEvent{},
		&model.InquiryNote{},
		&model.EmailLog{},
		&model.SavedReplyTemplate{},
		&model.AbuseReport{},
		&model.ModerationAction{},
		&model.VerificationRequest{},
	}

	color.Cyan("Running AutoMigrate for %d tables...", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// Composite indexes AutoMigrate's tags don't cover.
	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_inquiries_rescue_archived ON inquiries (rescue_id, archived);`,
		`CREATE INDEX IF NOT EXISTS idx_animals_rescue_active ON animals (rescue_id, is_active);`,
		`CREATE INDEX IF NOT EXISTS idx_email_logs_rescue_created ON email_logs (rescue_id, created_at DESC);`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	color.Green("Success: Database migration completed.")
}
