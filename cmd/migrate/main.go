package main

import (
	"log"
	"os"

	"ai-studymate-be/internal/model"
	"ai-studymate-be/pkg/database"

	"github.com/joho/godotenv"
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

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// pgvector is optional. When the extension cannot be installed the
	// embedding table falls back to a jsonb column and similarity search
	// runs in-process instead of in the database.
	vectorAvailable := true
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS vector;`).Error; err != nil {
		vectorAvailable = false
		log.Printf("Warn: pgvector extension unavailable (%v). Using jsonb fallback for embeddings.", err)
	}

	// 4. AutoMigrate Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.Note{},
		&model.UserQuestion{},
		&model.UserKnowledgeProfile{},
	}
	if vectorAvailable {
		models = append(models, &model.NoteEmbedding{})
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Fallback embedding table (jsonb instead of vector)
	if !vectorAvailable {
		log.Println("Step 3: Creating jsonb embedding table...")

		fallbackSQL := []string{
			`CREATE TABLE IF NOT EXISTS note_embeddings (
				id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
				note_id uuid NOT NULL,
				user_id uuid NOT NULL,
				content_type text NOT NULL,
				document text,
				embedding_value jsonb,
				created_at timestamptz NOT NULL DEFAULT now(),
				updated_at timestamptz,
				CONSTRAINT idx_note_embeddings_note_type UNIQUE (note_id, content_type)
			);`,
			`CREATE INDEX IF NOT EXISTS idx_note_embeddings_user_id ON note_embeddings (user_id);`,
		}
		for _, sql := range fallbackSQL {
			if err := db.Exec(sql).Error; err != nil {
				log.Fatalf("Error: Failed to create fallback embedding table: %v", err)
			}
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
