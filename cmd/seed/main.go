package main

import (
	"log"
	"os"
	"time"

	"ai-studymate-be/internal/model"
	"ai-studymate-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

// Seeds a handful of notes and questions for local development. The
// embed consumer picks the notes up once the REST process is running.
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

	userId := uuid.MustParse(getEnv("SEED_USER_ID", "00000000-0000-0000-0000-000000000001"))

	notes := []model.Note{
		{
			Id:        uuid.New(),
			UserId:    userId,
			Title:     "Photosynthesis basics",
			Content:   "Photosynthesis converts light energy into chemical energy stored in glucose. Chlorophyll absorbs mostly red and blue light.",
			Summary:   "Light energy to glucose via chlorophyll.",
			CreatedAt: time.Now(),
		},
		{
			Id:        uuid.New(),
			UserId:    userId,
			Title:     "Cell respiration",
			Content:   "Cellular respiration breaks down glucose to produce ATP. Glycolysis happens in the cytoplasm, the Krebs cycle in mitochondria.",
			Summary:   "Glucose to ATP through glycolysis and the Krebs cycle.",
			CreatedAt: time.Now(),
		},
	}
	for i := range notes {
		if err := db.Create(&notes[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed note: %v", err)
		}
	}

	question := model.UserQuestion{
		Id:             uuid.New(),
		UserId:         userId,
		Question:       "What pigment drives photosynthesis?",
		Answer:         "Chlorophyll, absorbing mostly red and blue light.",
		ContextNoteIds: datatypes.JSON([]byte(`["` + notes[0].Id.String() + `"]`)),
		TopicTags:      datatypes.JSON([]byte(`["biology","photosynthesis"]`)),
		Difficulty:     "easy",
		CreatedAt:      time.Now(),
	}
	if err := db.Create(&question).Error; err != nil {
		log.Fatalf("Error: Failed to seed question: %v", err)
	}

	log.Printf("✅ Success: Seeded %d notes and 1 question for user %s", len(notes), userId)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
