package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"rescueos-be/internal/model"
	"rescueos-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds a demo rescue with a small adoption pipeline so the dashboard has
// something to show on a fresh database. Safe to run repeatedly.
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

	color.Cyan("Seeding demo data...")

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	owner := model.Profile{
		Id:           uuid.MustParse("1f9e74f2-0a63-4a17-9c5e-000000000001"),
		Email:        "demo@rescueos.app",
		DisplayName:  "Demo Owner",
		PasswordHash: string(hash),
	}
	upsert(db, "id", &owner)

	rescue := model.Rescue{
		Id:                 uuid.MustParse("1f9e74f2-0a63-4a17-9c5e-000000000002"),
		Name:               "Sunny Paws Rescue",
		Slug:               "sunny-paws-rescue",
		ContactEmail:       "hello@sunnypaws.example",
		OwnerUserId:        owner.Id,
		IsPublic:           true,
		PlanTier:           "free",
		VerificationStatus: "unverified",
	}
	upsert(db, "id", &rescue)

	member := model.RescueMember{
		RescueId: rescue.Id,
		UserId:   owner.Id,
		Role:     "owner",
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&member).Error; err != nil {
		log.Fatalf("Error: Failed to seed membership: %v", err)
	}

	animals := []model.Animal{
		{
			Id:            uuid.MustParse("1f9e74f2-0a63-4a17-9c5e-000000000010"),
			RescueId:      rescue.Id,
			Name:          "Biscuit",
			Species:       "dog",
			Breed:         ptr("beagle mix"),
			Age:           ptr("2 years"),
			Sex:           ptr("male"),
			Description:   ptr("Gentle couch potato, good with kids."),
			Status:        "available",
			PipelineStage: "available",
			Tags:          tags("house-trained", "kid-friendly"),
			IsActive:      true,
		},
		{
			Id:            uuid.MustParse("1f9e74f2-0a63-4a17-9c5e-000000000011"),
			RescueId:      rescue.Id,
			Name:          "Clementine",
			Species:       "cat",
			Breed:         ptr("orange tabby"),
			Age:           ptr("8 months"),
			Sex:           ptr("female"),
			Description:   ptr("Playful kitten, needs a patient home."),
			Status:        "available",
			PipelineStage: "foster",
			Tags:          tags("litter-trained"),
			IsActive:      true,
		},
		{
			Id:            uuid.MustParse("1f9e74f2-0a63-4a17-9c5e-000000000012"),
			RescueId:      rescue.Id,
			Name:          "Moose",
			Species:       "dog",
			Breed:         ptr("great dane"),
			Age:           ptr("5 years"),
			Sex:           ptr("male"),
			Status:        "adopted",
			PipelineStage: "adopted",
			IsActive:      true,
		},
	}
	for i := range animals {
		upsert(db, "id", &animals[i])
	}

	expires := time.Now().AddDate(0, 0, 90)
	inquiries := []model.Inquiry{
		{
			Id:             uuid.MustParse("1f9e74f2-0a63-4a17-9c5e-000000000020"),
			RescueId:       rescue.Id,
			AnimalId:       animals[0].Id,
			AdopterName:    "Jamie Rivera",
			AdopterEmail:   "jamie@example.com",
			Message:        "We have a fenced yard and two kids who adore beagles. Is Biscuit still available?",
			Status:         "new",
			TrackingToken:  uuid.NewString(),
			TokenExpiresAt: &expires,
		},
		{
			Id:             uuid.MustParse("1f9e74f2-0a63-4a17-9c5e-000000000021"),
			RescueId:       rescue.Id,
			AnimalId:       animals[1].Id,
			AdopterName:    "Priya Shah",
			AdopterEmail:   "priya@example.com",
			Message:        "Long-time cat owner looking for a kitten companion for my senior tabby.",
			Status:         "contacted",
			TrackingToken:  uuid.NewString(),
			TokenExpiresAt: &expires,
		},
	}
	for i := range inquiries {
		upsert(db, "id", &inquiries[i])
	}

	color.Green("Success: Seeded 1 rescue, %d animals, %d inquiries.", len(animals), len(inquiries))
	color.Yellow("Demo login: demo@rescueos.app / demo-password")
}

func upsert(db *gorm.DB, key string, value interface{}) {
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: key}},
		UpdateAll: true,
	}).Create(value).Error
	if err != nil {
		log.Fatalf("Error: Failed to seed %T: %v", value, err)
	}
}

func ptr(s string) *string {
	return &s
}

func tags(values ...string) datatypes.JSON {
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}
