package main

import (
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"

	"qa-review-be/internal/constant"
	"qa-review-be/internal/model"
	"qa-review-be/pkg/database"
)

func main() {
	// Load Environment Variables
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

	color.Cyan("Seeding reviewers...")

	pharm := "clinical_pharmacology"
	reviewers := []model.Reviewer{
		{Id: uuid.New(), Email: "admin@example.com", FullName: "Admin User", Role: constant.RoleAdmin, IsActive: true},
		{Id: uuid.New(), Email: "reviewer@example.com", FullName: "Jordan Reviewer", Specialization: &pharm, Role: constant.RoleReviewer, IsActive: true},
	}

	for _, r := range reviewers {
		var existing model.Reviewer
		if err := db.Where("email = ?", r.Email).First(&existing).Error; err == nil {
			color.Yellow("Reviewer '%s' already exists, skipping...", r.Email)
			continue
		}

		if err := db.Create(&r).Error; err != nil {
			color.Red("Error creating reviewer '%s': %v", r.Email, err)
		} else {
			color.Green("Created reviewer: %s (%s)", r.FullName, r.Role)
		}
	}

	color.Cyan("Seeding queue items...")

	items := []model.ResponseQueue{
		{
			Id:        uuid.New(),
			Intent:    "interaction",
			QueryText: "Can I take warfarin with aspirin?",
			Slots:     datatypes.JSON(`{"subject_drug": "warfarin", "object_drug": "aspirin"}`),
			Segments: datatypes.JSON(`[
				{"id": "S1", "text": "Taking warfarin together with aspirin increases the risk of serious bleeding."},
				{"id": "S2", "text": "Avoid this combination unless directed by your prescriber; monitor INR closely."},
				{"id": "S3", "text": "Both drugs affect hemostasis through complementary mechanisms."}
			]`),
			GeneratedAt: time.Now(),
			Status:      constant.StatusPending,
		},
		{
			Id:        uuid.New(),
			Intent:    "dosing",
			QueryText: "What is the amoxicillin dose for sinusitis?",
			Slots:     datatypes.JSON(`{"drug": "amoxicillin", "indication": "sinusitis"}`),
			Segments: datatypes.JSON(`[
				{"id": "S1", "text": "The usual adult dose is 500 mg."},
				{"id": "S2", "text": "Take it every 8 hours for 10 days."},
				{"id": "S3", "text": "Take with food if stomach upset occurs."}
			]`),
			GeneratedAt: time.Now(),
			Status:      constant.StatusPending,
		},
	}

	for _, item := range items {
		var existing model.ResponseQueue
		if err := db.Where("query_text = ?", item.QueryText).First(&existing).Error; err == nil {
			color.Yellow("Queue item '%s' already exists, skipping...", item.QueryText)
			continue
		}

		if err := db.Create(&item).Error; err != nil {
			color.Red("Error creating queue item '%s': %v", item.QueryText, err)
		} else {
			color.Green("Created queue item: %s (%s)", item.QueryText, item.Intent)
		}
	}

	color.Green("Seeding completed!")
}
