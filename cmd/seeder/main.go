package main

import (
	"log"

	"hrms-backend/config"
	"hrms-backend/internal/database"

	"github.com/joho/godotenv"
)

// Provisions the deployment account list. Run once at deployment time;
// safe to re-run, existing accounts are skipped.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	config.ConnectDB()

	log.Println("seeding users...")
	if err := database.SeedUsers(config.DB, database.DefaultUsers); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("seeding complete")
}
