package main

import (
	"log"

	"github.com/joho/godotenv"

	"lide-archiv/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	for i, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("Migration statement %d failed: %v", i+1, err)
		}
	}

	log.Println("Migrations completed")
}
