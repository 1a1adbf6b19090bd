// Command main runs the database seeder for the portfolio backend.
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/seed"
)

func main() {
	// Parse command line flags
	fixturesPath := flag.String("fixtures", "", "Path to a YAML fixtures file overriding the built-in dataset")
	force := flag.Bool("force", false, "Seed even when a profile already exists")
	flag.Parse()

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{Force: *force, FixturesPath: *fixturesPath}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding finished.")
}
