// Command main runs the database seeder for HabitLoop.
package main

import (
	"flag"
	"log"

	"habitloop/internal/config"
	"habitloop/internal/database"
	"habitloop/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 5, "Number of users to create")
	habitsPerUser := flag.Int("habits", 4, "Number of habits per user")
	maxDays := flag.Int("days", 90, "Days of check-in history to generate")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	presetsPath := flag.String("presets", "", "Path to a YAML habit catalog (default: built-in)")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store plaintext passwords (throwaway databases only)")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d habits each, %d days of history, clean=%v\n",
		*numUsers, *habitsPerUser, *maxDays, *shouldClean)

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

	if err := seed.Seed(db, seed.Options{
		NumUsers:      *numUsers,
		HabitsPerUser: *habitsPerUser,
		MaxDays:       *maxDays,
		ShouldClean:   *shouldClean,
		PresetsPath:   *presetsPath,
		SkipBcrypt:    *skipBcrypt,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the password: password123")
}
