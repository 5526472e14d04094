package seed

import (
	"fmt"
	"log"
	"math/rand"

	"gorm.io/gorm"
)

// Options control how much demo data Seed generates.
type Options struct {
	NumUsers      int
	HabitsPerUser int
	// MaxDays of check-in history per habit.
	MaxDays int
	// ShouldClean wipes existing rows before seeding.
	ShouldClean bool
	// PresetsPath points at an optional YAML habit catalog.
	// Empty means the built-in catalog.
	PresetsPath string
	// SkipBcrypt speeds up large seeds on throwaway databases.
	SkipBcrypt bool
}

func DefaultOptions() Options {
	return Options{
		NumUsers:      5,
		HabitsPerUser: 4,
		MaxDays:       90,
	}
}

// Seed populates the database with fake users, habits, and check-in
// history for local development.
func Seed(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 5
	}
	if opts.HabitsPerUser <= 0 {
		opts.HabitsPerUser = 4
	}

	presets, err := loadCatalog(opts.PresetsPath)
	if err != nil {
		return err
	}
	if opts.HabitsPerUser > len(presets) {
		opts.HabitsPerUser = len(presets)
	}

	if opts.ShouldClean {
		log.Println("🧹 Cleaning existing data...")
		if err := clearData(db); err != nil {
			return fmt.Errorf("cleaning database: %w", err)
		}
	}

	factory := NewFactory(db, SeedOptions{
		SkipBcrypt: opts.SkipBcrypt,
		MaxDays:    opts.MaxDays,
	})

	log.Printf("🌱 Seeding %d users with %d habits each...", opts.NumUsers, opts.HabitsPerUser)

	totalHabits := 0
	totalCheckIns := 0
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return err
		}

		for _, preset := range pickPresets(factory.rng, presets, opts.HabitsPerUser) {
			habit, err := factory.CreateHabit(user.ID, preset)
			if err != nil {
				return err
			}
			totalHabits++

			n, err := factory.CreateCheckInHistory(habit.ID, preset)
			if err != nil {
				return err
			}
			totalCheckIns += n
		}
		log.Printf("  ✓ %s (%s)", user.Username, user.Email)
	}

	log.Printf("✓ Seeded %d users, %d habits, %d check-ins", opts.NumUsers, totalHabits, totalCheckIns)
	return nil
}

func loadCatalog(path string) ([]HabitPreset, error) {
	if path != "" {
		return LoadPresets(path)
	}
	return DefaultPresets()
}

// pickPresets returns n distinct presets in random order.
func pickPresets(rng *rand.Rand, presets []HabitPreset, n int) []HabitPreset {
	picked := make([]HabitPreset, 0, n)
	for _, idx := range rng.Perm(len(presets))[:n] {
		picked = append(picked, presets[idx])
	}
	return picked
}

// clearData removes all rows in dependency order.
func clearData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"check_ins", "habits", "users"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
