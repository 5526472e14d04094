package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"habitloop/internal/models"
)

// SeedOptions tune factory behavior for different environments.
type SeedOptions struct {
	// SkipBcrypt stores a plaintext marker instead of a real hash.
	// Only for throwaway local databases where seeding speed matters.
	SkipBcrypt bool
	// DryRun builds models without persisting them.
	DryRun bool
	// MaxDays bounds how far back check-in history reaches.
	MaxDays int
}

// Factory creates realistic fake records for local development.
type Factory struct {
	db     *gorm.DB
	opts   SeedOptions
	rng    *rand.Rand
	nextID int
}

func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a fake user. All seeded users share the password
// "password123" so the demo environment is easy to log into.
func (f *Factory) CreateUser() (*models.User, error) {
	f.nextID++
	username := fmt.Sprintf("%s%d", gofakeit.Username(), f.nextID)
	email := fmt.Sprintf("%s@%s", username, gofakeit.DomainName())

	password := "password123"
	if !f.opts.SkipBcrypt {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			return nil, fmt.Errorf("hashing seed password: %w", err)
		}
		password = string(hashed)
	}

	theme := models.ThemeLight
	if f.rng.Intn(2) == 0 {
		theme = models.ThemeDark
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: password,
		Theme:    theme,
	}
	// Spread signups over the seeded window so dashboards look lived-in.
	user.CreatedAt = time.Now().AddDate(0, 0, -f.rng.Intn(f.opts.MaxDays+1))

	if f.opts.DryRun {
		return user, nil
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("creating seed user: %w", err)
	}
	return user, nil
}

// CreateHabit persists a habit for the given user based on a preset.
func (f *Factory) CreateHabit(userID uint, preset HabitPreset) (*models.Habit, error) {
	habit := &models.Habit{
		UserID:   userID,
		Name:     preset.Name,
		Color:    preset.Color,
		Archived: f.rng.Float64() < 0.1,
	}
	if f.opts.DryRun {
		return habit, nil
	}
	if err := f.db.Create(habit).Error; err != nil {
		return nil, fmt.Errorf("creating seed habit: %w", err)
	}
	return habit, nil
}

// CreateCheckInHistory fills in a habit's check-ins going back up to
// MaxDays from today, using the preset's consistency to produce streaky
// runs rather than uniform noise.
func (f *Factory) CreateCheckInHistory(habitID uint, preset HabitPreset) (int, error) {
	dates := GenerateHistory(f.rng, time.Now().UTC(), f.opts.MaxDays, preset.Consistency)
	if f.opts.DryRun {
		return len(dates), nil
	}

	for _, d := range dates {
		checkIn := models.CheckIn{HabitID: habitID, Date: d}
		if err := f.db.Create(&checkIn).Error; err != nil {
			return 0, fmt.Errorf("creating seed check-in: %w", err)
		}
	}
	return len(dates), nil
}

// GenerateHistory produces ascending civil dates ending at or before
// today. Days are correlated: a checked day raises the odds the next
// day is also checked, producing realistic streaks and gaps.
func GenerateHistory(rng *rand.Rand, now time.Time, maxDays int, consistency float64) []time.Time {
	today := models.CivilDate(now)
	var dates []time.Time

	checkedYesterday := rng.Float64() < consistency
	for offset := maxDays - 1; offset >= 0; offset-- {
		p := consistency
		if checkedYesterday {
			p = consistency + (1-consistency)*0.5
		} else {
			p = consistency * 0.6
		}
		checked := rng.Float64() < p
		if checked {
			dates = append(dates, today.AddDate(0, 0, -offset))
		}
		checkedYesterday = checked
	}
	return dates
}
