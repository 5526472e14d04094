package models

import (
	"time"
)

// DefaultHabitColor is applied when a habit is created without a color.
const DefaultHabitColor = "#3b82f6"

// Habit is a user-defined habit to be checked in daily.
// A user cannot have two habits with the same name. Habits are archived
// (flag) to hide them while keeping history, and hard-deleted to remove
// them with their check-ins; deletion frees the name for reuse.
type Habit struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"not null;uniqueIndex:idx_habits_user_name" json:"user_id"`
	Name     string `gorm:"not null;uniqueIndex:idx_habits_user_name" json:"name"`
	Color    string `gorm:"default:#3b82f6" json:"color"`
	Archived bool   `gorm:"default:false;index" json:"archived"`
	// Streak is not persisted; computed at query time
	Streak    *StreakSnapshot `gorm:"-" json:"streak,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	CheckIns  []CheckIn       `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE" json:"-"`
}

// StreakSnapshot is the derived streak state for one habit.
type StreakSnapshot struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}
