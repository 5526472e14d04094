// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Theme values a user can select for the web client.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// User represents an account in the habit tracker.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Theme     string         `gorm:"default:light" json:"theme"`
	IsAdmin   bool           `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Habits    []Habit        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"habits,omitempty"`
}
