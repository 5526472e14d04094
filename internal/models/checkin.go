package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the wire format for calendar dates (day granularity).
const DateLayout = "2006-01-02"

// CheckIn records that a habit was completed on a calendar date.
// At most one row exists per (habit_id, date); the recorder upserts.
type CheckIn struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HabitID   uint      `gorm:"not null;uniqueIndex:idx_checkins_habit_date" json:"habit_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_checkins_habit_date" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON emits the date as YYYY-MM-DD; check-ins have no time component.
func (c CheckIn) MarshalJSON() ([]byte, error) {
	type alias CheckIn
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{alias(c), c.Date.Format(DateLayout)})
}

// CivilDate truncates t to UTC midnight, the canonical check-in key.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a canonical civil date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
