package analytics

import (
	"time"

	"habitloop/internal/models"
)

// CalendarCell is one day in a monthly calendar grid.
type CalendarCell struct {
	Date    string `json:"date"`
	InMonth bool   `json:"in_month"`
	Checked bool   `json:"checked"`
}

// MonthlyCalendar lays out the month as Sunday-started weeks, padded with
// leading and trailing out-of-month days so every row is a full week. Each
// cell carries whether a check-in exists for that date.
func MonthlyCalendar(dates []time.Time, year int, month time.Month) [][]CalendarCell {
	set := dateSet(dates)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Back up to the Sunday on or before the 1st.
	cursor := first.AddDate(0, 0, -int(first.Weekday()))
	nextMonth := first.AddDate(0, 1, 0)

	var weeks [][]CalendarCell
	for cursor.Before(nextMonth) {
		week := make([]CalendarCell, 7)
		for i := 0; i < 7; i++ {
			_, checked := set[cursor]
			week[i] = CalendarCell{
				Date:    cursor.Format(models.DateLayout),
				InMonth: cursor.Month() == month,
				Checked: checked,
			}
			cursor = cursor.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}
