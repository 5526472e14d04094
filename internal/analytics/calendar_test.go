package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyCalendarShape(t *testing.T) {
	// January 2024 starts on a Monday; a Sunday-started grid needs five weeks
	// padded with 2023-12-31 at the front and 2024-02-01..03 at the back.
	grid := MonthlyCalendar(nil, 2024, time.January)
	require.Len(t, grid, 5)
	for _, week := range grid {
		assert.Len(t, week, 7)
	}

	assert.Equal(t, "2023-12-31", grid[0][0].Date)
	assert.False(t, grid[0][0].InMonth)
	assert.Equal(t, "2024-01-01", grid[0][1].Date)
	assert.True(t, grid[0][1].InMonth)

	last := grid[4]
	assert.Equal(t, "2024-01-31", last[3].Date)
	assert.True(t, last[3].InMonth)
	assert.Equal(t, "2024-02-03", last[6].Date)
	assert.False(t, last[6].InMonth)
}

func TestMonthlyCalendarExactWeeks(t *testing.T) {
	// September 2024 starts on a Sunday: no leading pad, five rows.
	grid := MonthlyCalendar(nil, 2024, time.September)
	require.Len(t, grid, 5)
	assert.Equal(t, "2024-09-01", grid[0][0].Date)
	assert.Equal(t, "2024-10-05", grid[4][6].Date)
}

func TestMonthlyCalendarChecked(t *testing.T) {
	grid := MonthlyCalendar(days("2024-01-01", "2024-01-15"), 2024, time.January)

	var checked []string
	for _, week := range grid {
		for _, cell := range week {
			if cell.Checked {
				checked = append(checked, cell.Date)
			}
		}
	}
	assert.Equal(t, []string{"2024-01-01", "2024-01-15"}, checked)
}

func TestMonthlyCalendarCoversWholeMonth(t *testing.T) {
	grid := MonthlyCalendar(nil, 2024, time.February)

	inMonth := 0
	for _, week := range grid {
		for _, cell := range week {
			if cell.InMonth {
				inMonth++
			}
		}
	}
	assert.Equal(t, 29, inMonth)
}
