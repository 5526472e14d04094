// Package analytics derives streaks and completion reports from a habit's
// check-in dates. All functions are pure and read-only: they take the set of
// distinct check-in dates and compute over a consistent snapshot, so there is
// no concurrency hazard and nothing is cached between calls.
package analytics

import (
	"sort"
	"time"

	"habitloop/internal/models"
)

// Day is one entry in a dense range report.
type Day struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// dateSet normalizes dates to UTC midnight for O(1) membership checks.
func dateSet(dates []time.Time) map[time.Time]struct{} {
	set := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		set[models.CivilDate(d)] = struct{}{}
	}
	return set
}

// CurrentStreak counts consecutive checked days walking backward from today.
// A streak is not broken until a full day is missed: when today has no
// check-in yet, the walk starts at yesterday instead. Returns 0 when both
// today and yesterday are unchecked.
func CurrentStreak(dates []time.Time, today time.Time) int {
	set := dateSet(dates)
	d := models.CivilDate(today)
	if _, ok := set[d]; !ok {
		d = d.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := set[d]; !ok {
			break
		}
		streak++
		d = d.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak returns the maximum run of consecutive checked days over the
// habit's entire history.
func LongestStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	set := dateSet(dates)
	distinct := make([]time.Time, 0, len(set))
	for d := range set {
		distinct = append(distinct, d)
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i].Before(distinct[j]) })

	longest, run := 1, 1
	for i := 1; i < len(distinct); i++ {
		if distinct[i].Equal(distinct[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// Snapshot computes both streak values in one pass over the dates.
func Snapshot(dates []time.Time, today time.Time) models.StreakSnapshot {
	return models.StreakSnapshot{
		CurrentStreak: CurrentStreak(dates, today),
		LongestStreak: LongestStreak(dates),
	}
}

// RangeReport returns one entry per calendar day in [start, end], ascending,
// including days with no check-in. It is recomputed fresh on every call.
func RangeReport(dates []time.Time, start, end time.Time) []Day {
	set := dateSet(dates)
	start = models.CivilDate(start)
	end = models.CivilDate(end)

	var report []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		_, checked := set[d]
		report = append(report, Day{
			Date:      d.Format(models.DateLayout),
			Completed: checked,
		})
	}
	return report
}

// LastNDays returns the n civil dates ending at today, ascending.
func LastNDays(today time.Time, n int) []time.Time {
	today = models.CivilDate(today)
	days := make([]time.Time, n)
	for i := 0; i < n; i++ {
		days[i] = today.AddDate(0, 0, i-n+1)
	}
	return days
}
