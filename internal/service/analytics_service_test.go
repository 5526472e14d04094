package service

import (
	"context"
	"testing"
	"time"

	"habitloop/internal/cache"
	"habitloop/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsService(habits *habitRepoStub, checkIns *checkInRepoStub) *AnalyticsService {
	svc := NewAnalyticsService(habits, checkIns)
	svc.now = fixedNow
	return svc
}

func TestAnalyticsService_Streak(t *testing.T) {
	ctx := context.Background()

	t.Run("computes both streaks from history", func(t *testing.T) {
		checkIns := noopCheckInRepo()
		checkIns.datesByHabitFn = func(_ context.Context, _ uint) ([]time.Time, error) {
			return []time.Time{
				time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2026, time.August, 11, 0, 0, 0, 0, time.UTC),
				time.Date(2026, time.August, 12, 0, 0, 0, 0, time.UTC),
				time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC),
			}, nil
		}
		svc := newAnalyticsService(noopHabitRepo(), checkIns)

		snapshot, err := svc.Streak(ctx, 1, 7)
		require.NoError(t, err)
		// Today (the 26th) is unchecked, so the streak hangs on yesterday.
		assert.Equal(t, 1, snapshot.CurrentStreak)
		assert.Equal(t, 3, snapshot.LongestStreak)
	})

	t.Run("cached snapshot is not reused across a date change", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
		t.Cleanup(func() { cache.SetClient(nil) })

		checkIns := noopCheckInRepo()
		checkIns.datesByHabitFn = func(_ context.Context, _ uint) ([]time.Time, error) {
			return []time.Time{
				time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC),
				time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC),
			}, nil
		}
		svc := newAnalyticsService(noopHabitRepo(), checkIns)

		first, err := svc.Streak(ctx, 1, 7)
		require.NoError(t, err)
		assert.Equal(t, 2, first.CurrentStreak)

		// Two days later, with nothing recorded since, the streak is gone.
		// The day-old cache entry must not answer for the new date.
		svc.now = func() time.Time { return fixedNow().AddDate(0, 0, 2) }
		second, err := svc.Streak(ctx, 1, 7)
		require.NoError(t, err)
		assert.Equal(t, 0, second.CurrentStreak)
	})

	t.Run("ownership is checked before computing", func(t *testing.T) {
		habits := noopHabitRepo()
		habits.getOwnedFn = func(_ context.Context, id, _ uint) (*models.Habit, error) {
			return nil, models.NewNotFoundError("Habit", id)
		}
		checkIns := noopCheckInRepo()
		fetched := false
		checkIns.datesByHabitFn = func(_ context.Context, _ uint) ([]time.Time, error) {
			fetched = true
			return nil, nil
		}
		svc := newAnalyticsService(habits, checkIns)

		_, err := svc.Streak(ctx, 2, 7)
		assert.Error(t, err)
		assert.False(t, fetched)
	})
}

func TestAnalyticsService_Report(t *testing.T) {
	ctx := context.Background()

	t.Run("covers every day in the window", func(t *testing.T) {
		checkIns := noopCheckInRepo()
		checkIns.datesByHabitFn = func(_ context.Context, _ uint) ([]time.Time, error) {
			return []time.Time{time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC)}, nil
		}
		svc := newAnalyticsService(noopHabitRepo(), checkIns)

		report, err := svc.Report(ctx, 1, 7, "2026-08-01", "2026-08-07")
		require.NoError(t, err)
		require.Len(t, report, 7)
		assert.Equal(t, "2026-08-01", report[0].Date)
		assert.False(t, report[0].Completed)
		assert.True(t, report[2].Completed)
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		svc := newAnalyticsService(noopHabitRepo(), noopCheckInRepo())
		_, err := svc.Report(ctx, 1, 7, "2026-08-07", "2026-08-01")
		assert.Error(t, err)
	})

	t.Run("rejects a window longer than a year", func(t *testing.T) {
		svc := newAnalyticsService(noopHabitRepo(), noopCheckInRepo())
		_, err := svc.Report(ctx, 1, 7, "2025-01-01", "2026-08-01")
		assert.Error(t, err)
	})

	t.Run("a full leap year is the maximum", func(t *testing.T) {
		svc := newAnalyticsService(noopHabitRepo(), noopCheckInRepo())
		report, err := svc.Report(ctx, 1, 7, "2024-01-01", "2024-12-31")
		require.NoError(t, err)
		assert.Len(t, report, 366)
	})

	t.Run("rejects malformed bounds", func(t *testing.T) {
		svc := newAnalyticsService(noopHabitRepo(), noopCheckInRepo())
		_, err := svc.Report(ctx, 1, 7, "yesterday", "2026-08-01")
		assert.Error(t, err)
	})
}

func TestAnalyticsService_Calendar(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid month", func(t *testing.T) {
		svc := newAnalyticsService(noopHabitRepo(), noopCheckInRepo())
		_, err := svc.Calendar(ctx, 1, 7, 2026, 13)
		assert.Error(t, err)
	})

	t.Run("whole weeks", func(t *testing.T) {
		svc := newAnalyticsService(noopHabitRepo(), noopCheckInRepo())
		weeks, err := svc.Calendar(ctx, 1, 7, 2026, 8)
		require.NoError(t, err)
		require.NotEmpty(t, weeks)
		for _, week := range weeks {
			assert.Len(t, week, 7)
		}
	})
}

func TestAnalyticsService_Weekly(t *testing.T) {
	ctx := context.Background()

	checkIns := noopCheckInRepo()
	var since time.Time
	checkIns.countsByUserFn = func(_ context.Context, _ uint, s time.Time) (map[string]int, error) {
		since = s
		return map[string]int{
			"2026-08-26": 2,
			"2026-08-24": 1,
		}, nil
	}
	svc := newAnalyticsService(noopHabitRepo(), checkIns)

	chart, err := svc.Weekly(ctx, 1)
	require.NoError(t, err)

	require.Len(t, chart.Labels, 7)
	require.Len(t, chart.Counts, 7)
	assert.Equal(t, "2026-08-20", since.Format(models.DateLayout))
	// 2026-08-26 is a Wednesday; the week runs Thu..Wed.
	assert.Equal(t, "Thu", chart.Labels[0])
	assert.Equal(t, "Wed", chart.Labels[6])
	assert.Equal(t, 2, chart.Counts[6])
	assert.Equal(t, 1, chart.Counts[4])
	assert.Equal(t, 0, chart.Counts[0])
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	ctx := context.Background()

	habits := noopHabitRepo()
	habits.listByUserFn = func(_ context.Context, userID uint, includeArchived bool) ([]models.Habit, error) {
		assert.False(t, includeArchived, "dashboard shows active habits only")
		return []models.Habit{
			{ID: 1, UserID: userID, Name: "Run"},
			{ID: 2, UserID: userID, Name: "Read"},
		}, nil
	}
	checkIns := noopCheckInRepo()
	checkIns.datesByUserFn = func(_ context.Context, _ uint, _ time.Time) (map[uint][]time.Time, error) {
		return map[uint][]time.Time{
			1: {
				time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC),
				time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC),
			},
			2: {
				time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC),
			},
		}, nil
	}
	svc := newAnalyticsService(habits, checkIns)

	dashboard, err := svc.Dashboard(ctx, 1)
	require.NoError(t, err)
	require.Len(t, dashboard.Habits, 2)

	run := dashboard.Habits[0]
	require.NotNil(t, run.Streak)
	assert.Equal(t, 2, run.Streak.CurrentStreak)
	assert.True(t, run.CheckedToday)
	require.Len(t, run.Days, 7)
	assert.Equal(t, "2026-08-20", run.Days[0].Date)
	assert.False(t, run.Days[0].Completed)
	assert.True(t, run.Days[5].Completed)
	assert.True(t, run.Days[6].Completed)

	read := dashboard.Habits[1]
	require.NotNil(t, read.Streak)
	assert.Equal(t, 0, read.Streak.CurrentStreak)
	assert.False(t, read.CheckedToday)

	require.NotNil(t, dashboard.Week)
	assert.Len(t, dashboard.Week.Labels, 7)
}
