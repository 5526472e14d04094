package service

import (
	"context"
	"time"

	"habitloop/internal/analytics"
	"habitloop/internal/cache"
	"habitloop/internal/models"
	"habitloop/internal/observability"
	"habitloop/internal/repository"
)

// maxReportDays caps a range report at one year (leap-year inclusive) so a
// single request cannot ask for an unbounded dense report.
const maxReportDays = 366

// AnalyticsService computes streaks, range reports, calendars and chart
// payloads. Everything is derived from check-in dates at request time; the
// only cached value is the per-habit streak snapshot.
type AnalyticsService struct {
	habitRepo   repository.HabitRepository
	checkInRepo repository.CheckInRepository
	now         func() time.Time
}

func NewAnalyticsService(habitRepo repository.HabitRepository, checkInRepo repository.CheckInRepository) *AnalyticsService {
	return &AnalyticsService{
		habitRepo:   habitRepo,
		checkInRepo: checkInRepo,
		now:         time.Now,
	}
}

func (s *AnalyticsService) today() time.Time {
	return models.CivilDate(s.now().UTC())
}

// Streak returns the habit's current and longest streaks, serving from cache
// when a fresh snapshot is available.
func (s *AnalyticsService) Streak(ctx context.Context, userID, habitID uint) (models.StreakSnapshot, error) {
	if _, err := s.habitRepo.GetOwned(ctx, habitID, userID); err != nil {
		return models.StreakSnapshot{}, err
	}

	var snapshot models.StreakSnapshot
	computed := false
	err := cache.Aside(ctx, cache.HabitStreakKey(habitID, s.today()), &snapshot, cache.HabitStreakTTL, func() error {
		computed = true
		dates, err := s.checkInRepo.DatesByHabit(ctx, habitID)
		if err != nil {
			return err
		}
		snapshot = analytics.Snapshot(dates, s.today())
		return nil
	})
	if err != nil {
		return models.StreakSnapshot{}, err
	}

	if computed {
		observability.StreakComputations.WithLabelValues("db").Inc()
	} else {
		observability.StreakComputations.WithLabelValues("cache").Inc()
	}
	return snapshot, nil
}

// Report returns one entry per day in [start, end], checked or not.
func (s *AnalyticsService) Report(ctx context.Context, userID, habitID uint, startRaw, endRaw string) ([]analytics.Day, error) {
	start, err := models.ParseDate(startRaw)
	if err != nil {
		return nil, models.NewValidationError("Invalid start date, expected YYYY-MM-DD")
	}
	end, err := models.ParseDate(endRaw)
	if err != nil {
		return nil, models.NewValidationError("Invalid end date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, models.NewValidationError("End date must not precede start date")
	}
	if int(end.Sub(start).Hours()/24)+1 > maxReportDays {
		return nil, models.NewValidationError("Report range is limited to 366 days")
	}

	if _, err := s.habitRepo.GetOwned(ctx, habitID, userID); err != nil {
		return nil, err
	}
	dates, err := s.checkInRepo.DatesByHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}
	return analytics.RangeReport(dates, start, end), nil
}

// Calendar returns the habit's month grid, padded to whole weeks.
func (s *AnalyticsService) Calendar(ctx context.Context, userID, habitID uint, year, month int) ([][]analytics.CalendarCell, error) {
	if month < 1 || month > 12 {
		return nil, models.NewValidationError("Month must be between 1 and 12")
	}
	if year < 1970 || year > 9999 {
		return nil, models.NewValidationError("Year out of range")
	}

	if _, err := s.habitRepo.GetOwned(ctx, habitID, userID); err != nil {
		return nil, err
	}
	dates, err := s.checkInRepo.DatesByHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}
	return analytics.MonthlyCalendar(dates, year, time.Month(month)), nil
}

// WeeklyChart is the completions-per-day payload for the last seven days.
type WeeklyChart struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// Weekly aggregates the user's check-ins across all habits for the trailing
// seven days, today included.
func (s *AnalyticsService) Weekly(ctx context.Context, userID uint) (*WeeklyChart, error) {
	days := analytics.LastNDays(s.today(), 7)
	counts, err := s.checkInRepo.CountsByUserSince(ctx, userID, days[0])
	if err != nil {
		return nil, err
	}

	chart := &WeeklyChart{
		Labels: make([]string, len(days)),
		Counts: make([]int, len(days)),
	}
	for i, day := range days {
		chart.Labels[i] = day.Format("Mon")
		chart.Counts[i] = counts[day.Format(models.DateLayout)]
	}
	return chart, nil
}

// DashboardHabit is a habit enriched with its streaks, today's state, and a
// dense last-seven-day completion map.
type DashboardHabit struct {
	models.Habit
	CheckedToday bool            `json:"checked_today"`
	Days         []analytics.Day `json:"days"`
}

// Dashboard is the home-view payload: every active habit with streaks, plus
// the weekly chart.
type Dashboard struct {
	Habits []DashboardHabit `json:"habits"`
	Week   *WeeklyChart     `json:"week"`
}

func (s *AnalyticsService) Dashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	habits, err := s.habitRepo.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	// One query for all habits' histories instead of one per habit.
	datesByHabit, err := s.checkInRepo.DatesByUserSince(ctx, userID, time.Time{})
	if err != nil {
		return nil, err
	}

	today := s.today()
	entries := make([]DashboardHabit, 0, len(habits))
	for _, habit := range habits {
		dates := datesByHabit[habit.ID]
		snapshot := analytics.Snapshot(dates, today)
		habit.Streak = &snapshot

		days := analytics.RangeReport(dates, today.AddDate(0, 0, -6), today)
		entries = append(entries, DashboardHabit{
			Habit:        habit,
			CheckedToday: days[len(days)-1].Completed,
			Days:         days,
		})
	}

	week, err := s.Weekly(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Habits: entries, Week: week}, nil
}
