package service

import (
	"context"
	"time"

	"habitloop/internal/analytics"
	"habitloop/internal/models"
	"habitloop/internal/repository"
)

// CheckInService records and removes daily habit check-ins. All mutations are
// idempotent: recording the same day twice, or removing a day that was never
// recorded, succeeds without changing anything.
type CheckInService struct {
	habitRepo   repository.HabitRepository
	checkInRepo repository.CheckInRepository
	now         func() time.Time
}

func NewCheckInService(habitRepo repository.HabitRepository, checkInRepo repository.CheckInRepository) *CheckInService {
	return &CheckInService{
		habitRepo:   habitRepo,
		checkInRepo: checkInRepo,
		now:         time.Now,
	}
}

type CheckInInput struct {
	UserID  uint
	HabitID uint
	// Date in YYYY-MM-DD; empty means today.
	Date string
}

// CheckInResult reports the state of the day after the mutation, together
// with the habit's recomputed streaks.
type CheckInResult struct {
	Date    string                `json:"date"`
	Checked bool                  `json:"checked"`
	Changed bool                  `json:"changed"`
	Streak  models.StreakSnapshot `json:"streak"`
}

func (s *CheckInService) today() time.Time {
	return models.CivilDate(s.now().UTC())
}

// resolveDate parses the requested date, defaulting to today, and rejects
// future dates: a habit cannot be completed ahead of time.
func (s *CheckInService) resolveDate(raw string, allowFuture bool) (time.Time, error) {
	if raw == "" {
		return s.today(), nil
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		return time.Time{}, models.NewValidationError("Invalid date, expected YYYY-MM-DD")
	}
	if !allowFuture && date.After(s.today()) {
		return time.Time{}, models.NewValidationError("Cannot check in a future date")
	}
	return date, nil
}

func (s *CheckInService) Record(ctx context.Context, in CheckInInput) (*CheckInResult, error) {
	date, err := s.resolveDate(in.Date, false)
	if err != nil {
		return nil, err
	}
	if _, err := s.habitRepo.GetOwned(ctx, in.HabitID, in.UserID); err != nil {
		return nil, err
	}

	created, err := s.checkInRepo.Upsert(ctx, in.HabitID, date)
	if err != nil {
		return nil, err
	}
	return s.result(ctx, in.HabitID, date, true, created)
}

// Remove deletes the check-in for the given day. Future dates are allowed
// here since removing one is always a no-op.
func (s *CheckInService) Remove(ctx context.Context, in CheckInInput) (*CheckInResult, error) {
	date, err := s.resolveDate(in.Date, true)
	if err != nil {
		return nil, err
	}
	if _, err := s.habitRepo.GetOwned(ctx, in.HabitID, in.UserID); err != nil {
		return nil, err
	}

	removed, err := s.checkInRepo.Delete(ctx, in.HabitID, date)
	if err != nil {
		return nil, err
	}
	return s.result(ctx, in.HabitID, date, false, removed)
}

// Toggle flips the day's state: checked becomes unchecked and vice versa.
func (s *CheckInService) Toggle(ctx context.Context, in CheckInInput) (*CheckInResult, error) {
	date, err := s.resolveDate(in.Date, false)
	if err != nil {
		return nil, err
	}
	if _, err := s.habitRepo.GetOwned(ctx, in.HabitID, in.UserID); err != nil {
		return nil, err
	}

	exists, err := s.checkInRepo.Exists(ctx, in.HabitID, date)
	if err != nil {
		return nil, err
	}

	if exists {
		changed, err := s.checkInRepo.Delete(ctx, in.HabitID, date)
		if err != nil {
			return nil, err
		}
		return s.result(ctx, in.HabitID, date, false, changed)
	}

	changed, err := s.checkInRepo.Upsert(ctx, in.HabitID, date)
	if err != nil {
		return nil, err
	}
	return s.result(ctx, in.HabitID, date, true, changed)
}

func (s *CheckInService) result(ctx context.Context, habitID uint, date time.Time, checked, changed bool) (*CheckInResult, error) {
	dates, err := s.checkInRepo.DatesByHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}
	return &CheckInResult{
		Date:    date.Format(models.DateLayout),
		Checked: checked,
		Changed: changed,
		Streak:  analytics.Snapshot(dates, s.today()),
	}, nil
}
