package repository

import (
	"context"
	"time"

	"habitloop/internal/cache"
	"habitloop/internal/models"
	"habitloop/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CheckInRepository defines persistence operations for check-ins.
type CheckInRepository interface {
	// Upsert ensures exactly one row exists for (habitID, date). Returns
	// whether a new row was created; a duplicate is resolved silently.
	Upsert(ctx context.Context, habitID uint, date time.Time) (bool, error)
	// Delete removes the check-in if present. Idempotent.
	Delete(ctx context.Context, habitID uint, date time.Time) (bool, error)
	Exists(ctx context.Context, habitID uint, date time.Time) (bool, error)
	// DatesByHabit returns the habit's distinct check-in dates, ascending.
	DatesByHabit(ctx context.Context, habitID uint) ([]time.Time, error)
	// CountsByUserSince returns, per date since `since`, how many check-ins the
	// user recorded across all their habits (archived included).
	CountsByUserSince(ctx context.Context, userID uint, since time.Time) (map[string]int, error)
	// DatesByUserSince returns recent check-in dates grouped by habit.
	DatesByUserSince(ctx context.Context, userID uint, since time.Time) (map[uint][]time.Time, error)
}

type checkInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository returns a new CheckInRepository implementation.
func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) Upsert(ctx context.Context, habitID uint, date time.Time) (bool, error) {
	defer observability.TrackQuery("upsert", "check_ins")()

	checkIn := models.CheckIn{
		HabitID: habitID,
		Date:    models.CivilDate(date),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "habit_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(&checkIn)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}

	created := result.RowsAffected > 0
	if created {
		observability.CheckInsRecorded.WithLabelValues("recorded").Inc()
	} else {
		observability.CheckInsRecorded.WithLabelValues("duplicate").Inc()
	}

	cache.InvalidateHabitStreak(ctx, habitID)
	return created, nil
}

func (r *checkInRepository) Delete(ctx context.Context, habitID uint, date time.Time) (bool, error) {
	defer observability.TrackQuery("delete", "check_ins")()

	result := r.db.WithContext(ctx).
		Where("habit_id = ? AND date = ?", habitID, models.CivilDate(date)).
		Delete(&models.CheckIn{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}

	if result.RowsAffected > 0 {
		observability.CheckInsRecorded.WithLabelValues("removed").Inc()
	}

	cache.InvalidateHabitStreak(ctx, habitID)
	return result.RowsAffected > 0, nil
}

func (r *checkInRepository) Exists(ctx context.Context, habitID uint, date time.Time) (bool, error) {
	defer observability.TrackQuery("get", "check_ins")()

	var count int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.CheckIn{}).
		Where("habit_id = ? AND date = ?", habitID, models.CivilDate(date)).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *checkInRepository) DatesByHabit(ctx context.Context, habitID uint) ([]time.Time, error) {
	defer observability.TrackQuery("list", "check_ins")()

	var dates []time.Time
	err := readDB(r.db).WithContext(ctx).
		Model(&models.CheckIn{}).
		Where("habit_id = ?", habitID).
		Order("date ASC").
		Pluck("date", &dates).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return dates, nil
}

type dateCount struct {
	Date  time.Time
	Count int
}

func (r *checkInRepository) CountsByUserSince(ctx context.Context, userID uint, since time.Time) (map[string]int, error) {
	defer observability.TrackQuery("aggregate", "check_ins")()

	var rows []dateCount
	err := readDB(r.db).WithContext(ctx).
		Model(&models.CheckIn{}).
		Select("check_ins.date AS date, COUNT(*) AS count").
		Joins("JOIN habits ON habits.id = check_ins.habit_id").
		Where("habits.user_id = ? AND check_ins.date >= ?", userID, models.CivilDate(since)).
		Group("check_ins.date").
		Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[models.CivilDate(row.Date).Format(models.DateLayout)] = row.Count
	}
	return counts, nil
}

type habitDate struct {
	HabitID uint
	Date    time.Time
}

func (r *checkInRepository) DatesByUserSince(ctx context.Context, userID uint, since time.Time) (map[uint][]time.Time, error) {
	defer observability.TrackQuery("aggregate", "check_ins")()

	var rows []habitDate
	err := readDB(r.db).WithContext(ctx).
		Model(&models.CheckIn{}).
		Select("check_ins.habit_id AS habit_id, check_ins.date AS date").
		Joins("JOIN habits ON habits.id = check_ins.habit_id").
		Where("habits.user_id = ? AND check_ins.date >= ?", userID, models.CivilDate(since)).
		Order("check_ins.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	byHabit := make(map[uint][]time.Time)
	for _, row := range rows {
		byHabit[row.HabitID] = append(byHabit[row.HabitID], models.CivilDate(row.Date))
	}
	return byHabit, nil
}
