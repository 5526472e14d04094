package repository

import (
	"context"
	"errors"

	"habitloop/internal/cache"
	"habitloop/internal/models"
	"habitloop/internal/observability"

	"gorm.io/gorm"
)

// HabitRepository defines persistence operations for habits.
type HabitRepository interface {
	Create(ctx context.Context, habit *models.Habit) error
	// GetOwned fetches a habit only if it belongs to userID. A habit owned by
	// someone else is indistinguishable from a missing one (NotFound).
	GetOwned(ctx context.Context, id, userID uint) (*models.Habit, error)
	ListByUser(ctx context.Context, userID uint, includeArchived bool) ([]models.Habit, error)
	Update(ctx context.Context, habit *models.Habit) error
	SetArchived(ctx context.Context, id uint, archived bool) error
	// Delete removes the habit and hard-deletes its check-ins in one transaction.
	Delete(ctx context.Context, id uint) error
}

type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository returns a new HabitRepository implementation.
func NewHabitRepository(db *gorm.DB) HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(ctx context.Context, habit *models.Habit) error {
	defer observability.TrackQuery("create", "habits")()

	if err := r.db.WithContext(ctx).Create(habit).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Habit already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *habitRepository) GetOwned(ctx context.Context, id, userID uint) (*models.Habit, error) {
	defer observability.TrackQuery("get", "habits")()

	var habit models.Habit
	err := readDB(r.db).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&habit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Habit", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &habit, nil
}

func (r *habitRepository) ListByUser(ctx context.Context, userID uint, includeArchived bool) ([]models.Habit, error) {
	defer observability.TrackQuery("list", "habits")()

	query := readDB(r.db).WithContext(ctx).Where("user_id = ?", userID)
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}

	var habits []models.Habit
	if err := query.Order("created_at ASC").Find(&habits).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return habits, nil
}

func (r *habitRepository) Update(ctx context.Context, habit *models.Habit) error {
	defer observability.TrackQuery("update", "habits")()

	if err := r.db.WithContext(ctx).Save(habit).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Habit already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *habitRepository) SetArchived(ctx context.Context, id uint, archived bool) error {
	defer observability.TrackQuery("update", "habits")()

	if err := r.db.WithContext(ctx).
		Model(&models.Habit{}).
		Where("id = ?", id).
		Update("archived", archived).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *habitRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "habits")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", id).Delete(&models.CheckIn{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Habit{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}

	cache.InvalidateHabitStreak(ctx, id)
	return nil
}
