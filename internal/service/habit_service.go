package service

import (
	"context"
	"strings"

	"habitloop/internal/models"
	"habitloop/internal/repository"
	"habitloop/internal/validation"
)

// HabitService owns the lifecycle of a user's habits.
type HabitService struct {
	habitRepo repository.HabitRepository
}

func NewHabitService(habitRepo repository.HabitRepository) *HabitService {
	return &HabitService{habitRepo: habitRepo}
}

type CreateHabitInput struct {
	UserID uint
	Name   string
	Color  string
}

type UpdateHabitInput struct {
	UserID  uint
	HabitID uint
	// Nil fields are left unchanged.
	Name  *string
	Color *string
}

func (s *HabitService) CreateHabit(ctx context.Context, in CreateHabitInput) (*models.Habit, error) {
	name := strings.TrimSpace(in.Name)
	if err := validation.ValidateHabitName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	color := in.Color
	if color == "" {
		color = models.DefaultHabitColor
	}
	if err := validation.ValidateHexColor(color); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	habit := &models.Habit{
		UserID: in.UserID,
		Name:   name,
		Color:  color,
	}
	if err := s.habitRepo.Create(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) GetHabit(ctx context.Context, userID, habitID uint) (*models.Habit, error) {
	return s.habitRepo.GetOwned(ctx, habitID, userID)
}

func (s *HabitService) ListHabits(ctx context.Context, userID uint, includeArchived bool) ([]models.Habit, error) {
	return s.habitRepo.ListByUser(ctx, userID, includeArchived)
}

func (s *HabitService) UpdateHabit(ctx context.Context, in UpdateHabitInput) (*models.Habit, error) {
	habit, err := s.habitRepo.GetOwned(ctx, in.HabitID, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := validation.ValidateHabitName(name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		habit.Name = name
	}
	if in.Color != nil {
		if err := validation.ValidateHexColor(*in.Color); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		habit.Color = *in.Color
	}

	if err := s.habitRepo.Update(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) ArchiveHabit(ctx context.Context, userID, habitID uint) error {
	return s.setArchived(ctx, userID, habitID, true)
}

func (s *HabitService) UnarchiveHabit(ctx context.Context, userID, habitID uint) error {
	return s.setArchived(ctx, userID, habitID, false)
}

func (s *HabitService) setArchived(ctx context.Context, userID, habitID uint, archived bool) error {
	// Ownership check first; archiving is idempotent after that.
	if _, err := s.habitRepo.GetOwned(ctx, habitID, userID); err != nil {
		return err
	}
	return s.habitRepo.SetArchived(ctx, habitID, archived)
}

// DeleteHabit permanently removes the habit and all of its check-ins.
func (s *HabitService) DeleteHabit(ctx context.Context, userID, habitID uint) error {
	if _, err := s.habitRepo.GetOwned(ctx, habitID, userID); err != nil {
		return err
	}
	return s.habitRepo.Delete(ctx, habitID)
}
