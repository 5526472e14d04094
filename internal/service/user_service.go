package service

import (
	"context"

	"habitloop/internal/models"
	"habitloop/internal/repository"
)

// UserService covers profile reads and preference updates; credential checks
// live with the auth handlers.
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// SetTheme switches the user's UI theme.
func (s *UserService) SetTheme(ctx context.Context, userID uint, theme string) (*models.User, error) {
	if theme != models.ThemeLight && theme != models.ThemeDark {
		return nil, models.NewValidationError("Theme must be light or dark")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Theme = theme
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleTheme flips between light and dark.
func (s *UserService) ToggleTheme(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	theme := models.ThemeLight
	if user.Theme == models.ThemeLight {
		theme = models.ThemeDark
	}
	user.Theme = theme
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers is an admin-only directory listing.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.List(ctx, limit, offset)
}
