package service

import (
	"context"
	"testing"

	"habitloop/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "tester", Theme: models.ThemeLight}, nil
		},
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
		listFn:          func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
	}
}

func TestUserService_SetTheme(t *testing.T) {
	ctx := context.Background()

	t.Run("valid theme is persisted", func(t *testing.T) {
		repo := noopUserRepo()
		var saved *models.User
		repo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}
		svc := NewUserService(repo)

		user, err := svc.SetTheme(ctx, 1, models.ThemeDark)
		require.NoError(t, err)
		assert.Equal(t, models.ThemeDark, user.Theme)
		assert.Same(t, saved, user)
	})

	t.Run("unknown theme is rejected", func(t *testing.T) {
		svc := NewUserService(noopUserRepo())
		_, err := svc.SetTheme(ctx, 1, "sepia")
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}

func TestUserService_ToggleTheme(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		from string
		want string
	}{
		{"light flips to dark", models.ThemeLight, models.ThemeDark},
		{"dark flips to light", models.ThemeDark, models.ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := noopUserRepo()
			repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
				return &models.User{ID: id, Theme: tt.from}, nil
			}
			svc := NewUserService(repo)

			user, err := svc.ToggleTheme(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, user.Theme)
		})
	}
}

func TestUserService_ListUsers_ClampsPagination(t *testing.T) {
	ctx := context.Background()

	repo := noopUserRepo()
	var gotLimit, gotOffset int
	repo.listFn = func(_ context.Context, limit, offset int) ([]models.User, error) {
		gotLimit, gotOffset = limit, offset
		return nil, nil
	}
	svc := NewUserService(repo)

	_, err := svc.ListUsers(ctx, 1000, -5)
	require.NoError(t, err)
	assert.Equal(t, 20, gotLimit)
	assert.Equal(t, 0, gotOffset)
}
