package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"habitloop/internal/models"
	"habitloop/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserTestApp(repo *MockUserRepository) *fiber.App {
	s := &Server{config: testConfig()}
	s.userService = service.NewUserService(repo)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uint(1))
		return c.Next()
	})
	app.Get("/users/me", s.GetMyProfile)
	app.Put("/users/me/theme", s.UpdateMyTheme)
	return app
}

func TestGetMyProfile(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByID", mock.Anything, uint(1)).
		Return(&models.User{ID: 1, Username: "tester", Theme: models.ThemeLight}, nil)
	app := newUserTestApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	_ = json.NewDecoder(resp.Body).Decode(&user)
	assert.Equal(t, "tester", user.Username)
}

func TestUpdateMyTheme(t *testing.T) {
	t.Run("empty body toggles", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByID", mock.Anything, uint(1)).
			Return(&models.User{ID: 1, Theme: models.ThemeLight}, nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)
		app := newUserTestApp(repo)

		req := httptest.NewRequest(http.MethodPut, "/users/me/theme", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var user models.User
		_ = json.NewDecoder(resp.Body).Decode(&user)
		assert.Equal(t, models.ThemeDark, user.Theme)
	})

	t.Run("explicit theme is set", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetByID", mock.Anything, uint(1)).
			Return(&models.User{ID: 1, Theme: models.ThemeLight}, nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)
		app := newUserTestApp(repo)

		body, _ := json.Marshal(map[string]string{"theme": models.ThemeDark})
		req := httptest.NewRequest(http.MethodPut, "/users/me/theme", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var user models.User
		_ = json.NewDecoder(resp.Body).Decode(&user)
		assert.Equal(t, models.ThemeDark, user.Theme)
	})

	t.Run("unknown theme is rejected", func(t *testing.T) {
		app := newUserTestApp(new(MockUserRepository))

		body, _ := json.Marshal(map[string]string{"theme": "sepia"})
		req := httptest.NewRequest(http.MethodPut, "/users/me/theme", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
