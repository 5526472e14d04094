package server

import (
	"habitloop/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetStreak handles GET /api/habits/:id/streak
// @Summary Get habit streaks
// @Description Current and longest streak for one habit
// @Tags analytics
// @Produce json
// @Param id path int true "Habit ID"
// @Success 200 {object} models.StreakSnapshot
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /habits/{id}/streak [get]
func (s *Server) GetStreak(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	habitID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	snapshot, err := s.analyticsService.Streak(c.Context(), userID, habitID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(snapshot)
}

// GetReport handles GET /api/habits/:id/report?start=YYYY-MM-DD&end=YYYY-MM-DD
// One entry per day in the window, checked or not.
func (s *Server) GetReport(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	habitID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("start and end query parameters are required"))
	}

	report, err := s.analyticsService.Report(c.Context(), userID, habitID, start, end)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(report)
}

// GetCalendar handles GET /api/habits/:id/calendar?year=2026&month=8
// Gated behind the monthly_calendar feature flag.
func (s *Server) GetCalendar(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if !s.featureFlags.Enabled("monthly_calendar", userID) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Feature", "monthly_calendar"))
	}

	habitID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	if year == 0 || month == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("year and month query parameters are required"))
	}

	weeks, err := s.analyticsService.Calendar(c.Context(), userID, habitID, year, month)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"year":  year,
		"month": month,
		"weeks": weeks,
	})
}

// GetWeeklyChart handles GET /api/analytics/weekly
// Completions per day over the trailing seven days, across all habits.
func (s *Server) GetWeeklyChart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	chart, err := s.analyticsService.Weekly(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(chart)
}

// GetDashboard handles GET /api/dashboard
// Active habits with streaks and today's state, plus the weekly chart.
func (s *Server) GetDashboard(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	dashboard, err := s.analyticsService.Dashboard(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(dashboard)
}
