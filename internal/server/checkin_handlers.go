package server

import (
	"habitloop/internal/models"
	"habitloop/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RecordCheckIn handles POST /api/habits/:id/checkins
// @Summary Record a check-in
// @Description Mark the habit as done for a day (today when no date given). Recording the same day twice is a no-op.
// @Tags checkins
// @Accept json
// @Produce json
// @Param id path int true "Habit ID"
// @Param request body object{date=string} false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.CheckInResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /habits/{id}/checkins [post]
func (s *Server) RecordCheckIn(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	habitID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Date string `json:"date"`
	}
	// Body is optional; an empty body means "today".
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
	}

	result, err := s.checkInService.Record(c.Context(), service.CheckInInput{
		UserID:  userID,
		HabitID: habitID,
		Date:    req.Date,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(result)
}

// RemoveCheckIn handles DELETE /api/habits/:id/checkins/:date
// Removing a day that was never recorded succeeds without changing anything.
func (s *Server) RemoveCheckIn(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	habitID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.checkInService.Remove(c.Context(), service.CheckInInput{
		UserID:  userID,
		HabitID: habitID,
		Date:    c.Params("date"),
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(result)
}

// ToggleCheckIn handles POST /api/habits/:id/toggle
// Flips today's (or the given day's) check-in state.
func (s *Server) ToggleCheckIn(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	habitID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Date string `json:"date"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
	}

	result, err := s.checkInService.Toggle(c.Context(), service.CheckInInput{
		UserID:  userID,
		HabitID: habitID,
		Date:    req.Date,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(result)
}
