package server

import (
	"habitloop/internal/models"
	"habitloop/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateHabit handles POST /api/habits
// @Summary Create a habit
// @Description Create a new habit for the authenticated user
// @Tags habits
// @Accept json
// @Produce json
// @Param request body object{name=string,color=string} true "Habit to create"
// @Success 201 {object} models.Habit
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /habits [post]
func (s *Server) CreateHabit(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	habit, err := s.habitService.CreateHabit(c.Context(), service.CreateHabitInput{
		UserID: userID,
		Name:   req.Name,
		Color:  req.Color,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(habit)
}

// GetHabits handles GET /api/habits
// Archived habits are hidden unless ?include_archived=true.
func (s *Server) GetHabits(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	includeArchived := c.QueryBool("include_archived", false)

	habits, err := s.habitService.ListHabits(c.Context(), userID, includeArchived)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(habits)
}

// GetHabit handles GET /api/habits/:id
func (s *Server) GetHabit(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	habitID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	habit, err := s.habitService.GetHabit(c.Context(), userID, habitID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(habit)
}

// UpdateHabit handles PUT /api/habits/:id (rename and/or recolor)
func (s *Server) UpdateHabit(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	habitID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name  *string `json:"name"`
		Color *string `json:"color"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	habit, err := s.habitService.UpdateHabit(c.Context(), service.UpdateHabitInput{
		UserID:  userID,
		HabitID: habitID,
		Name:    req.Name,
		Color:   req.Color,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(habit)
}

// ArchiveHabit handles POST /api/habits/:id/archive
func (s *Server) ArchiveHabit(c *fiber.Ctx) error {
	return s.setArchived(c, true)
}

// UnarchiveHabit handles POST /api/habits/:id/unarchive
func (s *Server) UnarchiveHabit(c *fiber.Ctx) error {
	return s.setArchived(c, false)
}

func (s *Server) setArchived(c *fiber.Ctx, archived bool) error {
	userID := c.Locals("userID").(uint)
	habitID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if archived {
		err = s.habitService.ArchiveHabit(c.Context(), userID, habitID)
	} else {
		err = s.habitService.UnarchiveHabit(c.Context(), userID, habitID)
	}
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"id": habitID, "archived": archived})
}

// DeleteHabit handles DELETE /api/habits/:id. The habit's check-in history
// goes with it.
func (s *Server) DeleteHabit(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	habitID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.habitService.DeleteHabit(c.Context(), userID, habitID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Habit deleted"})
}
