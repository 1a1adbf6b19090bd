package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/models"
)

// respondError maps the error taxonomy onto HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "VALIDATION_ERROR":
			status = fiber.StatusBadRequest
		case "NOT_FOUND":
			status = fiber.StatusNotFound
		case "UNAUTHORIZED":
			status = fiber.StatusUnauthorized
		}
	}

	return models.RespondWithError(c, status, err)
}

// paramID parses the :id route parameter.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, models.NewValidationError("Invalid ID")
	}
	return uint(id), nil
}
