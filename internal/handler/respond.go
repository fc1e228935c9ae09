package handler

import (
	"errors"

	"hrms-backend/internal/repository"
	"hrms-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// fail maps a usecase or repository error to an HTTP status and writes
// the standard error body.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	case errors.Is(err, usecase.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, repository.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, usecase.ErrAlreadyCheckedIn),
		errors.Is(err, usecase.ErrNotCheckedIn),
		errors.Is(err, usecase.ErrAlreadyCheckedOut):
		status = fiber.StatusConflict
	case errors.Is(err, usecase.ErrInvalidTimeOrdering):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, repository.ErrUnavailable):
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
