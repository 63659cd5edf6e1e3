package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"learnhub/services"
	"learnhub/utils"
)

// respondError maps the service error taxonomy onto HTTP statuses.
// NotEnrolled carries a machine code so the client can render an
// enroll call-to-action instead of a generic failure.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFound(c, "Not found")
	case errors.Is(err, services.ErrNotEnrolled):
		return utils.ErrorWithCode(c, fiber.StatusForbidden, "not_enrolled", "No active enrollment for this course")
	case errors.Is(err, services.ErrConflict):
		return utils.Conflict(c, "Already exists")
	case errors.Is(err, services.ErrInvalid):
		return utils.BadRequest(c, "Invalid input")
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.Unauthorized(c, "Invalid credentials")
	default:
		return utils.InternalServerError(c, err.Error())
	}
}
