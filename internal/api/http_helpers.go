package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/taskflow/internal/services"
)

func (handler *Handler) apiError(c *fiber.Ctx, status int, code string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   code,
		"message": handler.i18n.Translate(handler.currentLanguage(c), "error."+code),
	})
}

// respondServiceError maps engine errors to HTTP statuses. notFoundCode names
// the missing resource for ErrNotFound.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error, notFoundCode string) error {
	switch {
	case errors.Is(err, services.ErrRequiredFields):
		return handler.apiError(c, fiber.StatusBadRequest, "required_fields")
	case errors.Is(err, services.ErrPasswordMismatch):
		return handler.apiError(c, fiber.StatusBadRequest, "password_mismatch")
	case errors.Is(err, services.ErrTaskDayOutOfRange):
		return handler.apiError(c, fiber.StatusBadRequest, "task_day_out_of_range")
	case errors.Is(err, services.ErrSubjectNameRequired):
		return handler.apiError(c, fiber.StatusBadRequest, "subject_name_required")
	case errors.Is(err, services.ErrValidation):
		return handler.apiError(c, fiber.StatusBadRequest, "invalid_request")
	case errors.Is(err, services.ErrNoAccount):
		return handler.apiError(c, fiber.StatusNotFound, "no_account")
	case errors.Is(err, services.ErrInvalidCredentials):
		return handler.apiError(c, fiber.StatusUnauthorized, "invalid_credentials")
	case errors.Is(err, services.ErrNotFound):
		return handler.apiError(c, fiber.StatusNotFound, notFoundCode)
	case errors.Is(err, services.ErrStoreWrite):
		log.Printf("api: %s %s: %v", c.Method(), c.Path(), err)
		return handler.apiError(c, fiber.StatusInternalServerError, "changes_not_saved")
	default:
		log.Printf("api: %s %s: %v", c.Method(), c.Path(), err)
		return handler.apiError(c, fiber.StatusInternalServerError, "internal")
	}
}
