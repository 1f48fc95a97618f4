package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/taskflow/internal/services"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "invalid_request")
	}

	account, err := handler.accounts.Register(c.UserContext(), input.Name, input.Email, input.Password, input.ConfirmPassword)
	if err != nil {
		return handler.respondServiceError(c, err, "no_account")
	}
	return c.Status(fiber.StatusCreated).JSON(newAccountResponse(account))
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "invalid_request")
	}
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return handler.apiError(c, fiber.StatusBadRequest, "missing_credentials")
	}

	limiterKey := requestLimiterKey(c)
	now := handler.now()
	if handler.loginLimiter.blocked(limiterKey, now) {
		return handler.apiError(c, fiber.StatusTooManyRequests, "too_many_attempts")
	}

	account, err := handler.accounts.Login(c.UserContext(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			handler.loginLimiter.recordFailure(limiterKey, now)
		}
		return handler.respondServiceError(c, err, "no_account")
	}

	handler.loginLimiter.reset(limiterKey)
	return c.JSON(newAccountResponse(account))
}

func (handler *Handler) GetAccount(c *fiber.Ctx) error {
	account, found, err := handler.accounts.Current(c.UserContext())
	if err != nil {
		return handler.respondServiceError(c, err, "no_account")
	}
	if !found {
		return handler.apiError(c, fiber.StatusNotFound, "no_account")
	}
	return c.JSON(newAccountResponse(account))
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "invalid_request")
	}

	account, err := handler.accounts.UpdateProfile(c.UserContext(), input.Name, input.Email, input.Password, input.Birthdate)
	if err != nil {
		return handler.respondServiceError(c, err, "no_account")
	}
	return c.JSON(newAccountResponse(account))
}

func (handler *Handler) GetSummary(c *fiber.Ctx) error {
	summary, err := handler.summary.Summary(c.UserContext())
	if err != nil {
		return handler.respondServiceError(c, err, "no_account")
	}
	return c.JSON(summary)
}

func (handler *Handler) RequestReminderPermission(c *fiber.Ctx) error {
	granted := false
	if handler.reminders != nil {
		granted = handler.reminders.RequestPermission(c.UserContext())
	}
	return c.JSON(fiber.Map{"granted": granted})
}
