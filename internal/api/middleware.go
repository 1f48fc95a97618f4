package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const contextLanguageKey = "current_language"

func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	c.Locals(contextLanguageKey, handler.i18n.DetectFromAcceptLanguage(c.Get("Accept-Language")))
	return c.Next()
}

// Serialized runs one service-touching request at a time.
func (handler *Handler) Serialized(c *fiber.Ctx) error {
	handler.mu.Lock()
	defer handler.mu.Unlock()
	return c.Next()
}

func (handler *Handler) currentLanguage(c *fiber.Ctx) string {
	language, ok := c.Locals(contextLanguageKey).(string)
	if !ok || strings.TrimSpace(language) == "" {
		return handler.i18n.DefaultLanguage()
	}
	return language
}
