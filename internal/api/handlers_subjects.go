package api

import "github.com/gofiber/fiber/v2"

// GetSubjects recomputes progress before answering, as a screen focus would.
func (handler *Handler) GetSubjects(c *fiber.Ctx) error {
	if _, err := handler.subjects.Recompute(c.UserContext()); err != nil {
		return handler.respondServiceError(c, err, "subject_not_found")
	}

	subjects, err := handler.subjects.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return handler.respondServiceError(c, err, "subject_not_found")
	}
	return c.JSON(newSubjectResponses(subjects))
}

func (handler *Handler) CreateSubject(c *fiber.Ctx) error {
	input := subjectInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "invalid_request")
	}

	subject, err := handler.subjects.AddSubject(c.UserContext(), input.Name)
	if err != nil {
		return handler.respondServiceError(c, err, "subject_not_found")
	}
	return c.Status(fiber.StatusCreated).JSON(newSubjectResponse(subject))
}

func (handler *Handler) DeleteSubject(c *fiber.Ctx) error {
	if err := handler.subjects.RemoveSubject(c.UserContext(), c.Params("id")); err != nil {
		return handler.respondServiceError(c, err, "subject_not_found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
