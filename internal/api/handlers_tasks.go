package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetTasks(c *fiber.Ctx) error {
	rawDay := strings.TrimSpace(c.Query("day"))
	if rawDay == "" {
		tasks, err := handler.tasks.ListAll(c.UserContext())
		if err != nil {
			return handler.respondServiceError(c, err, "task_not_found")
		}
		return c.JSON(newTaskResponses(tasks))
	}

	day, err := strconv.Atoi(rawDay)
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "invalid_day")
	}
	tasks, err := handler.tasks.TasksForDay(c.UserContext(), day)
	if err != nil {
		return handler.respondServiceError(c, err, "task_not_found")
	}
	return c.JSON(newTaskResponses(tasks))
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	input := taskInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "invalid_request")
	}

	task, err := handler.tasks.Create(c.UserContext(), input.Name, input.Subject, input.Time, input.Day)
	if err != nil {
		return handler.respondServiceError(c, err, "task_not_found")
	}
	return c.Status(fiber.StatusCreated).JSON(newTaskResponse(task))
}

func (handler *Handler) ToggleTask(c *fiber.Ctx) error {
	taskID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "invalid_task_id")
	}

	task, err := handler.tasks.ToggleDone(c.UserContext(), taskID)
	if err != nil {
		return handler.respondServiceError(c, err, "task_not_found")
	}
	return c.JSON(newTaskResponse(task))
}

func (handler *Handler) GetMonthOverview(c *fiber.Ctx) error {
	overview, err := handler.tasks.MonthOverview(c.UserContext())
	if err != nil {
		return handler.respondServiceError(c, err, "task_not_found")
	}
	return c.JSON(overview)
}

func (handler *Handler) GetDayStatus(c *fiber.Ctx) error {
	day, err := strconv.Atoi(c.Params("day"))
	if err != nil {
		return handler.apiError(c, fiber.StatusBadRequest, "invalid_day")
	}

	status, err := handler.tasks.DayStatus(c.UserContext(), day)
	if err != nil {
		return handler.respondServiceError(c, err, "task_not_found")
	}
	return c.JSON(fiber.Map{"day": day, "status": status})
}
