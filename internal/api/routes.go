package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api", handler.LanguageMiddleware, handler.Serialized)

	account := api.Group("/account")
	account.Post("/register", handler.Register)
	account.Post("/login", handler.Login)
	account.Get("", handler.GetAccount)
	account.Put("", handler.UpdateProfile)

	api.Get("/summary", handler.GetSummary)

	tasks := api.Group("/tasks")
	tasks.Get("", handler.GetTasks)
	tasks.Post("", handler.CreateTask)
	tasks.Post("/:id/toggle", handler.ToggleTask)

	days := api.Group("/days")
	days.Get("", handler.GetMonthOverview)
	days.Get("/:day/status", handler.GetDayStatus)

	subjects := api.Group("/subjects")
	subjects.Get("", handler.GetSubjects)
	subjects.Post("", handler.CreateSubject)
	subjects.Delete("/:id", handler.DeleteSubject)

	api.Post("/reminders/permission", handler.RequestReminderPermission)
}
