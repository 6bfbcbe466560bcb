package router

import (
	"coach_tracker/handler"
	"coach_tracker/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	coach := v1.Group("/coach")
	coach.Get("/", h.GetCoaches)
	coach.Get("/numbers", h.GetCoachNumbers)
	coach.Post("/", validate.CreateCoach(), h.CreateCoach)

	movement := v1.Group("/movement")
	movement.Post("/", validate.CreateMovement(), h.CreateMovement)
	movement.Get("/:coachNo", h.GetMovementsByCoach)

	v1.Get("/dashboard", h.GetDashboard)

	report := v1.Group("/report")
	report.Get("/", h.GetReport)
	report.Get("/export/csv", h.ExportReportCSV)
	report.Get("/export/xlsx", h.ExportReportXLSX)
}
