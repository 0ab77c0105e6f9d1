package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alamin6688/survey-quest-server/controller"
)

func RegisterFeedbackRoutes(app *fiber.App, fc *controller.FeedbackController) {
	app.Post("/comments", fc.CreateComment)
	app.Get("/comments", fc.ListComments)

	app.Post("/reports", fc.CreateReport)
	app.Get("/reports", fc.ListReports)
}
