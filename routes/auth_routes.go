package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alamin6688/survey-quest-server/controller"
)

func RegisterAuthRoutes(app *fiber.App, ac *controller.AuthController) {
	app.Post("/jwt", ac.IssueToken)
	app.Post("/clear-jwt", ac.ClearToken)
}
