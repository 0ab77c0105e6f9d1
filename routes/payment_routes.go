package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alamin6688/survey-quest-server/controller"
)

func RegisterPaymentRoutes(app *fiber.App, pc *controller.PaymentController) {
	app.Post("/payments", pc.Create)
	app.Get("/payments", pc.List)
}
