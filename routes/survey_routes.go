package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alamin6688/survey-quest-server/controller"
)

func RegisterSurveyRoutes(app *fiber.App, sc *controller.SurveyController) {
	app.Get("/surveys", sc.List)
	app.Post("/surveys", sc.Create)
	app.Patch("/surveys/:id", sc.Update)
	app.Patch("/surveys/:id/publish", sc.Publish)
	app.Patch("/surveys/:id/unpublish", sc.Unpublish)
	app.Put("/surveys/:id/vote", sc.Vote)

	app.Get("/participates", sc.Participates)
}
