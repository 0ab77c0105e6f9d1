package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alamin6688/survey-quest-server/controller"
)

func RegisterUserRoutes(app *fiber.App, uc *controller.UserController, authRequired, adminRequired fiber.Handler) {
	app.Post("/users", uc.Register)
	app.Get("/users", authRequired, adminRequired, uc.List)

	app.Get("/users/admin/:email", authRequired, uc.IsAdmin)
	app.Get("/users/proUser/:email", authRequired, uc.IsProUser)
	app.Get("/users/surveyor/:email", authRequired, uc.IsSurveyor)
	app.Get("/users/user/:email", authRequired, uc.IsUser)

	app.Patch("/users/:id/make-pro-user", uc.MakeProUser)
	app.Patch("/users/:id/make-user", uc.MakeUser)
}
