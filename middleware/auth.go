package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/alamin6688/survey-quest-server/auth"
	"github.com/alamin6688/survey-quest-server/db"
	"github.com/alamin6688/survey-quest-server/model"
)

// AuthRequired reads the session cookie and verifies it. No cookie, a
// forged token and an expired token all get the same 401. On success the
// decoded identity lands in Locals for the handlers. Never touches the
// store.
func AuthRequired(codec *auth.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(auth.CookieName)
		if token == "" {
			return c.Status(401).JSON(fiber.Map{"message": "unauthorized access"})
		}

		claims, err := codec.Parse(token)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"message": "unauthorized access"})
		}

		c.Locals("user_email", claims.Email)
		c.Locals("user_name", claims.Name)
		return c.Next()
	}
}

// AdminRequired runs after AuthRequired and checks the stored role of the
// authenticated user. A missing user document fails the check the same
// way a non-admin role does; only a store failure is a 500.
func AdminRequired(store db.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("user_email").(string)

		var user model.User
		err := store.FindOne(c.Context(), db.Users, bson.M{"email": email}, &user)
		if err != nil && err != db.ErrNotFound {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if err == db.ErrNotFound || user.Role != model.RoleAdmin {
			return c.Status(403).JSON(fiber.Map{"message": "Forbidden access"})
		}
		return c.Next()
	}
}
