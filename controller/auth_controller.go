package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alamin6688/survey-quest-server/auth"
)

type AuthController struct {
	Codec *auth.Codec
}

func NewAuthController(codec *auth.Codec) *AuthController {
	return &AuthController{Codec: codec}
}

// IssueToken signs the posted identity claims and hands them back as the
// session cookie.
func (ac *AuthController) IssueToken(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	token, err := ac.Codec.Issue(body.Email, body.Name)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	ac.Codec.SetTokenCookie(c, token)
	return c.JSON(fiber.Map{"success": true})
}

// ClearToken drops the cookie. The token itself stays valid until its
// expiry; there is no server-side blacklist.
func (ac *AuthController) ClearToken(c *fiber.Ctx) error {
	ac.Codec.ClearTokenCookie(c)
	return c.JSON(fiber.Map{"success": true})
}
