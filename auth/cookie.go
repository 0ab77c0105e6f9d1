package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the cookie the browser clients send on every
// authenticated request.
const CookieName = "token"

// SetTokenCookie writes the session cookie. The cross-site attributes
// must stay exactly as the browser clients expect: in production the
// cookie is Secure with SameSite=None (frontend is served from another
// origin), otherwise SameSite=Strict over plain HTTP.
func (c *Codec) SetTokenCookie(ctx *fiber.Ctx, token string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   c.production,
		SameSite: c.sameSite(),
	})
}

// ClearTokenCookie expires the cookie with the same attributes it was set
// with. No server-side revocation exists.
func (c *Codec) ClearTokenCookie(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   c.production,
		SameSite: c.sameSite(),
	})
}

func (c *Codec) sameSite() string {
	if c.production {
		return fiber.CookieSameSiteNoneMode
	}
	return fiber.CookieSameSiteStrictMode
}
