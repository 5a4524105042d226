package middleware

import (
	"strings"

	"github.com/atakanyildirim/taskdeck/internal/dto"
	"github.com/atakanyildirim/taskdeck/internal/session"
	"github.com/atakanyildirim/taskdeck/internal/token"
	"github.com/gofiber/fiber/v2"
)

// Pages anyone may load.
var publicPages = []string{
	"/",
	"/auth/login",
	"/auth/signup",
	"/auth/forgot-password",
}

// API groups anyone may call; prefix-matched so the Google routes cover
// their sub-paths.
var publicAPIPrefixes = []string{
	"/api/auth/login",
	"/api/auth/signup",
	"/api/auth/google",
	"/auth/google/callback",
}

// Everything under these prefixes requires a verified session.
var protectedPrefixes = []string{
	"/dashboard",
	"/api/tasks",
}

// AccessGate runs before routing logic on every request. Presence of a
// cookie is not proof of anything: the token must verify. An invalid or
// expired token is cleared so the client stops resubmitting it, then the
// request is rejected (API) or redirected to login (pages).
func AccessGate(tokens *token.Service, secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		for _, p := range publicPages {
			if path == p {
				return c.Next()
			}
		}
		for _, p := range publicAPIPrefixes {
			if strings.HasPrefix(path, p) {
				return c.Next()
			}
		}

		protected := false
		for _, p := range protectedPrefixes {
			if strings.HasPrefix(path, p) {
				protected = true
				break
			}
		}
		if !protected {
			return c.Next()
		}

		claims, err := tokens.FromRequest(c)
		if err != nil {
			if c.Cookies(token.CookieName) != "" {
				session.Clear(c, secure)
			}
			if strings.HasPrefix(path, "/api/") {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error: true, Message: "Unauthorized",
				})
			}
			return c.Redirect("/auth/login?redirect="+path, fiber.StatusFound)
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}
