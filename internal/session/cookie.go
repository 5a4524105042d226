// Package session owns the HTTP cookie that carries a session token
// between client and server.
package session

import (
	"time"

	"github.com/atakanyildirim/taskdeck/internal/token"
	"github.com/gofiber/fiber/v2"
)

// Set attaches the session token to the response as an HTTP-only cookie.
func Set(c *fiber.Ctx, value string, ttl time.Duration, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     token.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Clear expires the session cookie so the client stops resubmitting a dead
// credential.
func Clear(c *fiber.Ctx, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     token.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
