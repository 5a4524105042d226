package middleware

import (
	"github.com/atakanyildirim/taskdeck/internal/config"
	"github.com/atakanyildirim/taskdeck/internal/dto"
	"github.com/atakanyildirim/taskdeck/internal/session"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// Protected is the route-local guard on the task API group. The gate
// already screens these paths; this exists so the group stays safe in
// deployments that mount it without the gate.
func Protected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		TokenLookup: "cookie:token,header:Authorization",
		AuthScheme:  "Bearer",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			session.Clear(c, cfg.Production())
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}
