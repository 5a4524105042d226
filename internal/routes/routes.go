package routes

import (
	"time"

	"github.com/atakanyildirim/taskdeck/internal/config"
	"github.com/atakanyildirim/taskdeck/internal/handlers"
	"github.com/atakanyildirim/taskdeck/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	oauthHandler *handlers.OAuthHandler,
	taskHandler *handlers.TaskHandler,
	healthHandler *handlers.HealthHandler,
	pageHandler *handlers.PageHandler,
) {
	// Pages
	app.Get("/", pageHandler.Landing)
	app.Get("/auth/login", pageHandler.Login)
	app.Get("/auth/signup", pageHandler.Signup)
	app.Get("/dashboard", pageHandler.Dashboard)

	// Provider redirect URI lives outside /api to match the registered
	// callback path.
	app.Get("/auth/google/callback", oauthHandler.Callback)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth endpoints get a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/google", oauthHandler.Begin)

	// Task resource: gate screens it already, Protected keeps the group
	// safe on its own, handlers re-check identity themselves.
	tasks := api.Group("/tasks", middleware.Protected(cfg))
	tasks.Get("/", taskHandler.List)
	tasks.Post("/", taskHandler.Create)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)
}
