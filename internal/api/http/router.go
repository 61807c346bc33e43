package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/guestbook-service/internal/api/http/handlers"
	apperrors "github.com/spec-kit/guestbook-service/pkg/util"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Users  *handlers.UsersHandler
}

// RegisterRoutes wires HTTP routes. Must be called after middlewares and
// before the app starts so the unmatched-route fallback stays last.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Health)
	app.Get("/health/ready", cfg.Health.Ready)

	users := app.Group("/users")
	users.Get("/", cfg.Users.ListUsers)
	users.Post("/", cfg.Users.CreateUser)
	users.Get("/:id", cfg.Users.GetUser)
	users.Delete("/:id", cfg.Users.DeleteUser)

	app.Use(func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("Endpoint")
	})
}
