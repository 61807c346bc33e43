package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/guestbook-service/internal/api/dto"
	"github.com/spec-kit/guestbook-service/internal/persistence"
)

// HealthHandler responds to health and readiness probes.
type HealthHandler struct {
	version  string
	postgres *persistence.Postgres
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(version string, postgres *persistence.Postgres) *HealthHandler {
	return &HealthHandler{version: version, postgres: postgres}
}

// Health GET /health.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
	})
}

// Ready GET /health/ready. Reports readiness by pinging the database.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	if err := h.postgres.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "unavailable",
			"database": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":   "ready",
		"database": "ok",
	})
}
