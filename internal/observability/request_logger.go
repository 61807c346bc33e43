package observability

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger logs every request with a generated request id and feeds
// the request metrics.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("X-Request-ID", requestID)

		// Deferred so the final status is recorded even when an inner
		// handler panics.
		defer func() {
			duration := time.Since(start)
			status := c.Response().StatusCode()
			metrics.RecordRequest(c.Path(), c.Method(), status, duration)

			logger.Info("request handled",
				zap.String("request_id", requestID),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Duration("duration", duration),
			)
		}()

		return c.Next()
	}
}
