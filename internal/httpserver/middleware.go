package httpserver

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

// requestLogger tags each request with an id and logs method, path, status and latency.
func requestLogger(log logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()

		c.Set(fiber.HeaderXRequestID, requestID)
		ctx := logger.WithRequestID(c.UserContext(), requestID)
		c.SetUserContext(ctx)

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		switch {
		case err != nil:
			log.Error(ctx, "%s %s failed after %dms: %v", c.Method(), c.OriginalURL(), latency.Milliseconds(), err)
		case status >= 500:
			log.Error(ctx, "%s %s -> %d (%dms)", c.Method(), c.OriginalURL(), status, latency.Milliseconds())
		case status >= 400:
			log.Warn(ctx, "%s %s -> %d (%dms)", c.Method(), c.OriginalURL(), status, latency.Milliseconds())
		default:
			log.Info(ctx, "%s %s -> %d (%dms)", c.Method(), c.OriginalURL(), status, latency.Milliseconds())
		}

		return err
	}
}
