package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mealforecast/logger"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// RequestLogger tags each request with an id and logs it once handled.
func RequestLogger(c *fiber.Ctx) error {
	start := time.Now()

	requestID := c.Get(HeaderRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Locals("requestID", requestID)
	c.Set(HeaderRequestID, requestID)

	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else {
			status = fiber.StatusInternalServerError
		}
	}

	httpLog := logger.Component("http")
	event := httpLog.Info()
	if status >= fiber.StatusInternalServerError {
		event = httpLog.Error().Err(err)
	}
	event.
		Str("request_id", requestID).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", status).
		Dur("latency", time.Since(start)).
		Msg("Request handled")

	return err
}
