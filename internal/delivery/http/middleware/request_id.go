package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type ctxKey string

const RequestIDKey ctxKey = "request_id"

// RequestID propagates an incoming request id or mints one, echoing it on the
// response and exposing it to handlers via Locals.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDHeader, id)
		c.Locals(string(RequestIDKey), id)

		return c.Next()
	}
}
