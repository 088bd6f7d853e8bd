package response

import (
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/failure"
	"github.com/gofiber/fiber/v2"
)

type Data[T any] struct {
	Data T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

// WithJSON wraps the payload in the data envelope.
func WithJSON(ctx *fiber.Ctx, code int, payload interface{}) error {
	return respond(ctx, code, Data[any]{Data: payload})
}

// WithError renders a service error with its failure code, 500 for anything
// untyped.
func WithError(ctx *fiber.Ctx, err error) error {
	msg := err.Error()

	return respond(ctx, failure.GetCode(err), Error{Error: &msg})
}

func respond(ctx *fiber.Ctx, code int, payload interface{}) error {
	if payload == nil {
		return ctx.SendStatus(code)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)

	return ctx.Status(code).JSON(payload)
}
