package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Recovery turns handler panics into 500s and logs the stack.
func Recovery(l logger.Interface) func(c *fiber.Ctx) error {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(ctx *fiber.Ctx, err interface{}) {
			l.Error(fmt.Sprintf("%s - %s %s PANIC: %v\n%s",
				ctx.IP(), ctx.Method(), ctx.OriginalURL(), err, debug.Stack()))
		},
	})
}
