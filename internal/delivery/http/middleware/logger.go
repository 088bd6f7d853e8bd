package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

// Logger writes one access-log line per request: peer, method, path, status,
// response size and latency.
func Logger(l logger.Interface) func(c *fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()

		err := ctx.Next()

		var line strings.Builder

		line.WriteString(ctx.IP())
		line.WriteString(" - ")
		line.WriteString(ctx.Method())
		line.WriteString(" ")
		line.WriteString(ctx.OriginalURL())
		line.WriteString(" - ")
		line.WriteString(strconv.Itoa(ctx.Response().StatusCode()))
		line.WriteString(" ")
		line.WriteString(strconv.Itoa(len(ctx.Response().Body())))
		line.WriteString(" - ")
		line.WriteString(strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		line.WriteString("ms")

		l.Info(line.String())

		return err
	}
}
