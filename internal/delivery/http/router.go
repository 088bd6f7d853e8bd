package http

import (
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	_ "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/docs" // Swagger docs
	bookingHandler "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/handler"
	fieldHandler "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fields/handler"
	fieldTypeHandler "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fieldtypes/handler"
	membershipHandler "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/memberships/handler"
	paymentHandler "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/payments/handler"
	userHandler "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/users/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/delivery/http/middleware"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger"
)

type Handlers struct {
	User       *userHandler.Handler
	FieldType  *fieldTypeHandler.Handler
	Field      *fieldHandler.Handler
	Membership *membershipHandler.Handler
	Booking    *bookingHandler.Handler
	Payment    *paymentHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title field reservation API
// @BasePath /v1
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS(cfg))

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	apiV1Group := app.Group("/v1")
	{
		handlers.User.RegisterRoutes(apiV1Group)
		handlers.FieldType.RegisterRoutes(apiV1Group)
		handlers.Field.RegisterRoutes(apiV1Group)
		handlers.Membership.RegisterRoutes(apiV1Group)
		handlers.Booking.RegisterRoutes(apiV1Group)
		handlers.Payment.RegisterRoutes(apiV1Group)
	}

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
