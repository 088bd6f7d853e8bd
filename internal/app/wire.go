//go:build wireinject
// +build wireinject

package app

import (
	"fmt"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/delivery/http"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"

	userHandler "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/users/handler"
	userRepository "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/users/repository"
	userService "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/users/service"

	fieldTypeHandler "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fieldtypes/handler"
	fieldTypeRepository "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fieldtypes/repository"
	fieldTypeService "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fieldtypes/service"

	fieldHandler "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fields/handler"
	fieldRepository "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fields/repository"
	fieldService "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/fields/service"

	membershipHandler "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/memberships/handler"
	membershipRepository "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/memberships/repository"
	membershipService "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/memberships/service"

	bookingHandler "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/handler"
	bookingRepository "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/repository"
	bookingService "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/bookings/service"

	paymentHandler "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/payments/handler"
	paymentRepository "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/payments/repository"
	paymentService "github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/domains/payments/service"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/clock"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/httpserver"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/logger"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/postgres"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/redis"
)

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	PG         *postgres.Postgres
	Redis      *redis.Redis
	DB         postgres.PgxIface
	Clock      clock.Clock
}

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	userHandler.New,
	wire.Bind(new(userRepository.Querier), new(*userRepository.Queries)),
)

var fieldTypeDomain = wire.NewSet(
	fieldTypeRepository.New,
	fieldTypeService.New,
	fieldTypeHandler.New,
	wire.Bind(new(fieldTypeRepository.Querier), new(*fieldTypeRepository.Queries)),
)

var fieldDomain = wire.NewSet(
	fieldRepository.New,
	fieldService.New,
	fieldHandler.New,
	wire.Bind(new(fieldRepository.Querier), new(*fieldRepository.Queries)),
)

var membershipDomain = wire.NewSet(
	membershipRepository.New,
	membershipService.New,
	membershipHandler.New,
	wire.Bind(new(membershipRepository.Querier), new(*membershipRepository.Queries)),
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	bookingHandler.New,
	wire.Bind(new(bookingRepository.Querier), new(*bookingRepository.Queries)),
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
	paymentHandler.New,
	wire.Bind(new(paymentRepository.Querier), new(*paymentRepository.Queries)),
)

var domains = wire.NewSet(
	userDomain,
	fieldTypeDomain,
	fieldDomain,
	membershipDomain,
	bookingDomain,
	paymentDomain,
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		// Infrastructure providers
		provideLogger,
		providePostgres,
		providePgxIface,
		provideValidator,
		provideRedis,
		provideRedisCache,
		provideClock,

		domains,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideRouter,
		provideHTTPServer,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}

func provideRouter(
	cfg *config.Config,
	l logger.Interface,
	h http.Handlers,
) *fiber.App {
	app := fiber.New()

	http.NewRouter(
		app,
		cfg,
		l,
		h,
	)

	return app
}

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level)
}

func providePostgres(cfg *config.Config, l logger.Interface) (*postgres.Postgres, error) {
	dsn := postgres.ConnectionBuilder(cfg.Pg.Host, cfg.Pg.Port, cfg.Pg.User, cfg.Pg.Password, cfg.Pg.Dbname, cfg.Pg.SSLMode)
	pg, err := postgres.New(dsn, postgres.MaxPoolSize(cfg.Pg.PoolMax))
	if err != nil {
		return nil, err
	}
	return pg, nil
}

func providePgxIface(pg *postgres.Postgres) postgres.PgxIface {
	return pg.Pool
}

func provideRedis(cfg *config.Config) (*redis.Redis, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	return redis.New(addr, cfg.Redis.Password, cfg.Redis.DB)
}

func provideRedisCache(r *redis.Redis, l logger.Interface) redis.IRedisCache {
	return redis.NewRedisCache(r.Client, l)
}

func provideValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func provideClock() clock.Clock {
	return clock.New()
}

func provideHTTPServer(cfg *config.Config, app *fiber.App) *httpserver.Server {
	return httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.App(app),
	)
}
