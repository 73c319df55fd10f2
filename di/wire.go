//go:build wireinject
// +build wireinject

package di

import (
	"turnero/config"
	"turnero/infras/gemini"
	"turnero/infras/jwt"
	"turnero/infras/kafka"
	"turnero/infras/otel"
	"turnero/infras/postgres"
	"turnero/infras/redis"
	"turnero/permissions"
	bookingHandler "turnero/internal/handlers/booking"
	healthHandler "turnero/internal/handlers/health"
	scheduleHandler "turnero/internal/handlers/schedule"
	"turnero/shared/cache"
	"turnero/transport/http"
	"turnero/transport/http/middleware"
	"turnero/transport/http/router"

	bookingRepository "turnero/internal/domains/booking/repository"
	bookingService "turnero/internal/domains/booking/service"
	scheduleRepository "turnero/internal/domains/schedule/repository"
	scheduleService "turnero/internal/domains/schedule/service"

	"github.com/google/wire"

	authService "turnero/internal/domains/auth/service"
	userRepository "turnero/internal/domains/user/repository"
	userService "turnero/internal/domains/user/service"
	authHandler "turnero/internal/handlers/auth"
	userHandler "turnero/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	gemini.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	scheduleService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	scheduleDomain,
	bookingDomain,
	userDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	userHandler.New,
	scheduleHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
