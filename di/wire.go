//go:build wireinject
// +build wireinject

package di

import (
	"portal/config"
	"portal/infras/jwt"
	"portal/infras/kafka"
	"portal/infras/otel"
	"portal/infras/postgres"
	"portal/infras/redis"
	"portal/infras/s3"
	"portal/infras/servicem8"
	"portal/permissions"
	"portal/shared/cache"
	"portal/transport/http"
	"portal/transport/http/middleware"
	"portal/transport/http/router"

	"github.com/google/wire"

	attachmentRepository "portal/internal/domains/attachment/repository"
	attachmentService "portal/internal/domains/attachment/service"
	authService "portal/internal/domains/auth/service"
	bookingRepository "portal/internal/domains/booking/repository"
	bookingService "portal/internal/domains/booking/service"
	customerRepository "portal/internal/domains/customer/repository"
	messageRepository "portal/internal/domains/message/repository"
	messageService "portal/internal/domains/message/service"
	syncService "portal/internal/domains/sync/service"

	authHandler "portal/internal/handlers/auth"
	bookingHandler "portal/internal/handlers/booking"
	fileHandler "portal/internal/handlers/file"
	messageHandler "portal/internal/handlers/message"
	syncHandler "portal/internal/handlers/sync"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	servicem8.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	customerRepository.New,
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var attachmentDomain = wire.NewSet(
	attachmentRepository.New,
	attachmentService.New,
)

var messageDomain = wire.NewSet(
	messageRepository.New,
	messageService.New,
)

var syncDomain = wire.NewSet(
	syncService.New,
)

var domains = wire.NewSet(
	authDomain,
	bookingDomain,
	attachmentDomain,
	messageDomain,
	syncDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	fileHandler.New,
	messageHandler.New,
	syncHandler.New,
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
