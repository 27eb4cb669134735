//go:build wireinject
// +build wireinject

package di

import (
	"quedee/config"
	"quedee/infras/otel"
	"quedee/infras/redis"
	queueService "quedee/internal/domains/queue/service"
	queueHandler "quedee/internal/handlers/queue"
	"quedee/shared/cache"
	"quedee/transport/http"
	"quedee/transport/http/middleware"
	"quedee/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	newBus,
)

var queueDomain = wire.NewSet(
	newStore,
	queueService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	queueHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		queueDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
