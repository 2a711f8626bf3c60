//go:build wireinject
// +build wireinject

package di

import (
	"infopage/config"
	"infopage/infras/otel"
	"infopage/infras/postgres"
	"infopage/infras/redis"
	"infopage/internal/domains/slide/master"
	"infopage/shared/cache"
	"infopage/transport/http"
	"infopage/transport/http/middleware"
	"infopage/transport/http/router"

	eventRepository "infopage/internal/domains/event/repository"
	eventService "infopage/internal/domains/event/service"
	roomRepository "infopage/internal/domains/room/repository"
	roomService "infopage/internal/domains/room/service"
	settingRepository "infopage/internal/domains/setting/repository"
	settingService "infopage/internal/domains/setting/service"
	slideRepository "infopage/internal/domains/slide/repository"
	slideService "infopage/internal/domains/slide/service"
	roomHandler "infopage/internal/handlers/room"
	slideHandler "infopage/internal/handlers/slide"

	"github.com/google/wire"
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	wire.Bind(new(http.HealthChecker), new(*postgres.Connection)),
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventService.New,
)

var settingDomain = wire.NewSet(
	settingRepository.New,
	settingService.New,
)

var slideDomain = wire.NewSet(
	slideRepository.New,
	wire.Bind(new(master.EventQueries), new(eventRepository.Event)),
	master.NewRenderer,
	slideService.New,
)

var domains = wire.NewSet(
	roomDomain,
	eventDomain,
	settingDomain,
	slideDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	slideHandler.New,
	router.New,
)

func InitializeApp(cfg *config.Config) *App {
	wire.Build(
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
