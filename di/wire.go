//go:build wireinject
// +build wireinject

package di

import (
	"seatpos/config"
	"seatpos/infras/backend"
	"seatpos/infras/credstore"
	"seatpos/infras/jwt"
	"seatpos/infras/otel"
	"seatpos/infras/redis"
	"seatpos/permissions"
	"seatpos/shared/cache"
	"seatpos/shared/query"
	"seatpos/transport/http"
	"seatpos/transport/http/middleware"
	"seatpos/transport/http/router"

	"github.com/google/wire"

	accountRepository "seatpos/internal/domains/account/repository"
	accountService "seatpos/internal/domains/account/service"
	authRepository "seatpos/internal/domains/auth/repository"
	authService "seatpos/internal/domains/auth/service"
	boardService "seatpos/internal/domains/board/service"
	bookingRepository "seatpos/internal/domains/booking/repository"
	bookingService "seatpos/internal/domains/booking/service"
	catalogRepository "seatpos/internal/domains/catalog/repository"
	catalogService "seatpos/internal/domains/catalog/service"
	orderRepository "seatpos/internal/domains/order/repository"
	orderService "seatpos/internal/domains/order/service"
	roomRepository "seatpos/internal/domains/room/repository"
	roomService "seatpos/internal/domains/room/service"

	accountHandler "seatpos/internal/handlers/account"
	authHandler "seatpos/internal/handlers/auth"
	boardHandler "seatpos/internal/handlers/board"
	bookingHandler "seatpos/internal/handlers/booking"
	catalogHandler "seatpos/internal/handlers/catalog"
	roomHandler "seatpos/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	credstore.New,
	backend.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	query.New,
)

var accountDomain = wire.NewSet(
	accountRepository.New,
	accountService.New,
)

var authDomain = wire.NewSet(
	authRepository.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var domains = wire.NewSet(
	accountDomain,
	authDomain,
	roomDomain,
	bookingDomain,
	orderDomain,
	catalogDomain,
	boardService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	boardHandler.New,
	bookingHandler.New,
	roomHandler.New,
	catalogHandler.New,
	accountHandler.New,
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
