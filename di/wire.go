//go:build wireinject
// +build wireinject

package di

import (
	"hotelbooking/config"
	"hotelbooking/infras/otel"
	"hotelbooking/infras/postgres"
	"hotelbooking/infras/redis"
	"hotelbooking/shared/cache"
	"hotelbooking/transport/http"
	"hotelbooking/transport/http/middleware"
	"hotelbooking/transport/http/router"

	amenityRepository "hotelbooking/internal/domains/amenity/repository"
	bookingRepository "hotelbooking/internal/domains/booking/repository"
	bookingService "hotelbooking/internal/domains/booking/service"
	customerRepository "hotelbooking/internal/domains/customer/repository"
	hotelRepository "hotelbooking/internal/domains/hotel/repository"
	hotelService "hotelbooking/internal/domains/hotel/service"
	roomRepository "hotelbooking/internal/domains/room/repository"
	roomService "hotelbooking/internal/domains/room/service"

	bookingHandler "hotelbooking/internal/handlers/booking"
	hotelHandler "hotelbooking/internal/handlers/hotel"
	roomHandler "hotelbooking/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	amenityRepository.New,
	hotelRepository.New,
	hotelService.New,
	roomRepository.New,
	roomService.New,
)

var reservationDomain = wire.NewSet(
	customerRepository.New,
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	hotelHandler.New,
	roomHandler.New,
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
