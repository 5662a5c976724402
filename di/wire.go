//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/shared/cache"
	"hotel/shared/event"
	"hotel/transport/console"
	"hotel/transport/console/router"

	assignmentRepository "hotel/internal/domains/assignment/repository"
	assignmentService "hotel/internal/domains/assignment/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	companyRepository "hotel/internal/domains/company/repository"
	companyService "hotel/internal/domains/company/service"
	customerRepository "hotel/internal/domains/customer/repository"
	customerService "hotel/internal/domains/customer/service"
	repairRepository "hotel/internal/domains/repair/repository"
	repairService "hotel/internal/domains/repair/service"
	requestRepository "hotel/internal/domains/repairrequest/repository"
	requestService "hotel/internal/domains/repairrequest/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"

	assignmentHandler "hotel/internal/handlers/assignment"
	bookingHandler "hotel/internal/handlers/booking"
	companyHandler "hotel/internal/handlers/company"
	customerHandler "hotel/internal/handlers/customer"
	repairHandler "hotel/internal/handlers/repair"
	requestHandler "hotel/internal/handlers/repairrequest"
	roomHandler "hotel/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.FromArgs,
)

var infrastructures = wire.NewSet(
	otel.New,
	postgres.New,
	redis.New,
	kafka.New,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	event.NewPublisher,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var companyDomain = wire.NewSet(
	companyRepository.New,
	companyService.New,
)

var repairDomain = wire.NewSet(
	repairRepository.New,
	repairService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var assignmentDomain = wire.NewSet(
	assignmentRepository.New,
	assignmentService.New,
)

var requestDomain = wire.NewSet(
	requestRepository.New,
	requestService.New,
)

var domains = wire.NewSet(
	customerDomain,
	roomDomain,
	companyDomain,
	repairDomain,
	bookingDomain,
	assignmentDomain,
	requestDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	customerHandler.New,
	roomHandler.New,
	companyHandler.New,
	repairHandler.New,
	bookingHandler.New,
	assignmentHandler.New,
	requestHandler.New,
	router.New,
	router.NewMenu,
)

func InitializeConsole(args config.Args) (*console.Console, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		routing,
		console.NewStdSession,
		console.New,
	)

	return &console.Console{}, nil, nil
}
