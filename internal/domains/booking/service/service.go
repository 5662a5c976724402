package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	customerService "hotel/internal/domains/customer/service"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/event"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheTopByPrice    = "booking:top"
	cacheTopByCustomer = "booking:customer"
	cacheTotalCost     = "booking:cost"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	TopByPrice(ctx context.Context, req dto.TopPriceRequest) (gDto.ResultSet, error)
	TopForCustomer(ctx context.Context, req dto.CustomerTopRequest) (gDto.ResultSet, error)
	TotalCost(ctx context.Context, req dto.TotalCostRequest) (float64, error)
}

type serviceImpl struct {
	repo      repository.Booking
	customers customerService.Customer
	cfg       *config.Config
	cache     cache.RedisCache
	events    event.Publisher
	otel      otel.Otel
}

func New(repo repository.Booking, customers customerService.Customer, cfg *config.Config, cache cache.RedisCache, events event.Publisher, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		customers: customers,
		cfg:       cfg,
		cache:     cache,
		events:    events,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	booking, err := req.ToModel()
	if err != nil {
		return err //nolint:wrapcheck
	}

	customer, err := s.customers.FindByName(ctx, req.Customer())
	if err != nil {
		return err //nolint:wrapcheck
	}

	booking.CustomerID = customer.ID

	booking.ID, err = s.repo.NextID(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get next booking id")

		return fmt.Errorf("failed to get next booking id: %w", err)
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return fmt.Errorf("failed to create booking: %w", err)
	}

	shared.InvalidateReports(ctx, s.cache)
	s.events.Created(ctx, model.EntityName, booking)

	return nil
}

func (s *serviceImpl) TopByPrice(ctx context.Context, req dto.TopPriceRequest) (res gDto.ResultSet, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.TopByPrice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	query, err := req.Parse()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&query); err != nil {
		return res, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheTopByPrice, query.Start, query.End, query.K)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for top priced bookings")

		return res, nil
	}

	res, err = s.repo.TopByPrice(ctx, query.Start, query.End, query.K)
	if err != nil {
		log.Error().Err(err).Msg("failed to list top priced bookings")

		return res, fmt.Errorf("failed to list top priced bookings: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save top priced bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) TopForCustomer(ctx context.Context, req dto.CustomerTopRequest) (res gDto.ResultSet, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.TopForCustomer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	limit, err := req.Parse()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&limit); err != nil {
		return res, err //nolint:wrapcheck
	}

	customer, err := s.customers.FindByName(ctx, req.Customer())
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheTopByCustomer, customer.ID, limit.K)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for customer bookings")

		return res, nil
	}

	res, err = s.repo.TopByPriceForCustomer(ctx, customer.ID, limit.K)
	if err != nil {
		log.Error().Err(err).Msg("failed to list top priced bookings for customer")

		return res, fmt.Errorf("failed to list top priced bookings for customer: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save customer bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) TotalCost(ctx context.Context, req dto.TotalCostRequest) (res float64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.TotalCost")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	query, err := req.Parse()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	customer, err := s.customers.FindByName(ctx, req.Customer())
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheTotalCost, customer.ID, query.HotelID, query.Start, query.End)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for customer total cost")

		return res, nil
	}

	res, err = s.repo.TotalCost(ctx, customer.ID, query.HotelID, query.Start, query.End)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum customer cost")

		return res, fmt.Errorf("failed to sum customer cost: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save customer total cost to cache")
	}

	return res, nil
}
