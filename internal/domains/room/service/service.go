package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/event"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheCountAvailable = "room:available"
	cacheCountBooked    = "room:booked"
	cacheWeek           = "room:week"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	CountAvailable(ctx context.Context, req dto.HotelRequest) (int, error)
	CountBooked(ctx context.Context, req dto.HotelRequest) (int, error)
	AvailableForWeek(ctx context.Context, req dto.WeeklyAvailabilityRequest) (gDto.ResultSet, error)
}

type serviceImpl struct {
	repo   repository.Room
	cfg    *config.Config
	cache  cache.RedisCache
	events event.Publisher
	otel   otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, events event.Publisher, otel otel.Otel) Room {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		events: events,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	room, err := req.ToModel()
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	shared.InvalidateReports(ctx, s.cache)
	s.events.Created(ctx, model.EntityName, room)

	return nil
}

func (s *serviceImpl) CountAvailable(ctx context.Context, req dto.HotelRequest) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.CountAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	hotelID, err := req.Parse()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheCountAvailable, hotelID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for available rooms")

		return res, nil
	}

	res, err = s.repo.CountAvailable(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to count available rooms")

		return res, fmt.Errorf("failed to count available rooms: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save available rooms to cache")
	}

	return res, nil
}

func (s *serviceImpl) CountBooked(ctx context.Context, req dto.HotelRequest) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.CountBooked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	hotelID, err := req.Parse()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheCountBooked, hotelID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booked rooms")

		return res, nil
	}

	res, err = s.repo.CountBooked(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to count booked rooms")

		return res, fmt.Errorf("failed to count booked rooms: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save booked rooms to cache")
	}

	return res, nil
}

func (s *serviceImpl) AvailableForWeek(ctx context.Context, req dto.WeeklyAvailabilityRequest) (res gDto.ResultSet, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.AvailableForWeek")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	week, err := req.Parse()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheWeek, week.HotelID, week.From)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for weekly availability")

		return res, nil
	}

	res, err = s.repo.AvailableForWeek(ctx, week.HotelID, week.From, week.To)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms available for the week")

		return res, fmt.Errorf("failed to list rooms available for the week: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save weekly availability to cache")
	}

	return res, nil
}
