package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/repair/model"
	"hotel/internal/domains/repair/model/dto"
	"hotel/internal/domains/repair/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/event"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheByCompany = "repair:company"
	cachePerYear   = "repair:year"
)

type Repair interface {
	Create(ctx context.Context, req dto.CreateRepairRequest) error
	ListByCompany(ctx context.Context, req dto.CompanyRepairsRequest) (gDto.ResultSet, error)
	CountPerYear(ctx context.Context, req dto.RoomRepairsRequest) (gDto.ResultSet, error)
}

type serviceImpl struct {
	repo   repository.Repair
	cfg    *config.Config
	cache  cache.RedisCache
	events event.Publisher
	otel   otel.Otel
}

func New(repo repository.Repair, cfg *config.Config, cache cache.RedisCache, events event.Publisher, otel otel.Otel) Repair {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		events: events,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRepairRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".repair.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	repair, err := req.ToModel()
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, repair); err != nil {
		log.Error().Err(err).Msg("failed to create repair")

		return fmt.Errorf("failed to create repair: %w", err)
	}

	shared.InvalidateReports(ctx, s.cache)
	s.events.Created(ctx, model.EntityName, repair)

	return nil
}

func (s *serviceImpl) ListByCompany(ctx context.Context, req dto.CompanyRepairsRequest) (res gDto.ResultSet, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".repair.ListByCompany")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	name := strings.TrimSpace(req.CompanyName)
	cacheKey := shared.BuildCacheKey(cacheByCompany, name)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for repairs by company")

		return res, nil
	}

	res, err = s.repo.ListByCompanyName(ctx, name)
	if err != nil {
		log.Error().Err(err).Msg("failed to list repairs by company")

		return res, fmt.Errorf("failed to list repairs by company: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save repairs by company to cache")
	}

	return res, nil
}

func (s *serviceImpl) CountPerYear(ctx context.Context, req dto.RoomRepairsRequest) (res gDto.ResultSet, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".repair.CountPerYear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	hotelID, roomNo, err := req.Parse()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cachePerYear, hotelID, roomNo)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for repairs per year")

		return res, nil
	}

	res, err = s.repo.CountPerYear(ctx, hotelID, roomNo)
	if err != nil {
		log.Error().Err(err).Msg("failed to count repairs per year")

		return res, fmt.Errorf("failed to count repairs per year: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save repairs per year to cache")
	}

	return res, nil
}
