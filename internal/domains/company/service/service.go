package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/company/model"
	"hotel/internal/domains/company/model/dto"
	"hotel/internal/domains/company/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/event"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

const cacheTopCompanies = "company:top"

type Company interface {
	Create(ctx context.Context, req dto.CreateCompanyRequest) error
	TopByRepairCount(ctx context.Context, req dto.TopCompaniesRequest) (gDto.ResultSet, error)
}

type serviceImpl struct {
	repo   repository.Company
	cfg    *config.Config
	cache  cache.RedisCache
	events event.Publisher
	otel   otel.Otel
}

func New(repo repository.Company, cfg *config.Config, cache cache.RedisCache, events event.Publisher, otel otel.Otel) Company {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		events: events,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCompanyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	company, err := req.ToModel()
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, company); err != nil {
		log.Error().Err(err).Msg("failed to create maintenance company")

		return fmt.Errorf("failed to create maintenance company: %w", err)
	}

	shared.InvalidateReports(ctx, s.cache)
	s.events.Created(ctx, model.EntityName, company)

	return nil
}

func (s *serviceImpl) TopByRepairCount(ctx context.Context, req dto.TopCompaniesRequest) (res gDto.ResultSet, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".company.TopByRepairCount")
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

	cacheKey := shared.BuildCacheKey(cacheTopCompanies, limit.K)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for top maintenance companies")

		return res, nil
	}

	res, err = s.repo.TopByRepairCount(ctx, limit.K)
	if err != nil {
		log.Error().Err(err).Msg("failed to list top maintenance companies")

		return res, fmt.Errorf("failed to list top maintenance companies: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save top maintenance companies to cache")
	}

	return res, nil
}
