package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/repairrequest/model"
	"hotel/internal/domains/repairrequest/model/dto"
	"hotel/internal/domains/repairrequest/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/event"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

type Request interface {
	Create(ctx context.Context, req dto.CreateRequestRequest) error
}

type serviceImpl struct {
	repo   repository.Request
	cfg    *config.Config
	cache  cache.RedisCache
	events event.Publisher
	otel   otel.Otel
}

func New(repo repository.Request, cfg *config.Config, cache cache.RedisCache, events event.Publisher, otel otel.Otel) Request {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		events: events,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRequestRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	request, err := req.ToModel()
	if err != nil {
		return err //nolint:wrapcheck
	}

	request.ID, err = s.repo.NextID(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get next repair request id")

		return fmt.Errorf("failed to get next repair request id: %w", err)
	}

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to raise repair request")

		return fmt.Errorf("failed to raise repair request: %w", err)
	}

	shared.InvalidateReports(ctx, s.cache)
	s.events.Created(ctx, model.EntityName, request)

	return nil
}
