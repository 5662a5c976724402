package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/assignment/model"
	"hotel/internal/domains/assignment/model/dto"
	"hotel/internal/domains/assignment/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/event"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

type Assignment interface {
	Create(ctx context.Context, req dto.CreateAssignmentRequest) error
}

type serviceImpl struct {
	repo   repository.Assignment
	cfg    *config.Config
	cache  cache.RedisCache
	events event.Publisher
	otel   otel.Otel
}

func New(repo repository.Assignment, cfg *config.Config, cache cache.RedisCache, events event.Publisher, otel otel.Otel) Assignment {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		events: events,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAssignmentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".assignment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	assignment, err := req.ToModel()
	if err != nil {
		return err //nolint:wrapcheck
	}

	assignment.ID, err = s.repo.NextID(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get next assignment id")

		return fmt.Errorf("failed to get next assignment id: %w", err)
	}

	if err = s.repo.Insert(ctx, assignment); err != nil {
		log.Error().Err(err).Msg("failed to assign cleaning staff")

		return fmt.Errorf("failed to assign cleaning staff: %w", err)
	}

	shared.InvalidateReports(ctx, s.cache)
	s.events.Created(ctx, model.EntityName, assignment)

	return nil
}
