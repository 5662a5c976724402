package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/model/dto"
	"hotel/internal/domains/customer/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/event"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (model.Customer, error)
	FindByName(ctx context.Context, req dto.NameRequest) (model.Customer, error)
}

type serviceImpl struct {
	repo   repository.Customer
	cfg    *config.Config
	cache  cache.RedisCache
	events event.Publisher
	otel   otel.Otel
}

func New(repo repository.Customer, cfg *config.Config, cache cache.RedisCache, events event.Publisher, otel otel.Otel) Customer {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		events: events,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (res model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	customer, err := req.ToModel()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	customer.ID, err = s.repo.NextID(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get next customer id")

		return res, fmt.Errorf("failed to get next customer id: %w", err)
	}

	if err = s.repo.Insert(ctx, customer); err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		return res, fmt.Errorf("failed to create customer: %w", err)
	}

	shared.InvalidateReports(ctx, s.cache)
	s.events.Created(ctx, model.EntityName, customer)

	return customer, nil
}

// FindByName resolves a customer by first and last name. With duplicate
// names the lowest id wins.
func (s *serviceImpl) FindByName(ctx context.Context, req dto.NameRequest) (res model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.FindByName")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.Get(ctx, req.Filter())
	if errors.Is(err, gRepo.ErrNotFound) {
		return res, failure.NotFound(fmt.Sprintf("could not find customer with name %s", req)) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	return res, nil
}
