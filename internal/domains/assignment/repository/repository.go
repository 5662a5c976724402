package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/assignment/model"
	gRepo "hotel/shared/repository"
)

type Assignment interface {
	Insert(ctx context.Context, model model.Assignment) error
	NextID(ctx context.Context) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Assignment]
}

func New(db *postgres.Connection, cfg *config.Config, otel otel.Otel) Assignment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Assignment](model.EntityName, model.TableName, model.FieldID, db, cfg, otel),
	}
}
