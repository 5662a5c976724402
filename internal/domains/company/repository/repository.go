package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/company/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

const queryTopByRepairCount = `SELECT m.cmpid, m.name, COUNT(r.rid) AS repairs
FROM maintenancecompany m
JOIN repair r ON r.mcompany = m.cmpid
GROUP BY m.cmpid, m.name
ORDER BY repairs DESC
LIMIT $1`

type Company interface {
	Insert(ctx context.Context, model model.Company) error
	TopByRepairCount(ctx context.Context, k int) (gDto.ResultSet, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Company]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, cfg *config.Config, otel otel.Otel) Company {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Company](model.EntityName, model.TableName, model.FieldID, db, cfg, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) TopByRepairCount(ctx context.Context, k int) (gDto.ResultSet, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".company.TopByRepairCount")
	defer scope.End()

	res, err := r.db.Query(ctx, queryTopByRepairCount, k)
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to list top maintenance companies: %w", err)
	}

	return res, nil
}
