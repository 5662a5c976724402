package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/repair/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

const (
	queryListByCompanyName = `SELECT r.rid, r.repairtype, r.hotelid, r.roomno
FROM repair r
JOIN maintenancecompany m ON m.cmpid = r.mcompany
WHERE m.name = $1
ORDER BY r.rid`

	queryCountPerYear = `SELECT CAST(EXTRACT(YEAR FROM repairdate) AS INTEGER) AS year, COUNT(*) AS repairs
FROM repair
WHERE hotelid = $1 AND roomno = $2
GROUP BY 1
ORDER BY 1`
)

type Repair interface {
	Insert(ctx context.Context, model model.Repair) error
	ListByCompanyName(ctx context.Context, name string) (gDto.ResultSet, error)
	CountPerYear(ctx context.Context, hotelID, roomNo int) (gDto.ResultSet, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Repair]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, cfg *config.Config, otel otel.Otel) Repair {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Repair](model.EntityName, model.TableName, model.FieldID, db, cfg, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) ListByCompanyName(ctx context.Context, name string) (gDto.ResultSet, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".repair.ListByCompanyName")
	defer scope.End()

	res, err := r.db.Query(ctx, queryListByCompanyName, name)
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to list repairs by company: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) CountPerYear(ctx context.Context, hotelID, roomNo int) (gDto.ResultSet, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".repair.CountPerYear")
	defer scope.End()

	res, err := r.db.Query(ctx, queryCountPerYear, hotelID, roomNo)
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to count repairs per year: %w", err)
	}

	return res, nil
}
