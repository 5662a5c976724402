package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	gRepo "hotel/shared/repository"
)

const (
	queryTopByPrice = `SELECT bid, hotelid, roomno, bookingdate, price
FROM booking
WHERE bookingdate BETWEEN $1 AND $2
ORDER BY price DESC
LIMIT $3`

	queryTopByPriceForCustomer = `SELECT bid, hotelid, roomno, bookingdate, price
FROM booking
WHERE customer = $1
ORDER BY price DESC
LIMIT $2`

	queryTotalCost = `SELECT COALESCE(SUM(price), 0)
FROM booking
WHERE customer = $1 AND hotelid = $2 AND bookingdate BETWEEN $3 AND $4`
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	NextID(ctx context.Context) (int, error)
	TopByPrice(ctx context.Context, start, end gModel.Date, k int) (gDto.ResultSet, error)
	TopByPriceForCustomer(ctx context.Context, customerID, k int) (gDto.ResultSet, error)
	TotalCost(ctx context.Context, customerID, hotelID int, start, end gModel.Date) (float64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, cfg *config.Config, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, cfg, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) TopByPrice(ctx context.Context, start, end gModel.Date, k int) (gDto.ResultSet, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.TopByPrice")
	defer scope.End()

	res, err := r.db.Query(ctx, queryTopByPrice, start, end, k)
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to list top priced bookings: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) TopByPriceForCustomer(ctx context.Context, customerID, k int) (gDto.ResultSet, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.TopByPriceForCustomer")
	defer scope.End()

	res, err := r.db.Query(ctx, queryTopByPriceForCustomer, customerID, k)
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to list top priced bookings for customer: %w", err)
	}

	return res, nil
}

// TotalCost sums booking prices of the customer at the hotel; zero when
// nothing matches.
func (r *repositoryImpl) TotalCost(ctx context.Context, customerID, hotelID int, start, end gModel.Date) (float64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.TotalCost")
	defer scope.End()

	var total float64
	if err := r.db.Get(ctx, &total, queryTotalCost, customerID, hotelID, start, end); err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum booking cost: %w", err)
	}

	return total, nil
}
