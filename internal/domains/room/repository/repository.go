package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	gRepo "hotel/shared/repository"
)

const (
	queryCountAvailable = `SELECT COUNT(*) FROM room r
WHERE r.hotelid = $1
AND NOT EXISTS (SELECT 1 FROM booking b WHERE b.hotelid = r.hotelid AND b.roomno = r.roomno)`

	queryCountBooked = `SELECT COUNT(*) FROM room r
WHERE r.hotelid = $1
AND EXISTS (SELECT 1 FROM booking b WHERE b.hotelid = r.hotelid AND b.roomno = r.roomno)`

	queryAvailableForWeek = `SELECT hotelid, roomno FROM room WHERE hotelid = $1
EXCEPT
SELECT hotelid, roomno FROM booking WHERE hotelid = $1 AND bookingdate BETWEEN $2 AND $3
ORDER BY roomno`
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	CountAvailable(ctx context.Context, hotelID int) (int, error)
	CountBooked(ctx context.Context, hotelID int) (int, error)
	AvailableForWeek(ctx context.Context, hotelID int, from, to gModel.Date) (gDto.ResultSet, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, cfg *config.Config, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldHotelID, db, cfg, otel),
		db:         db,
		otel:       otel,
	}
}

// CountAvailable counts rooms of the hotel that have never been booked.
func (r *repositoryImpl) CountAvailable(ctx context.Context, hotelID int) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.CountAvailable")
	defer scope.End()

	var count int
	if err := r.db.Get(ctx, &count, queryCountAvailable, hotelID); err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count available rooms: %w", err)
	}

	return count, nil
}

func (r *repositoryImpl) CountBooked(ctx context.Context, hotelID int) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.CountBooked")
	defer scope.End()

	var count int
	if err := r.db.Get(ctx, &count, queryCountBooked, hotelID); err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count booked rooms: %w", err)
	}

	return count, nil
}

// AvailableForWeek lists rooms of the hotel without a booking dated
// between from and to, both inclusive.
func (r *repositoryImpl) AvailableForWeek(ctx context.Context, hotelID int, from, to gModel.Date) (gDto.ResultSet, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.AvailableForWeek")
	defer scope.End()

	res, err := r.db.Query(ctx, queryAvailableForWeek, hotelID, from, to)
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to list rooms available for the week: %w", err)
	}

	return res, nil
}
