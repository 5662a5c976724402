package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/repository"
	"hotel/shared/failure"
	gModel "hotel/shared/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (repository.Room, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := postgres.NewWithDB(sqlx.NewDb(db, "postgres"), mocks.NewOtel())

	return repository.New(conn, &config.Config{}, mocks.NewOtel()), mock
}

func TestRoomRepository_Insert(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO room (hotelid, roomno, roomtype) VALUES ($1, $2, $3)")).
		WithArgs(5, 101, "suite").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), model.Room{HotelID: 5, RoomNo: 101, RoomType: "suite"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_Counts(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectQuery(`AND NOT EXISTS`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(`AND EXISTS`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	available, err := repo.CountAvailable(context.Background(), 5)
	require.NoError(t, err)

	booked, err := repo.CountBooked(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 3, available)
	assert.Equal(t, 1, booked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_CountError(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectQuery(`SELECT COUNT`).WillReturnError(errors.New("relation \"booking\" does not exist"))

	_, err := repo.CountAvailable(context.Background(), 5)

	require.Error(t, err)
	assert.Equal(t, failure.KindQuery, failure.GetKind(err))
}

func TestRoomRepository_AvailableForWeek(t *testing.T) {
	repo, mock := setup(t)

	from := gModel.NewDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	to := from.AddDays(7)

	mock.ExpectQuery(`EXCEPT`).
		WithArgs(5, "2024-03-01", "2024-03-08").
		WillReturnRows(sqlmock.NewRows([]string{"hotelid", "roomno"}).
			AddRow(int64(5), int64(102)).
			AddRow(int64(5), int64(103)))

	res, err := repo.AvailableForWeek(context.Background(), 5, from, to)

	require.NoError(t, err)
	assert.Equal(t, []string{"hotelid", "roomno"}, res.Columns)
	assert.Equal(t, [][]string{{"5", "102"}, {"5", "103"}}, res.Rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
