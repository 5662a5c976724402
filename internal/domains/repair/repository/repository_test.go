package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/repair/model"
	"hotel/internal/domains/repair/repository"
	gModel "hotel/shared/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (repository.Repair, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := postgres.NewWithDB(sqlx.NewDb(db, "postgres"), mocks.NewOtel())

	return repository.New(conn, &config.Config{}, mocks.NewOtel()), mock
}

func TestRepairRepository_Insert(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO repair (rid, hotelid, roomno, mcompany, repairdate, description, repairtype) VALUES ($1, $2, $3, $4, $5, $6, $7)")).
		WithArgs(10, 5, 101, 3, "2023-06-15", "leaking tap", "Small").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), model.Repair{
		ID:          10,
		HotelID:     5,
		RoomNo:      101,
		CompanyID:   3,
		RepairDate:  gModel.NewDate(time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)),
		Description: "leaking tap",
		RepairType:  "Small",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepairRepository_ListByCompanyName(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectQuery(`WHERE m.name = \$1`).
		WithArgs("FixIt").
		WillReturnRows(sqlmock.NewRows([]string{"rid", "repairtype", "hotelid", "roomno"}).
			AddRow(int64(10), "Small", int64(5), int64(101)))

	res, err := repo.ListByCompanyName(context.Background(), "FixIt")

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"10", "Small", "5", "101"}}, res.Rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepairRepository_CountPerYear(t *testing.T) {
	repo, mock := setup(t)

	mock.ExpectQuery(`EXTRACT\(YEAR FROM repairdate\)`).
		WithArgs(5, 101).
		WillReturnRows(sqlmock.NewRows([]string{"year", "repairs"}).
			AddRow(int64(2022), int64(1)).
			AddRow(int64(2023), int64(3)))

	res, err := repo.CountPerYear(context.Background(), 5, 101)

	require.NoError(t, err)
	assert.Equal(t, []string{"year", "repairs"}, res.Columns)
	assert.Equal(t, [][]string{{"2022", "1"}, {"2023", "3"}}, res.Rows)
}
