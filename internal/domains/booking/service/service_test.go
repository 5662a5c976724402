package service_test

import (
	"context"
	"errors"
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	customerModel "hotel/internal/domains/customer/model"
	customerDto "hotel/internal/domains/customer/model/dto"
	customerMocks "hotel/internal/domains/customer/service/mocks"
	"hotel/shared/cache"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"
	eventMocks "hotel/shared/event/mocks"
	"hotel/shared/failure"
	gModel "hotel/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ann = customerDto.NameRequest{FirstName: "Ann", LastName: "Lee"}

type fixture struct {
	svc       service.Booking
	repo      *bookingMocks.MockBooking
	customers *customerMocks.MockCustomer
	cache     *cacheMocks.MockRedisCache
	events    *eventMocks.MockPublisher
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		customers: customerMocks.NewMockCustomer(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		events:    eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.svc = service.New(f.repo, f.customers, cfg, f.cache, f.events, mocks.NewOtel())

	return f
}

func newUncachedFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		customers: customerMocks.NewMockCustomer(ctrl),
		events:    eventMocks.NewMockPublisher(ctrl),
	}

	f.svc = service.New(f.repo, f.customers, &config.Config{}, cache.NewRedisCache(nil, mocks.NewOtel()), f.events, mocks.NewOtel())

	return f
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		HotelID:     "5",
		RoomNo:      "101",
		FirstName:   "Ann",
		LastName:    "Lee",
		BookingDate: "2024-03-02",
		NoOfPeople:  "2",
		Price:       "120.50",
	}
}

func TestBookingService_Create(t *testing.T) {
	f := newFixture(t)

	f.customers.EXPECT().FindByName(gomock.Any(), ann).Return(customerModel.Customer{ID: 3}, nil)
	f.repo.EXPECT().NextID(gomock.Any()).Return(9, nil)
	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b model.Booking) error {
			assert.Equal(t, 9, b.ID)
			assert.Equal(t, 3, b.CustomerID)
			assert.Equal(t, 5, b.HotelID)
			assert.Equal(t, 101, b.RoomNo)
			assert.Equal(t, "2024-03-02", b.BookingDate.String())

			return nil
		})
	f.cache.EXPECT().Clear(gomock.Any(), "report:*").Return(nil)
	f.events.EXPECT().Created(gomock.Any(), model.EntityName, gomock.Any())

	err := f.svc.Create(context.Background(), createRequest())

	assert.NoError(t, err)
}

func TestBookingService_CreateCustomerNotFound(t *testing.T) {
	f := newFixture(t)

	f.customers.EXPECT().
		FindByName(gomock.Any(), ann).
		Return(customerModel.Customer{}, failure.NotFound("could not find customer with name Ann Lee"))

	err := f.svc.Create(context.Background(), createRequest())

	require.Error(t, err)
	assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
	assert.Equal(t, "could not find customer with name Ann Lee", err.Error())
}

func TestBookingService_CreateBadInputSkipsLookup(t *testing.T) {
	f := newFixture(t)

	req := createRequest()
	req.Price = "lots"

	err := f.svc.Create(context.Background(), req)

	assert.Equal(t, failure.KindInputParse, failure.GetKind(err))
}

func TestBookingService_CreateInsertFails(t *testing.T) {
	f := newFixture(t)

	f.customers.EXPECT().FindByName(gomock.Any(), ann).Return(customerModel.Customer{ID: 3}, nil)
	f.repo.EXPECT().NextID(gomock.Any()).Return(9, nil)
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.Statement(errors.New("violates foreign key constraint")))

	err := f.svc.Create(context.Background(), createRequest())

	assert.Equal(t, failure.KindStatement, failure.GetKind(err))
}

func TestBookingService_TopByPrice(t *testing.T) {
	f := newUncachedFixture(t)

	expected := gDto.ResultSet{Columns: []string{"bid", "price"}, Rows: [][]string{{"7", "300.00"}}}

	f.repo.EXPECT().
		TopByPrice(gomock.Any(), gomock.Any(), gomock.Any(), 1).
		DoAndReturn(func(_ context.Context, start, end gModel.Date, _ int) (gDto.ResultSet, error) {
			assert.Equal(t, "2024-01-01", start.String())
			assert.Equal(t, "2024-01-31", end.String())

			return expected, nil
		})

	got, err := f.svc.TopByPrice(context.Background(), dto.TopPriceRequest{StartDate: "2024-01-01", EndDate: "2024-01-31", K: "1"})

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestBookingService_TopByPriceRejectsBadK(t *testing.T) {
	f := newUncachedFixture(t)

	_, err := f.svc.TopByPrice(context.Background(), dto.TopPriceRequest{StartDate: "2024-01-01", EndDate: "2024-01-31", K: "0"})

	require.Error(t, err)
	assert.Equal(t, failure.KindInvalid, failure.GetKind(err))
	assert.Equal(t, "K must be greater than 0", err.Error())
}

func TestBookingService_TopForCustomer(t *testing.T) {
	f := newFixture(t)

	expected := gDto.ResultSet{Columns: []string{"bid"}, Rows: [][]string{{"7"}, {"2"}}}

	f.customers.EXPECT().FindByName(gomock.Any(), ann).Return(customerModel.Customer{ID: 3}, nil)
	f.cache.EXPECT().Get(gomock.Any(), "report:booking:customer:3:2", gomock.Any()).Return(cache.Nil)
	f.repo.EXPECT().TopByPriceForCustomer(gomock.Any(), 3, 2).Return(expected, nil)
	f.cache.EXPECT().Save(gomock.Any(), "report:booking:customer:3:2", expected, 60).Return(nil)

	got, err := f.svc.TopForCustomer(context.Background(), dto.CustomerTopRequest{FirstName: "Ann", LastName: "Lee", K: "2"})

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestBookingService_TopForCustomerNotFound(t *testing.T) {
	f := newFixture(t)

	f.customers.EXPECT().FindByName(gomock.Any(), ann).Return(customerModel.Customer{}, failure.NotFound("could not find customer with name Ann Lee"))

	_, err := f.svc.TopForCustomer(context.Background(), dto.CustomerTopRequest{FirstName: "Ann", LastName: "Lee", K: "2"})

	assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
}

func TestBookingService_TotalCost(t *testing.T) {
	f := newUncachedFixture(t)

	f.customers.EXPECT().FindByName(gomock.Any(), ann).Return(customerModel.Customer{ID: 3}, nil)
	f.repo.EXPECT().TotalCost(gomock.Any(), 3, 5, gomock.Any(), gomock.Any()).Return(450.5, nil)

	total, err := f.svc.TotalCost(context.Background(), dto.TotalCostRequest{
		HotelID:   "5",
		FirstName: "Ann",
		LastName:  "Lee",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})

	require.NoError(t, err)
	assert.InDelta(t, 450.5, total, 0.0001)
}

func TestBookingService_TotalCostNotFound(t *testing.T) {
	f := newUncachedFixture(t)

	f.customers.EXPECT().FindByName(gomock.Any(), ann).Return(customerModel.Customer{}, failure.NotFound("could not find customer with name Ann Lee"))

	_, err := f.svc.TotalCost(context.Background(), dto.TotalCostRequest{
		HotelID:   "5",
		FirstName: "Ann",
		LastName:  "Lee",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})

	assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
}
