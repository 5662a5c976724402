package service_test

import (
	"context"
	"errors"
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
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

func newService(ctrl *gomock.Controller, redisCache cache.RedisCache) (service.Room, *roomMocks.MockRoom, *eventMocks.MockPublisher) {
	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockEvents := eventMocks.NewMockPublisher(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(mockRepo, cfg, redisCache, mockEvents, mocks.NewOtel()), mockRepo, mockEvents
}

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockEvents := newService(ctrl, cache.NewRedisCache(nil, mocks.NewOtel()))

	room := model.Room{HotelID: 5, RoomNo: 101, RoomType: "suite"}

	mockRepo.EXPECT().Insert(gomock.Any(), room).Return(nil)
	mockEvents.EXPECT().Created(gomock.Any(), model.EntityName, room)

	err := svc.Create(context.Background(), dto.CreateRoomRequest{HotelID: "5", RoomNo: "101", RoomType: "suite"})

	assert.NoError(t, err)
}

func TestRoomService_CreateInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newService(ctrl, cache.NewRedisCache(nil, mocks.NewOtel()))

	err := svc.Create(context.Background(), dto.CreateRoomRequest{HotelID: "5", RoomNo: "101"})
	assert.Equal(t, failure.KindInvalid, failure.GetKind(err))

	err = svc.Create(context.Background(), dto.CreateRoomRequest{HotelID: "five", RoomNo: "101", RoomType: "suite"})
	assert.Equal(t, failure.KindInputParse, failure.GetKind(err))
}

func TestRoomService_CreateDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newService(ctrl, cache.NewRedisCache(nil, mocks.NewOtel()))

	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.Statement(errors.New("duplicate key")))

	err := svc.Create(context.Background(), dto.CreateRoomRequest{HotelID: "5", RoomNo: "101", RoomType: "suite"})

	require.Error(t, err)
	assert.Equal(t, failure.KindStatement, failure.GetKind(err))
}

func TestRoomService_Counts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newService(ctrl, cache.NewRedisCache(nil, mocks.NewOtel()))

	mockRepo.EXPECT().CountAvailable(gomock.Any(), 5).Return(2, nil)
	mockRepo.EXPECT().CountBooked(gomock.Any(), 5).Return(1, nil)

	available, err := svc.CountAvailable(context.Background(), dto.HotelRequest{HotelID: "5"})
	require.NoError(t, err)

	booked, err := svc.CountBooked(context.Background(), dto.HotelRequest{HotelID: "5"})
	require.NoError(t, err)

	assert.Equal(t, 2, available)
	assert.Equal(t, 1, booked)
}

func TestRoomService_CountAvailableCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc, _, _ := newService(ctrl, mockCache)

	mockCache.EXPECT().
		Get(gomock.Any(), "report:room:available:5", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*int)) = 4

			return nil
		})

	got, err := svc.CountAvailable(context.Background(), dto.HotelRequest{HotelID: "5"})

	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestRoomService_CountBookedCacheMissSaves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc, mockRepo, _ := newService(ctrl, mockCache)

	mockCache.EXPECT().Get(gomock.Any(), "report:room:booked:5", gomock.Any()).Return(cache.Nil)
	mockRepo.EXPECT().CountBooked(gomock.Any(), 5).Return(3, nil)
	mockCache.EXPECT().Save(gomock.Any(), "report:room:booked:5", 3, 60).Return(nil)

	got, err := svc.CountBooked(context.Background(), dto.HotelRequest{HotelID: "5"})

	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestRoomService_CountRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newService(ctrl, cache.NewRedisCache(nil, mocks.NewOtel()))

	mockRepo.EXPECT().CountAvailable(gomock.Any(), 5).Return(0, failure.Query(errors.New("boom")))

	_, err := svc.CountAvailable(context.Background(), dto.HotelRequest{HotelID: "5"})

	assert.Equal(t, failure.KindQuery, failure.GetKind(err))
}

func TestRoomService_AvailableForWeek(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newService(ctrl, cache.NewRedisCache(nil, mocks.NewOtel()))

	expected := gDto.ResultSet{Columns: []string{"hotelid", "roomno"}, Rows: [][]string{{"5", "102"}}}

	mockRepo.EXPECT().
		AvailableForWeek(gomock.Any(), 5, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, from, to gModel.Date) (gDto.ResultSet, error) {
			assert.Equal(t, "2024-03-01", from.String())
			assert.Equal(t, "2024-03-08", to.String())

			return expected, nil
		})

	got, err := svc.AvailableForWeek(context.Background(), dto.WeeklyAvailabilityRequest{HotelID: "5", Date: "2024-03-01"})

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestRoomService_AvailableForWeekInvalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newService(ctrl, cache.NewRedisCache(nil, mocks.NewOtel()))

	_, err := svc.AvailableForWeek(context.Background(), dto.WeeklyAvailabilityRequest{HotelID: "5", Date: "03/01/2024"})

	assert.Equal(t, failure.KindInvalid, failure.GetKind(err))
}
