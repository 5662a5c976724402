package service_test

import (
	"context"
	"errors"
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"
	customerMocks "hotel/internal/domains/customer/mocks"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/model/dto"
	"hotel/internal/domains/customer/service"
	cacheMocks "hotel/shared/cache/mocks"
	eventMocks "hotel/shared/event/mocks"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validRequest() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		FirstName:   "Ann",
		LastName:    "Lee",
		Address:     "1 Main St",
		Phone:       "5551234",
		DateOfBirth: "1990-04-12",
		Gender:      "Female",
	}
}

func TestCustomerService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := eventMocks.NewMockPublisher(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mockCache, mockEvents, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.CreateCustomerRequest
		setupMock func()
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "successful creation uses next id",
			req:  validRequest(),
			setupMock: func() {
				mockRepo.EXPECT().NextID(gomock.Any()).Return(8, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c model.Customer) error {
						assert.Equal(t, 8, c.ID)
						assert.Equal(t, "Ann", c.FirstName)

						return nil
					})
				mockCache.EXPECT().Clear(gomock.Any(), "report:*").Return(nil)
				mockEvents.EXPECT().Created(gomock.Any(), model.EntityName, gomock.Any())
			},
		},
		{
			name: "invalid gender",
			req: func() dto.CreateCustomerRequest {
				req := validRequest()
				req.Gender = "Robot"

				return req
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindInvalid,
		},
		{
			name: "unparsable phone",
			req: func() dto.CreateCustomerRequest {
				req := validRequest()
				req.Phone = "five"

				return req
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindInputParse,
		},
		{
			name: "next id error",
			req:  validRequest(),
			setupMock: func() {
				mockRepo.EXPECT().NextID(gomock.Any()).Return(0, failure.Query(errors.New("relation does not exist")))
			},
			wantErr:  true,
			wantKind: failure.KindQuery,
		},
		{
			name: "insert error",
			req:  validRequest(),
			setupMock: func() {
				mockRepo.EXPECT().NextID(gomock.Any()).Return(8, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.Statement(errors.New("duplicate key")))
			},
			wantErr:  true,
			wantKind: failure.KindStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomerService_FindByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	svc := service.New(mockRepo, &config.Config{}, cacheMocks.NewMockRedisCache(ctrl), eventMocks.NewMockPublisher(ctrl), mocks.NewOtel())

	req := dto.NameRequest{FirstName: "Ann", LastName: "Lee"}

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), req.Filter()).Return(model.Customer{ID: 3, FirstName: "Ann", LastName: "Lee"}, nil)

		got, err := svc.FindByName(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 3, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{}, gRepo.ErrNotFound)

		_, err := svc.FindByName(context.Background(), req)

		require.Error(t, err)
		assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
		assert.Equal(t, "could not find customer with name Ann Lee", err.Error())
	})

	t.Run("customer with id zero", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), req.Filter()).Return(model.Customer{ID: 0, FirstName: "Ann", LastName: "Lee"}, nil)

		got, err := svc.FindByName(context.Background(), req)

		require.NoError(t, err)
		assert.Zero(t, got.ID)
		assert.Equal(t, "Ann", got.FirstName)
	})

	t.Run("missing last name", func(t *testing.T) {
		_, err := svc.FindByName(context.Background(), dto.NameRequest{FirstName: "Ann"})

		assert.Equal(t, failure.KindInvalid, failure.GetKind(err))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{}, failure.Query(errors.New("timeout")))

		_, err := svc.FindByName(context.Background(), req)

		assert.Equal(t, failure.KindQuery, failure.GetKind(err))
	})
}
