package service_test

import (
	"context"
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"
	companyMocks "hotel/internal/domains/company/mocks"
	"hotel/internal/domains/company/model"
	"hotel/internal/domains/company/model/dto"
	"hotel/internal/domains/company/service"
	"hotel/shared/cache"
	gDto "hotel/shared/dto"
	eventMocks "hotel/shared/event/mocks"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCompanyService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMocks.NewMockCompany(ctrl)
	mockEvents := eventMocks.NewMockPublisher(ctrl)
	svc := service.New(mockRepo, &config.Config{}, cache.NewRedisCache(nil, mocks.NewOtel()), mockEvents, mocks.NewOtel())

	company := model.Company{ID: 3, Name: "FixIt", Address: "2 Side St", IsCertified: true}

	mockRepo.EXPECT().Insert(gomock.Any(), company).Return(nil)
	mockEvents.EXPECT().Created(gomock.Any(), model.EntityName, company)

	err := svc.Create(context.Background(), dto.CreateCompanyRequest{ID: "3", Name: "FixIt", Address: "2 Side St", IsCertified: "yes"})

	assert.NoError(t, err)
}

func TestCompanyService_CreateInvalidFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(companyMocks.NewMockCompany(ctrl), &config.Config{}, cache.NewRedisCache(nil, mocks.NewOtel()), eventMocks.NewMockPublisher(ctrl), mocks.NewOtel())

	err := svc.Create(context.Background(), dto.CreateCompanyRequest{ID: "3", Name: "FixIt", IsCertified: "maybe"})

	require.Error(t, err)
	assert.Equal(t, failure.KindInvalid, failure.GetKind(err))
	assert.Equal(t, "IsCertified must be y or n", err.Error())
}

func TestCompanyService_TopByRepairCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := companyMocks.NewMockCompany(ctrl)
	svc := service.New(mockRepo, &config.Config{}, cache.NewRedisCache(nil, mocks.NewOtel()), eventMocks.NewMockPublisher(ctrl), mocks.NewOtel())

	tests := []struct {
		name      string
		k         string
		setupMock func()
		wantKind  failure.Kind
	}{
		{
			name: "positive k",
			k:    "2",
			setupMock: func() {
				mockRepo.EXPECT().TopByRepairCount(gomock.Any(), 2).Return(gDto.ResultSet{Columns: []string{"cmpid"}}, nil)
			},
		},
		{
			name:      "zero k",
			k:         "0",
			setupMock: func() {},
			wantKind:  failure.KindInvalid,
		},
		{
			name:      "negative k",
			k:         "-1",
			setupMock: func() {},
			wantKind:  failure.KindInvalid,
		},
		{
			name:      "k not a number",
			k:         "few",
			setupMock: func() {},
			wantKind:  failure.KindInputParse,
		},
		{
			name:      "k missing",
			k:         "",
			setupMock: func() {},
			wantKind:  failure.KindInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.TopByRepairCount(context.Background(), dto.TopCompaniesRequest{K: tt.k})

			if tt.wantKind == failure.KindUnknown {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantKind, failure.GetKind(err))
		})
	}
}
