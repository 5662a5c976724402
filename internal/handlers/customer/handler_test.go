package customer_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/model/dto"
	"hotel/internal/domains/customer/service/mocks"
	"hotel/internal/handlers/customer"
	"hotel/shared/failure"
	"hotel/transport/console"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAddCustomer(t *testing.T) {
	tests := []struct {
		name      string
		serviceFn func(svc *mocks.MockCustomer)
		expected  string
		errOut    string
	}{
		{
			name: "success",
			serviceFn: func(svc *mocks.MockCustomer) {
				svc.EXPECT().
					Create(gomock.Any(), dto.CreateCustomerRequest{
						FirstName:   "Ann",
						LastName:    "Lee",
						Address:     "1 Main St",
						Phone:       "5551234",
						DateOfBirth: "1990-04-01",
						Gender:      "Female",
					}).
					Return(model.Customer{ID: 11}, nil)
			},
			expected: "Successfully added customer.",
		},
		{
			name: "invalid gender",
			serviceFn: func(svc *mocks.MockCustomer) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, failure.Invalid("Gender must be one of [Male Female Other]"))
			},
			expected: "Failed to add customer.",
			errOut:   "Gender must be one of [Male Female Other]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockCustomer(ctrl)
			tt.serviceFn(svc)

			out := &bytes.Buffer{}
			errOut := &bytes.Buffer{}
			session := console.NewSession(strings.NewReader("Ann\nLee\n1 Main St\n5551234\n1990-04-01\nFemale\n"), out, errOut)

			handler := customer.New(svc, otelMocks.NewOtel())
			handler.AddCustomer(context.Background(), session)

			assert.Contains(t, out.String(), "\tEnter first name: $")
			assert.Contains(t, out.String(), tt.expected)
			assert.Equal(t, tt.errOut, errOut.String())
		})
	}
}
