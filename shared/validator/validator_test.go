package validator_test

import (
	"testing"

	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/stretchr/testify/assert"
)

type bookingInput struct {
	HotelID string `validate:"required,number"`
	Date    string `validate:"required,date"`
	Gender  string `validate:"omitempty,oneof=Male Female Other"`
	Flag    string `validate:"omitempty,yesno"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        bookingInput
		expectError bool
		message     string
	}{
		{
			name:        "valid struct",
			data:        bookingInput{HotelID: "5", Date: "2024-01-05", Gender: "Male", Flag: "y"},
			expectError: false,
		},
		{
			name:        "missing required field",
			data:        bookingInput{Date: "2024-01-05"},
			expectError: true,
			message:     "HotelID is required",
		},
		{
			name:        "non numeric id",
			data:        bookingInput{HotelID: "five", Date: "2024-01-05"},
			expectError: true,
			message:     "HotelID must be a whole number",
		},
		{
			name:        "bad date",
			data:        bookingInput{HotelID: "5", Date: "05/01/2024"},
			expectError: true,
			message:     "Date must be a date formatted as YYYY-MM-DD",
		},
		{
			name:        "bad enum",
			data:        bookingInput{HotelID: "5", Date: "2024-01-05", Gender: "unknown"},
			expectError: true,
			message:     "Gender must be one of Male Female Other",
		},
		{
			name:        "bad flag",
			data:        bookingInput{HotelID: "5", Date: "2024-01-05", Flag: "maybe"},
			expectError: true,
			message:     "Flag must be y or n",
		},
		{
			name:        "flag accepts true",
			data:        bookingInput{HotelID: "5", Date: "2024-01-05", Flag: "true"},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if !tt.expectError {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, failure.KindInvalid, failure.GetKind(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}
