package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"hotel/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_Value(t *testing.T) {
	day := model.NewDate(time.Date(2024, 3, 1, 17, 45, 0, 0, time.UTC))

	value, err := day.Value()

	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", value)

	value, err = model.Date{}.Value()

	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestDate_AddDays(t *testing.T) {
	day := model.NewDate(time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2024-03-04", day.AddDays(7).String())
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name     string
		src      any
		expected string
		wantErr  bool
	}{
		{name: "time", src: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), expected: "2023-12-31"},
		{name: "bytes", src: []byte("2023-12-31"), expected: "2023-12-31"},
		{name: "timestamp text", src: "2023-12-31T00:00:00Z", expected: "2023-12-31"},
		{name: "nil", src: nil, expected: ""},
		{name: "garbage", src: "yesterday", wantErr: true},
		{name: "unsupported", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var day model.Date

			err := day.Scan(tt.src)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, day.String())
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		Day model.Date `json:"day"`
	}{Day: model.NewDate(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))})

	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2024-01-05"}`, string(payload))
}
