package shared_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/shared"
	"hotel/shared/cache/mocks"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "plain number", input: "42", expected: 42},
		{name: "surrounding spaces", input: "  7 ", expected: 7},
		{name: "negative", input: "-3", expected: -3},
		{name: "empty", input: "", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "decimal", input: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ConvertStringToInt("hotel id", tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, failure.KindInputParse, failure.GetKind(err))
				assert.Contains(t, err.Error(), "hotel id")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConvertStringToFloat(t *testing.T) {
	got, err := shared.ConvertStringToFloat("price", "120.50")
	require.NoError(t, err)
	assert.InDelta(t, 120.5, got, 0.0001)

	_, err = shared.ConvertStringToFloat("price", "cheap")
	assert.Equal(t, failure.KindInputParse, failure.GetKind(err))
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{input: "y", expected: true},
		{input: "YES", expected: true},
		{input: "n", expected: false},
		{input: "No", expected: false},
		{input: "true", expected: true},
		{input: "0", expected: false},
		{input: "maybe", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := shared.ConvertStringToBool("certified", tt.input)

			if tt.wantErr {
				assert.Equal(t, failure.KindInputParse, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConvertStringToDate(t *testing.T) {
	got, err := shared.ConvertStringToDate("booking date", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 29, got.Day())

	_, err = shared.ConvertStringToDate("booking date", "29/02/2024")
	require.Error(t, err)
	assert.Equal(t, failure.KindInputParse, failure.GetKind(err))

	_, err = shared.ConvertStringToDate("booking date", "2023-02-29")
	assert.Error(t, err)
}

func TestDateRange(t *testing.T) {
	start, end, err := shared.DateRange("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.True(t, start.Before(end))

	_, _, err = shared.DateRange("2024-01-01", "2024-01-01")
	assert.NoError(t, err)

	_, _, err = shared.DateRange("2024-02-01", "2024-01-01")
	assert.Equal(t, failure.KindInvalid, failure.GetKind(err))

	_, _, err = shared.DateRange("soon", "2024-01-01")
	assert.Equal(t, failure.KindInputParse, failure.GetKind(err))
}

func TestBuildCacheKey(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "report:room:available:5", shared.BuildCacheKey("room:available", 5))
	assert.Equal(t, "report:room:week:5:2024-03-01", shared.BuildCacheKey("room:week", 5, day))
	assert.Equal(t, "report:company:top", shared.BuildCacheKey("company:top"))
}

func TestInvalidateReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "report:*").Return(nil)

	shared.InvalidateReports(context.Background(), redisCache)
}

func TestInvalidateReports_ErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "report:*").Return(errors.New("connection reset"))

	assert.NotPanics(t, func() {
		shared.InvalidateReports(context.Background(), redisCache)
	})
}
