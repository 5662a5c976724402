package shared

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

// ConvertStringToInt parses a console value into an int, naming the field on failure.
func ConvertStringToInt(field, value string) (int, error) {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, failure.InputParse(fmt.Errorf("%s must be a whole number, got %q", field, value)) //nolint:wrapcheck
	}

	return result, nil
}

func ConvertStringToInt64(field, value string) (int64, error) {
	result, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, failure.InputParse(fmt.Errorf("%s must be a whole number, got %q", field, value)) //nolint:wrapcheck
	}

	return result, nil
}

func ConvertStringToFloat(field, value string) (float64, error) {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, failure.InputParse(fmt.Errorf("%s must be a number, got %q", field, value)) //nolint:wrapcheck
	}

	return result, nil
}

// ConvertStringToBool accepts y/yes/n/no besides the strconv forms.
func ConvertStringToBool(field, value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}

	result, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, failure.InputParse(fmt.Errorf("%s must be y or n, got %q", field, value)) //nolint:wrapcheck
	}

	return result, nil
}

// ConvertStringToDate parses YYYY-MM-DD in the application timezone.
func ConvertStringToDate(field, value string) (time.Time, error) {
	result, err := timezone.Parse(constant.DateFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, failure.InputParse(fmt.Errorf("%s must be a date formatted as YYYY-MM-DD, got %q", field, value)) //nolint:wrapcheck
	}

	return result, nil
}

// DateRange parses both ends of an inclusive date range and rejects reversed bounds.
func DateRange(startValue, endValue string) (start, end time.Time, err error) {
	start, err = ConvertStringToDate("start date", startValue)
	if err != nil {
		return start, end, err
	}

	end, err = ConvertStringToDate("end date", endValue)
	if err != nil {
		return start, end, err
	}

	if end.Before(start) {
		return start, end, failure.Invalid("end date must not be before start date") //nolint:wrapcheck
	}

	return start, end, nil
}

// BuildCacheKey builds a report cache key such as "report:room:available:5".
func BuildCacheKey(name string, parts ...any) string {
	key := []string{constant.CacheReportPrefix, name}
	for _, part := range parts {
		switch v := part.(type) {
		case time.Time:
			key = append(key, v.Format(constant.DateFormat))
		default:
			key = append(key, fmt.Sprintf("%v", v))
		}
	}

	return strings.Join(key, constant.CacheKeySeparator)
}

// InvalidateReports drops every cached report; any insert can change any report.
func InvalidateReports(ctx context.Context, redisCache cache.RedisCache) {
	pattern := constant.CacheReportPrefix + constant.CacheKeySeparator + constant.Asterix

	if err := redisCache.Clear(ctx, pattern); err != nil {
		log.Warn().Err(err).Str("pattern", pattern).Msg("failed to invalidate report cache")
	}
}
