package helper

import (
	"fmt"
	"sort"
	"time"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/pkg/constant"
)

// GenerateUniqueKey generates a unique key based on the provided map
func GenerateUniqueKey(args map[string]string) string {
	var keys []string
	for k := range args {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var uniqueKey string
	for _, k := range keys {
		uniqueKey += fmt.Sprintf("%s=%s;", k, args[k])
	}

	return uniqueKey
}

// BuildCacheKey builds a cache key based on the provided key and optional postfix
func BuildCacheKey(key string, postfix ...string) string {
	if len(postfix) > 0 && postfix[0] != "" {
		return fmt.Sprintf("%s:cache:%s:%s", constant.CacheParentKey, key, postfix[0])
	}

	return fmt.Sprintf("%s:cache:%s", constant.CacheParentKey, key)
}

func DefaultPagination(page, limit int) (resultPage, resultLimit int) {
	resultPage = page
	if resultPage <= 0 {
		resultPage = constant.PaginationDefaultPage
	}

	resultLimit = limit
	if resultLimit <= 0 {
		resultLimit = constant.PaginationDefaultLimit
	}

	return resultPage, resultLimit
}

// NormalizeDateUTC parses a calendar date string ("2006-01-02") and pins it to
// UTC midnight. All stored booking dates use this normalization so date
// equality comparisons are exact regardless of the caller's timezone.
func NormalizeDateUTC(date string) (time.Time, error) {
	parsed, err := time.Parse(constant.DateFormat, date)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
}

// TruncateToDayUTC drops the time-of-day component, keeping the calendar day
// in UTC. Comparable with values produced by NormalizeDateUTC.
func TruncateToDayUTC(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseClock parses a time-of-day string ("15:04") into minutes since midnight.
func ParseClock(clock string) (int, error) {
	parsed, err := time.Parse(constant.HoursFormat, clock)
	if err != nil {
		return 0, err
	}

	return parsed.Hour()*constant.MinutesPerHour + parsed.Minute(), nil
}

// ClockFromMinutes renders minutes since midnight as "15:04".
func ClockFromMinutes(minutes int) string {
	h := minutes / constant.MinutesPerHour
	m := minutes % constant.MinutesPerHour

	return fmt.Sprintf("%02d:%02d", h, m)
}
