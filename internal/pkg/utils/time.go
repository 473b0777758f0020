package utils

import (
	"caps-service/internal/pkg/constvars"
	"caps-service/internal/pkg/exceptions"
	"time"
)

// ParseDateOnly parses a "YYYY-MM-DD" date in UTC.
func ParseDateOnly(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(constvars.DateOnlyFormat, value, time.UTC)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err)
	}
	return parsed, nil
}

// ParseDateTime parses an RFC3339 timestamp, e.g. "2025-06-01T10:00:00Z".
func ParseDateTime(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err)
	}
	return parsed, nil
}
