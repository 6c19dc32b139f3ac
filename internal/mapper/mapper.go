// Package mapper converts platform wire DTOs into normalized domain value
// objects. Mapping is pure: no network access, no logging, no side effects.
// A DTO missing a required field is a backend/client schema mismatch and maps
// to an error instead of a silently defaulted value.
package mapper

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingField indicates a required wire field was absent or empty.
var ErrMissingField = errors.New("missing required field")

func require(field, value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return value, nil
}

func parseTime(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", field, err)
	}
	return t, nil
}
