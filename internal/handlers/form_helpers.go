package handlers

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// parseOptionalInt maps user-entered numeric text to an optional field:
// empty input is "absent", anything else must be a non-negative integer.
func parseOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, strconv.ErrRange
	}

	return &n, nil
}

// parsePreferredDate accepts a calendar date that is today or later.
// This is the only place the date constraint is enforced; the booking
// workflow takes the parsed value as-is.
func parsePreferredDate(s string, now time.Time) (time.Time, error) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}

	today, _ := time.Parse(dateLayout, now.Format(dateLayout))
	if date.Before(today) {
		return time.Time{}, errDateInPast
	}

	return date, nil
}

type dateError string

func (e dateError) Error() string { return string(e) }

const errDateInPast = dateError("preferred date is in the past")
