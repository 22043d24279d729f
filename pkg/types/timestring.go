package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString represents a time of day in "HH:MM" 24-hour form.
// It is the wire, storage and in-memory format for slot times.
type TimeString string

const minutesPerDay = 24 * 60

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(strings.TrimSpace(s))
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks the "HH:MM" lexical form and value ranges.
func (t TimeString) Validate() error {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("invalid time string format: %q", s)
	}
	h, err := strconv.Atoi(s[0:2])
	if err != nil {
		return fmt.Errorf("invalid time string format: %q", s)
	}
	m, err := strconv.Atoi(s[3:5])
	if err != nil {
		return fmt.Errorf("invalid time string format: %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return fmt.Errorf("time out of range: %q", s)
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes returns the number of minutes since midnight.
// Splits on the colon, so sloppy stored values like "9:00" still work.
// Malformed values count as midnight.
func (t TimeString) Minutes() int {
	hh, mm, ok := strings.Cut(string(t), ":")
	if !ok {
		return 0
	}
	h, errH := strconv.Atoi(hh)
	m, errM := strconv.Atoi(mm)
	if errH != nil || errM != nil {
		return 0
	}
	return h*60 + m
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes returns the time n minutes later, still on the same day.
// Crossing midnight is an error.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	total := t.Minutes() + n
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("time %s%+d minutes leaves the day", t, n)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

func (t TimeString) String() string {
	return string(t)
}

// Value implements driver.Valuer, storing the raw "HH:MM" string.
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner for TEXT and TIME columns.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = normalizeScanned(v)
		return nil
	case []byte:
		*t = normalizeScanned(string(v))
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

// normalizeScanned trims seconds from "HH:MM:SS" values coming out of
// TIME columns.
func normalizeScanned(s string) TimeString {
	if len(s) > 5 {
		s = s[:5]
	}
	return TimeString(s)
}
