package ldb

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"
)

type ExpectedStatus string

const (
	StatusOnTime    ExpectedStatus = "On time"
	StatusDelayed   ExpectedStatus = "Delayed"
	StatusCancelled ExpectedStatus = "Cancelled"
)

var statusSentinels = []ExpectedStatus{StatusOnTime, StatusDelayed, StatusCancelled}

const clockFormat = "15:04"

// ClockTime is a time of day as shown on a station board.
type ClockTime struct {
	Hour   int
	Minute int
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c ClockTime) Equal(other ClockTime) bool {
	return c.Hour == other.Hour && c.Minute == other.Minute
}

// On returns the clock time placed on the calendar day of date.
func (c ClockTime) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, date.Location())
}

// Expected is an estimated time column value: either a status sentinel or a
// clock time, never both.
type Expected struct {
	Status ExpectedStatus
	Time   *ClockTime
}

func (e *Expected) String() string {
	if e == nil {
		return ""
	}
	if e.Time != nil {
		return e.Time.String()
	}

	return string(e.Status)
}

func IsStatusSentinel(value string) bool {
	return slices.Contains(statusSentinels, ExpectedStatus(value))
}

// ParseClock turns a raw HH:MM value into a ClockTime. Null values and status
// sentinels yield nil without error.
func ParseClock(raw *string) (*ClockTime, error) {
	if raw == nil || IsStatusSentinel(*raw) {
		return nil, nil
	}

	parsed, err := time.Parse(clockFormat, *raw)
	if err != nil || len(*raw) != len(clockFormat) {
		return nil, &MalformedTimeError{Value: *raw}
	}

	return &ClockTime{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

// ParseExpected keeps the sentinel when one is present, otherwise parses the
// value as a clock time.
func ParseExpected(raw *string) (*Expected, error) {
	if raw == nil {
		return nil, nil
	}

	if IsStatusSentinel(*raw) {
		return &Expected{Status: ExpectedStatus(*raw)}, nil
	}

	clock, err := ParseClock(raw)
	if err != nil {
		return nil, err
	}

	return &Expected{Time: clock}, nil
}
