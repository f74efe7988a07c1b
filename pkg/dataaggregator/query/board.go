package query

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	iso8601 "github.com/senseyeio/duration"
	"github.com/travigo/railboard/pkg/ldb"
)

const DefaultRows = 10

// ErrInvalidQuery is wrapped by every error Validate returns.
var ErrInvalidQuery = errors.New("invalid board query")

var crsPattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

type Board struct {
	Crs       string
	Direction ldb.Direction
	Rows      int
	Expand    bool

	TimeOffset time.Duration
	TimeWindow time.Duration
}

func (b Board) Validate() error {
	if !crsPattern.MatchString(b.Crs) {
		return fmt.Errorf("%w: CRS code %q must be three letters", ErrInvalidQuery, b.Crs)
	}
	if b.Rows < 0 {
		return fmt.Errorf("%w: rows must not be negative, got %d", ErrInvalidQuery, b.Rows)
	}
	if _, err := ldb.ParseDirection(string(b.Direction)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	return nil
}

// ParseDuration accepts an ISO 8601 duration such as PT30M, optionally
// negated with a leading minus, or a plain number of minutes.
func ParseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute, nil
	}

	negative := strings.HasPrefix(value, "-")
	parsed, err := iso8601.ParseISO8601(strings.TrimPrefix(value, "-"))
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", value, err)
	}

	reference := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	duration := parsed.Shift(reference).Sub(reference)
	if negative {
		duration = -duration
	}

	return duration, nil
}
