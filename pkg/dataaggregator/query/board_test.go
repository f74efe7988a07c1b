package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/travigo/railboard/pkg/ldb"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		query Board
		valid bool
	}{
		{"lower case", Board{Crs: "kgx"}, true},
		{"arrivals", Board{Crs: "WAT", Direction: ldb.DirectionArrivals, Rows: 4}, true},
		{"short crs", Board{Crs: "KG"}, false},
		{"digits", Board{Crs: "K9X"}, false},
		{"negative rows", Board{Crs: "KGX", Rows: -1}, false},
		{"unknown direction", Board{Crs: "KGX", Direction: "sideways"}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.query.Validate()
			if test.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidQuery)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		value    string
		expected time.Duration
	}{
		{"", 0},
		{"30", 30 * time.Minute},
		{"-15", -15 * time.Minute},
		{"PT45M", 45 * time.Minute},
		{"PT1H30M", 90 * time.Minute},
		{"-PT20M", -20 * time.Minute},
	}

	for _, test := range tests {
		t.Run(test.value, func(t *testing.T) {
			duration, err := ParseDuration(test.value)
			assert.NoError(t, err)
			assert.Equal(t, test.expected, duration)
		})
	}

	_, err := ParseDuration("soon")
	assert.Error(t, err)
}
