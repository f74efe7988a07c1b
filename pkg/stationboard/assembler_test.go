package stationboard

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/railboard/pkg/ldb"
)

func loadBoard(t *testing.T, name string) *ldb.Board {
	t.Helper()

	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)

	board, err := ldb.ParseBoard(data)
	require.NoError(t, err)

	return board
}

func TestRenderDepartures(t *testing.T) {
	board := loadBoard(t, "departures_kgx.json")

	result := Render(board, "KGX", Config{Direction: ldb.DirectionDepartures})

	assert.Equal(t, "London Kings Cross: Departures", result.Title)
	assert.Equal(t, "Destination", result.LocationHeader)
	assert.Empty(t, result.Messages)
	require.Len(t, result.Rows, 4)

	first := result.Rows[0]
	assert.Equal(t, "10:00", first.Time)
	assert.Equal(t, "Edinburgh via York", first.Location.Plain())
	assert.Equal(t, "4", first.Platform)
	assert.Equal(t, "On time", first.Status.Plain())
	assert.Equal(t, StyleSuccess, first.StatusStyle)
	assert.Equal(t, "LNER", first.Operator)
	assert.Equal(t, "train", first.Mode)
	assert.Equal(t, "5a3d6f2e-0000-0000-0000-000000000001", first.ServiceID)

	second := result.Rows[1]
	assert.Equal(t, "-", second.Platform)
	assert.Equal(t, StyleWarning, second.StatusStyle)
	assert.Equal(t, "Cambridge and Kings Lynn\nThis train has been delayed by a train fault", second.Location.Plain())

	third := result.Rows[2]
	assert.Equal(t, StyleDanger, third.StatusStyle)
	assert.Equal(t, "[ZZ] Hull Trains", third.Operator)
	assert.Equal(t, "Leeds\nThis train has been cancelled because of a shortage of train crew", third.Location.Plain())
	assert.NotContains(t, third.Location.Plain(), "delayed")

	bus := result.Rows[3]
	assert.Equal(t, "bus", bus.Mode)
	assert.Equal(t, "BUS", bus.Platform)
	assert.Equal(t, StyleWarning, bus.StatusStyle)
}

func TestRenderWithFormationAndMessages(t *testing.T) {
	board := loadBoard(t, "departures_kgx.json")

	result := Render(board, "KGX", Config{
		Direction:     ldb.DirectionDepartures,
		ShowFormation: true,
		ShowMessages:  true,
	})

	lines := result.Rows[0].Location.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "◢■◻◻ 3", lines[1].Plain())

	// Cancelled services never show a formation.
	assert.NotContains(t, result.Rows[2].Location.Plain(), "◢")

	assert.Equal(t, []string{
		"Beware delays & disruption",
		"Lifts out of order at this station.",
	}, result.Messages)
}

func TestRenderArrivals(t *testing.T) {
	board := loadBoard(t, "arrivals_wat.json")

	result := Render(board, "WAT", Config{Direction: ldb.DirectionArrivals, ShowCallingPoints: true})

	assert.Equal(t, "London Waterloo: Arrivals", result.Title)
	assert.Equal(t, "Origin", result.LocationHeader)
	require.Len(t, result.Rows, 1)

	row := result.Rows[0]
	assert.Equal(t, "10:45", row.Time)
	assert.Equal(t, "10:47", row.Status.Plain())
	assert.Equal(t, StyleWarning, row.StatusStyle)
	assert.Equal(t, "SWR", row.Operator)
	assert.Equal(t,
		"Southampton Central\nCalling at: Southampton Central (09:30), Winchester (09:45) and Woking (10:20)",
		row.Location.Plain(),
	)
	assert.Equal(t, time.Date(2023, 1, 15, 10, 45, 0, 0, board.GeneratedAt.Location()), row.ScheduledAt)
}

func TestRenderDirectionMismatch(t *testing.T) {
	board := loadBoard(t, "arrivals_wat.json")

	result := Render(board, "WAT", Config{Direction: ldb.DirectionDepartures})

	row := result.Rows[0]
	assert.Equal(t, "—", row.Time)
	assert.Equal(t, "—", row.Status.Plain())
	assert.Equal(t, "London Waterloo", row.Location.Plain())
	assert.True(t, row.ScheduledAt.IsZero())
}

func TestAnnotationIsExclusive(t *testing.T) {
	tests := []struct {
		name     string
		service  *ldb.Service
		expected string
	}{
		{"cancelled with both reasons", &ldb.Service{IsCancelled: true, CancelReason: ptr("cancel"), DelayReason: ptr("delay")}, "cancel"},
		{"delayed only", &ldb.Service{DelayReason: ptr("delay")}, "delay"},
		{"neither", &ldb.Service{}, ""},
		{"cancel reason without cancellation", &ldb.Service{CancelReason: ptr("cancel"), DelayReason: ptr("delay")}, ""},
		{"cancelled without reason", &ldb.Service{IsCancelled: true, DelayReason: ptr("delay")}, "delay"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Annotation(tc.service))
		})
	}
}

func TestScheduledAtRollsOverMidnight(t *testing.T) {
	generatedAt := time.Date(2023, 3, 4, 23, 50, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2023, 3, 5, 0, 10, 0, 0, time.UTC), scheduledAt(ldb.ClockTime{Hour: 0, Minute: 10}, generatedAt))
	assert.Equal(t, time.Date(2023, 3, 4, 23, 55, 0, 0, time.UTC), scheduledAt(ldb.ClockTime{Hour: 23, Minute: 55}, generatedAt))

	early := time.Date(2023, 3, 5, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, 3, 4, 23, 58, 0, 0, time.UTC), scheduledAt(ldb.ClockTime{Hour: 23, Minute: 58}, early))
}
