package display

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/railboard/pkg/dataaggregator"
	"github.com/travigo/railboard/pkg/dataaggregator/source/localfixture"
	"github.com/travigo/railboard/pkg/stationboard"
)

func testResult() stationboard.Result {
	return stationboard.Result{
		Station:        "kgx",
		Title:          "London Kings Cross: Departures",
		LocationHeader: "Destination",
		GeneratedAt:    time.Date(2023, 6, 1, 10, 58, 0, 0, time.UTC),
		Rows: []stationboard.Row{
			{
				Mode:        "train",
				Time:        "10:00",
				Location:    "Edinburgh " + stationboard.Tag(stationboard.StyleNeutral, "via York"),
				Platform:    "4",
				Status:      stationboard.Tag(stationboard.StyleSuccess, "On time"),
				StatusStyle: stationboard.StyleSuccess,
				Operator:    "LNER",
				ServiceID:   "abc123",
			},
			{
				Mode:        "train",
				Time:        "10:10",
				Location:    "Leeds\n" + stationboard.Tag(stationboard.StyleSecondary, "This train has been cancelled"),
				Platform:    "-",
				Status:      stationboard.Tag(stationboard.StyleDanger, "Cancelled"),
				StatusStyle: stationboard.StyleDanger,
				Operator:    "[ZZ] Somebody Else's Railway",
				Cancelled:   true,
			},
		},
		Messages: []string{"Beware delays & disruption"},
	}
}

func TestWriteTablePlain(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteTable(&out, testResult(), false))

	text := out.String()
	lines := strings.Split(text, "\n")

	assert.NotContains(t, text, "\x1b[")
	assert.Equal(t, "London Kings Cross: Departures", strings.TrimSpace(lines[0]))
	assert.True(t, strings.HasPrefix(lines[1], "Time    Destination"))
	assert.Contains(t, lines[1], "Expected")

	assert.True(t, strings.HasPrefix(lines[3], "10:00   Edinburgh via York"))
	assert.True(t, strings.HasSuffix(lines[3], "LNER"))
	assert.Contains(t, lines[3], "On time")

	assert.True(t, strings.HasPrefix(lines[4], "10:10   Leeds"))
	assert.True(t, strings.HasSuffix(lines[4], "[ZZ] Somebody El"))
	assert.Equal(t, strings.Repeat(" ", timeWidth)+columnGap+"This train has been cancelled", lines[5])

	assert.Contains(t, text, "Beware delays & disruption")
}

func TestWriteTableColour(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteTable(&out, testResult(), true))

	text := out.String()
	assert.Contains(t, text, "\x1b[38;2;25;135;84mOn time\x1b[0m")
	assert.Contains(t, text, "\x1b[38;2;220;53;69mCancelled\x1b[0m")
	assert.Contains(t, text, "\x1b[38;2;13;202;240mLNER\x1b[0m")
	assert.Contains(t, text, "\x1b[38;2;255;193;7mEdinburgh \x1b[0mvia York")
}

func TestWrapSegments(t *testing.T) {
	segments := stationboard.Markup("Calling at: " + stationboard.Tag(stationboard.StyleDanger, "Finsbury Park (10:05)")).Segments()

	lines := wrapSegments(segments, 16)
	require.Len(t, lines, 3)

	assert.Equal(t, cell{{Text: "Calling at:"}}, lines[0])
	assert.Equal(t, cell{{Text: "Finsbury Park", Style: stationboard.StyleDanger}}, lines[1])
	assert.Equal(t, cell{{Text: "(10:05)", Style: stationboard.StyleDanger}}, lines[2])

	for _, line := range wrapSegments([]stationboard.Segment{{Text: strings.Repeat("x", 20)}}, 8) {
		assert.LessOrEqual(t, line.width(), 8)
	}
}

func TestWriteCSV(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteCSV(&out, []stationboard.Result{testResult()}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "station,time,location,platform,expected,operator", lines[0])
	assert.Equal(t, "kgx,10:00,Edinburgh via York,4,On time,LNER", lines[1])
	assert.Equal(t, "kgx,10:10,Leeds,-,Cancelled,[ZZ] Somebody Else's Railway", lines[2])
}

func TestWriteJSONGroups(t *testing.T) {
	tests := []struct {
		detailed bool
		present  bool
	}{
		{false, false},
		{true, true},
	}

	for _, test := range tests {
		var out bytes.Buffer
		require.NoError(t, WriteJSON(&out, []stationboard.Result{testResult()}, test.detailed))

		var decoded []map[string]interface{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		require.Len(t, decoded, 1)

		assert.Equal(t, "London Kings Cross: Departures", decoded[0]["title"])

		rows := decoded[0]["rows"].([]interface{})
		first := rows[0].(map[string]interface{})
		assert.Equal(t, "10:00", first["time"])

		_, hasServiceID := first["serviceId"]
		assert.Equal(t, test.present, hasServiceID)
	}
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, format)

	format, err = ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, format)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}
	dataaggregator.GlobalAggregator.RegisterSource(localfixture.Source{Directory: "testdata"})

	var out bytes.Buffer
	err := Run(context.Background(), &out, Options{
		Stations:     []string{"kgx"},
		Rows:         10,
		ShowMessages: true,
		Filter:       `operatorCode == "GR"`,
		Format:       FormatCSV,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "kgx,10:00,Edinburgh via York,4,On time,LNER", lines[1])
}

func TestRunReportsFailedStations(t *testing.T) {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}
	dataaggregator.GlobalAggregator.RegisterSource(localfixture.Source{Directory: "testdata"})

	var out bytes.Buffer
	err := Run(context.Background(), &out, Options{
		Stations: []string{"kgx", "pad"},
		Format:   FormatTable,
	})
	assert.ErrorIs(t, err, ErrBoardsFailed)
	assert.Contains(t, out.String(), "London Kings Cross: Departures")
}

func TestRunRejectsBadFilter(t *testing.T) {
	err := Run(context.Background(), &bytes.Buffer{}, Options{Stations: []string{"kgx"}, Filter: "platform =="})
	assert.Error(t, err)
}

func TestRunDebugDumpStaysOffBoardOutput(t *testing.T) {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}
	dataaggregator.GlobalAggregator.RegisterSource(localfixture.Source{Directory: "testdata"})

	var out, debug bytes.Buffer
	err := Run(context.Background(), &out, Options{
		Stations:    []string{"kgx"},
		Format:      FormatJSON,
		Debug:       true,
		DebugOutput: &debug,
	})
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	assert.Contains(t, debug.String(), "ldb.Board")
	assert.Contains(t, debug.String(), "London Kings Cross")
}
