package display

import (
	"encoding/json"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/liip/sheriff"
	"github.com/travigo/railboard/pkg/stationboard"
)

type csvRow struct {
	Station  string `csv:"station"`
	Time     string `csv:"time"`
	Location string `csv:"location"`
	Platform string `csv:"platform"`
	Expected string `csv:"expected"`
	Operator string `csv:"operator"`
}

// WriteCSV writes one line per service across all boards. The location
// column holds the first line of the location cell without styling.
func WriteCSV(w io.Writer, results []stationboard.Result) error {
	rows := []*csvRow{}
	for _, result := range results {
		for _, row := range result.Rows {
			location := ""
			if lines := row.Location.Lines(); len(lines) > 0 {
				location = lines[0].Plain()
			}

			rows = append(rows, &csvRow{
				Station:  result.Station,
				Time:     row.Time,
				Location: location,
				Platform: row.Platform,
				Expected: row.Status.Plain(),
				Operator: row.Operator,
			})
		}
	}

	return gocsv.Marshal(rows, w)
}

// WriteJSON writes the boards as an indented JSON array. Detailed output
// adds the per service fields of the detailed group.
func WriteJSON(w io.Writer, results []stationboard.Result, detailed bool) error {
	reduced, err := Reduce(results, detailed)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(reduced)
}

// Reduce applies the sheriff field groups to a value for JSON output.
func Reduce(value interface{}, detailed bool) (interface{}, error) {
	groups := []string{"basic"}
	if detailed {
		groups = append(groups, "detailed")
	}

	return sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, value)
}
