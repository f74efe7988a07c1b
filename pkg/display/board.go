package display

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/railboard/pkg/dataaggregator"
	"github.com/travigo/railboard/pkg/dataaggregator/query"
	"github.com/travigo/railboard/pkg/ldb"
	"github.com/travigo/railboard/pkg/servicefilter"
	"github.com/travigo/railboard/pkg/stationboard"
)

type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatTable, "":
		return FormatTable, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q, expected table, csv or json", value)
	}
}

// Options describes one invocation of the board command.
type Options struct {
	Stations   []string
	Direction  ldb.Direction
	Rows       int
	TimeOffset string
	TimeWindow string

	ShowMessages      bool
	ShowFormation     bool
	ShowCallingPoints bool

	Filter   string
	Format   Format
	Colour   bool
	Detailed bool
	Debug    bool

	// DebugOutput receives the board dumps written in debug mode. Defaults
	// to stderr so they never mix with the board output.
	DebugOutput io.Writer
}

// ErrBoardsFailed is returned by Run when at least one station could not be
// shown. Boards for the other stations are still written.
var ErrBoardsFailed = errors.New("one or more boards could not be shown")

// Run fetches the boards for every requested station and writes them to w.
func Run(ctx context.Context, w io.Writer, options Options) error {
	offset, err := query.ParseDuration(options.TimeOffset)
	if err != nil {
		return err
	}
	window, err := query.ParseDuration(options.TimeWindow)
	if err != nil {
		return err
	}

	filter, err := servicefilter.Compile(options.Filter)
	if err != nil {
		return err
	}

	queries := make([]query.Board, 0, len(options.Stations))
	for _, station := range options.Stations {
		queries = append(queries, query.Board{
			Crs:        station,
			Direction:  options.Direction,
			Rows:       options.Rows,
			Expand:     options.ShowCallingPoints,
			TimeOffset: offset,
			TimeWindow: window,
		})
	}

	config := stationboard.Config{
		Direction:         options.Direction,
		ShowMessages:      options.ShowMessages,
		ShowFormation:     options.ShowFormation,
		ShowCallingPoints: options.ShowCallingPoints,
	}

	failed := false
	results := []stationboard.Result{}

	for _, lookup := range dataaggregator.LookupMany(ctx, queries) {
		if lookup.Err != nil {
			log.Error().Err(lookup.Err).Str("crs", lookup.Query.Crs).Msg("Failed to load board")
			failed = true
			continue
		}

		if options.Debug {
			debugOutput := options.DebugOutput
			if debugOutput == nil {
				debugOutput = os.Stderr
			}
			pretty.Fprintf(debugOutput, "%# v\n", lookup.Board)
		}

		board := filter.Apply(lookup.Board)
		results = append(results, stationboard.Render(board, lookup.Query.Crs, config))
	}

	if err := write(w, results, options); err != nil {
		return err
	}

	if failed {
		return ErrBoardsFailed
	}

	return nil
}

func write(w io.Writer, results []stationboard.Result, options Options) error {
	switch options.Format {
	case FormatCSV:
		return WriteCSV(w, results)
	case FormatJSON:
		return WriteJSON(w, results, options.Detailed)
	default:
		for i, result := range results {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := WriteTable(w, result, options.Colour); err != nil {
				return err
			}
		}

		return nil
	}
}
