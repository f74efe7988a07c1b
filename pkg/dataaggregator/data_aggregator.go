package dataaggregator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/railboard/pkg/dataaggregator/query"
	"github.com/travigo/railboard/pkg/dataaggregator/source"
	"github.com/travigo/railboard/pkg/ldb"
)

const maxConcurrentLookups = 8

type Aggregator struct {
	Sources []DataSource
}

var GlobalAggregator Aggregator

// ParseError reports a board payload that could not be turned into a board.
type ParseError struct {
	Crs string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse data for station %s: %s", e.Crs, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

// Lookup asks each registered source in turn, skipping sources that cannot
// serve the query.
func (a *Aggregator) Lookup(ctx context.Context, q query.Board) (*ldb.Board, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	for _, dataSource := range a.Sources {
		startTime := time.Now()
		board, err := dataSource.Lookup(ctx, q)

		if errors.Is(err, source.UnsupportedSourceError) {
			continue
		}

		log.Debug().
			Str("source", dataSource.GetName()).
			Str("crs", q.Crs).
			Str("direction", string(q.Direction)).
			Str("latency", time.Since(startTime).String()).
			Msg("Board lookup")

		if isParseError(err) {
			return nil, &ParseError{Crs: q.Crs, Err: err}
		}

		return board, err
	}

	return nil, fmt.Errorf("no data source can serve station %s: %w", q.Crs, source.UnsupportedSourceError)
}

type BoardResult struct {
	Query query.Board
	Board *ldb.Board
	Err   error
}

// LookupMany fetches several boards concurrently. Results are returned in
// query order and a failure for one station does not affect the others.
func (a *Aggregator) LookupMany(ctx context.Context, queries []query.Board) []BoardResult {
	results := make([]BoardResult, len(queries))

	p := pool.New().WithMaxGoroutines(maxConcurrentLookups)
	for i, q := range queries {
		i, q := i, q
		p.Go(func() {
			board, err := a.Lookup(ctx, q)
			results[i] = BoardResult{Query: q, Board: board, Err: err}
		})
	}
	p.Wait()

	return results
}

func Lookup(ctx context.Context, q query.Board) (*ldb.Board, error) {
	return GlobalAggregator.Lookup(ctx, q)
}

func LookupMany(ctx context.Context, queries []query.Board) []BoardResult {
	return GlobalAggregator.LookupMany(ctx, queries)
}

func isParseError(err error) bool {
	var schemaErr *ldb.SchemaViolationError
	var timeErr *ldb.MalformedTimeError

	return errors.As(err, &schemaErr) || errors.As(err, &timeErr) || errors.Is(err, ldb.ErrMalformedPayload)
}
