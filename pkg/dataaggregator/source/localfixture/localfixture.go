package localfixture

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/railboard/pkg/dataaggregator/query"
	"github.com/travigo/railboard/pkg/dataaggregator/source"
	"github.com/travigo/railboard/pkg/ldb"
	"github.com/travigo/railboard/pkg/util"
)

const defaultDirectory = "./data"

// Source reads saved Huxley responses from disk, for working offline.
// Files are looked up as <crs>-<direction>.json, then <crs>.json.
type Source struct {
	Directory string
}

func New() Source {
	return Source{
		Directory: util.GetEnvironmentVariable("RAILBOARD_FIXTURE_DIR", defaultDirectory),
	}
}

func (s Source) GetName() string {
	return "Local fixture files"
}

func (s Source) Lookup(ctx context.Context, q query.Board) (*ldb.Board, error) {
	for _, path := range s.candidates(q) {
		file, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return nil, err
		}

		log.Debug().Str("path", path).Msg("Loading board fixture")

		board, err := ldb.DecodeBoard(file)
		file.Close()

		return board, err
	}

	return nil, fmt.Errorf("no fixture for %s in %s: %w", q.Crs, s.Directory, source.UnsupportedSourceError)
}

func (s Source) candidates(q query.Board) []string {
	direction := q.Direction
	if direction == "" {
		direction = ldb.DirectionDepartures
	}

	var candidates []string
	for _, crs := range []string{q.Crs, strings.ToLower(q.Crs), strings.ToUpper(q.Crs)} {
		for _, name := range []string{fmt.Sprintf("%s-%s.json", crs, direction), crs + ".json"} {
			path := filepath.Join(s.Directory, name)
			if !util.ContainsString(candidates, path) {
				candidates = append(candidates, path)
			}
		}
	}

	return candidates
}
