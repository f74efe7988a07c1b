package dataaggregator

import (
	"context"

	"github.com/travigo/railboard/pkg/dataaggregator/query"
	"github.com/travigo/railboard/pkg/ldb"
)

type DataSource interface {
	GetName() string
	Lookup(ctx context.Context, q query.Board) (*ldb.Board, error)
}
