package global

import (
	"github.com/travigo/railboard/pkg/dataaggregator"
	"github.com/travigo/railboard/pkg/dataaggregator/source/huxley"
	"github.com/travigo/railboard/pkg/dataaggregator/source/localfixture"
)

// Setup registers the board sources. With local set, boards are read from
// fixture files instead of the Huxley API.
func Setup(local bool) {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}

	if local {
		dataaggregator.GlobalAggregator.RegisterSource(localfixture.New())
		return
	}

	dataaggregator.GlobalAggregator.RegisterSource(huxley.New())
}
