package servicefilter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog/log"
	"github.com/travigo/railboard/pkg/ldb"
	"github.com/travigo/railboard/pkg/util"
)

// Environment is the set of fields a filter expression can refer to.
type Environment struct {
	Operator     string `expr:"operator"`
	OperatorCode string `expr:"operatorCode"`
	Platform     string `expr:"platform"`
	Cancelled    bool   `expr:"cancelled"`
	// Names and CRS codes, so both `"York" in destinations` and
	// `"YRK" in destinations` work.
	Destinations []string `expr:"destinations"`
	Origins      []string `expr:"origins"`
	Scheduled    string   `expr:"scheduled"`
	Expected     string   `expr:"expected"`
	Coaches      int      `expr:"coaches"`
	Mode         string   `expr:"mode"`
}

// Filter keeps the services of a board for which a boolean expression
// holds, e.g. `operatorCode == "GR" && !cancelled`.
type Filter struct {
	Expression string

	program *vm.Program
}

func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return &Filter{}, nil
	}

	program, err := expr.Compile(expression, expr.Env(Environment{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling service filter %q: %w", expression, err)
	}

	return &Filter{Expression: expression, program: program}, nil
}

// Matches reports whether the service satisfies the filter. Evaluation
// errors count as no match.
func (f *Filter) Matches(service *ldb.Service) bool {
	if f == nil || f.program == nil {
		return true
	}

	result, err := expr.Run(f.program, NewEnvironment(service))
	if err != nil {
		log.Debug().Err(err).Str("expression", f.Expression).Msg("Service filter evaluation failed")
		return false
	}

	matched, _ := result.(bool)
	return matched
}

// Apply returns a copy of board holding only the matching services. The
// original board is left untouched.
func (f *Filter) Apply(board *ldb.Board) *ldb.Board {
	if board == nil || f == nil || f.program == nil {
		return board
	}

	filtered := *board
	filtered.TrainServices = f.filterServices(board.TrainServices)
	filtered.BusServices = f.filterServices(board.BusServices)
	filtered.FerryServices = f.filterServices(board.FerryServices)

	return &filtered
}

func (f *Filter) filterServices(services []*ldb.Service) []*ldb.Service {
	if services == nil {
		return nil
	}

	kept := make([]*ldb.Service, len(services))
	copy(kept, services)
	util.InPlaceFilter(&kept, f.Matches)

	return kept
}

func NewEnvironment(service *ldb.Service) Environment {
	environment := Environment{
		Operator:     service.Operator,
		OperatorCode: service.OperatorCode,
		Cancelled:    service.IsCancelled,
		Destinations: locationNames(service.Destination),
		Origins:      locationNames(service.Origin),
		Mode:         service.ServiceType.String(),
	}

	if service.Platform != nil {
		environment.Platform = *service.Platform
	}

	if scheduled := service.Std; scheduled != nil {
		environment.Scheduled = scheduled.String()
	} else if service.Sta != nil {
		environment.Scheduled = service.Sta.String()
	}

	if service.Etd != nil {
		environment.Expected = service.Etd.String()
	} else if service.Eta != nil {
		environment.Expected = service.Eta.String()
	}

	if service.Formation != nil {
		environment.Coaches = len(service.Formation.Coaches)
	}

	return environment
}

func locationNames(locations []ldb.Location) []string {
	names := make([]string, 0, len(locations)*2)
	for _, location := range locations {
		names = append(names, location.LocationName, location.Crs)
	}

	return names
}
