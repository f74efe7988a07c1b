package servicefilter

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/railboard/pkg/ldb"
)

func loadBoard(t *testing.T) *ldb.Board {
	t.Helper()

	payload, err := os.ReadFile("testdata/departures_kgx.json")
	require.NoError(t, err)

	board, err := ldb.ParseBoard(payload)
	require.NoError(t, err)

	return board
}

func operatorCodes(services []*ldb.Service) []string {
	codes := []string{}
	for _, service := range services {
		codes = append(codes, service.OperatorCode)
	}

	return codes
}

func TestApply(t *testing.T) {
	tests := []struct {
		expression string
		trains     []string
		buses      int
	}{
		{`operatorCode == "GN"`, []string{"GN"}, 1},
		{`!cancelled`, []string{"GR", "GN"}, 1},
		{`"EDB" in destinations`, []string{"GR"}, 0},
		{`"Kings Lynn" in destinations`, []string{"GN"}, 0},
		{`platform == "4"`, []string{"GR"}, 0},
		{`coaches >= 1 && mode == "train"`, []string{"GR", "ZZ"}, 0},
		{`expected == "On time" || scheduled >= "10:10"`, []string{"GR", "ZZ"}, 1},
		{`mode == "bus"`, []string{}, 1},
	}

	for _, test := range tests {
		t.Run(test.expression, func(t *testing.T) {
			board := loadBoard(t)

			filter, err := Compile(test.expression)
			require.NoError(t, err)

			filtered := filter.Apply(board)
			assert.Equal(t, test.trains, operatorCodes(filtered.TrainServices))
			assert.Len(t, filtered.BusServices, test.buses)
		})
	}
}

func TestApplyLeavesBoardUntouched(t *testing.T) {
	board := loadBoard(t)
	before := operatorCodes(board.TrainServices)

	filter, err := Compile(`operatorCode == "ZZ"`)
	require.NoError(t, err)

	filtered := filter.Apply(board)
	assert.Equal(t, []string{"ZZ"}, operatorCodes(filtered.TrainServices))
	assert.Equal(t, before, operatorCodes(board.TrainServices))
	assert.Equal(t, board.GeneratedAt, filtered.GeneratedAt)
}

func TestEmptyExpression(t *testing.T) {
	board := loadBoard(t)

	filter, err := Compile("   ")
	require.NoError(t, err)
	assert.Same(t, board, filter.Apply(board))

	var nilFilter *Filter
	assert.Same(t, board, nilFilter.Apply(board))
}

func TestCompileErrors(t *testing.T) {
	for _, expression := range []string{`operatorCode ==`, `unknownField == 1`, `operatorCode`} {
		_, err := Compile(expression)
		assert.Error(t, err, expression)
	}
}
