package ldb

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed operators.yaml
var operatorCodesYAML []byte

var (
	operatorCodes     map[string]string
	operatorCodesOnce sync.Once
)

// LoadOperatorCodes parses the embedded operator code table. It runs once per
// process and the table is read-only afterwards.
func LoadOperatorCodes() {
	operatorCodesOnce.Do(func() {
		codes := map[string]string{}

		if err := yaml.Unmarshal(operatorCodesYAML, &codes); err != nil {
			log.Error().Err(err).Msg("Failed to parse operator code table")
		}

		operatorCodes = codes

		log.Debug().Int("length", len(operatorCodes)).Msg("Loaded operator codes")
	})
}

// OperatorShortName returns the friendly name for an operator code, falling
// back to "[CODE] Operator" for codes not in the table.
func OperatorShortName(code string, operator string) string {
	LoadOperatorCodes()

	if shortName, ok := operatorCodes[code]; ok {
		return shortName
	}

	return fmt.Sprintf("[%s] %s", code, operator)
}
