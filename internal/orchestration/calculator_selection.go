package orchestration

import (
	"github.com/agbru/drills/internal/fibonacci"
)

// AllAlgorithms selects every registered strategy that supports the index.
const AllAlgorithms = "all"

// GetCalculatorsToRun resolves algo against the factory. With "all" it returns,
// in name order, every strategy that supports n; otherwise the one named
// strategy, or an error if the name is unknown.
func GetCalculatorsToRun(algo string, factory fibonacci.CalculatorFactory, n uint64) ([]fibonacci.Calculator, error) {
	if algo != AllAlgorithms {
		calc, err := factory.Get(algo)
		if err != nil {
			return nil, err
		}
		return []fibonacci.Calculator{calc}, nil
	}
	keys := factory.List()
	calculators := make([]fibonacci.Calculator, 0, len(keys))
	for _, k := range keys {
		if calc, err := factory.Get(k); err == nil && calc.Supports(n) {
			calculators = append(calculators, calc)
		}
	}
	return calculators, nil
}
