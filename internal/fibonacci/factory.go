package fibonacci

import (
	"fmt"
	"sort"
	"sync"

	apperrors "github.com/agbru/drills/internal/errors"
)

// CalculatorFactory resolves calculators by short name.
type CalculatorFactory interface {
	Get(name string) (Calculator, error)
	List() []string
	GetAll() map[string]Calculator
}

// DefaultFactory is a registry of named calculators safe for concurrent use.
type DefaultFactory struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
}

// extraStrategies holds strategies registered by optional build-tagged files.
var extraStrategies = map[string]coreCalculator{}

// NewDefaultFactory returns a factory with every built-in strategy registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{calculators: map[string]Calculator{}}
	f.Register("recursive", NewCalculator(RecursiveCalculator{}))
	f.Register("iterative", NewCalculator(IterativeCalculator{}))
	f.Register("memo", NewCalculator(MemoizedCalculator{}))
	f.Register("fast", NewCalculator(FastDoubling{}))
	for name, core := range extraStrategies {
		f.Register(name, NewCalculator(core))
	}
	return f
}

// Register adds or replaces a calculator.
func (f *DefaultFactory) Register(name string, c Calculator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calculators[name] = c
}

// Get returns the calculator registered under name.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	c, ok := f.calculators[name]
	if !ok {
		return nil, apperrors.ValidationError{Field: "algo", Message: fmt.Sprintf("unknown algorithm %q", name)}
	}
	return c, nil
}

// List returns the registered names in sorted order.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.calculators))
	for name := range f.calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns a copy of the registry.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	f.mu.RLock()
	defer f.mu.RUnlock()
	all := make(map[string]Calculator, len(f.calculators))
	for name, c := range f.calculators {
		all[name] = c
	}
	return all
}
