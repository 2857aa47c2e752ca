package fibonacci

import (
	"context"
	"math/big"
)

// ProgressUpdate is a progress notification sent by a running calculator.
type ProgressUpdate struct {
	// CalculatorIndex identifies the calculator among those running together.
	CalculatorIndex int
	// Value is the completed fraction, from 0.0 to 1.0.
	Value float64
}

// Calculator is the public interface of a Fibonacci strategy.
type Calculator interface {
	// Calculate computes F(n). Progress updates, if progressChan is non-nil,
	// are tagged with calcIndex and sent without blocking.
	Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n uint64) (*big.Int, error)
	// Name returns a human-readable description of the strategy.
	Name() string
	// Supports reports whether the strategy can compute F(n) in reasonable time
	// without overflowing.
	Supports(n uint64) bool
}

// coreCalculator is the contract each strategy implements. FibCalculator
// adds the shared plumbing on top.
type coreCalculator interface {
	CalculateCore(ctx context.Context, report func(float64), n uint64) (*big.Int, error)
	Name() string
	MaxIndex() uint64
}

// FibCalculator adapts a coreCalculator to the Calculator interface.
type FibCalculator struct {
	core coreCalculator
}

// NewCalculator wraps a strategy implementation.
func NewCalculator(core coreCalculator) Calculator {
	return &FibCalculator{core: core}
}

// Name returns the strategy name.
func (c *FibCalculator) Name() string { return c.core.Name() }

// Supports reports whether n is within the strategy's index bound.
func (c *FibCalculator) Supports(n uint64) bool {
	limit := c.core.MaxIndex()
	return limit == 0 || n <= limit
}

// Calculate runs the strategy, emitting a final 1.0 progress update on success.
func (c *FibCalculator) Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n uint64) (*big.Int, error) {
	report := func(v float64) {
		if progressChan == nil {
			return
		}
		select {
		case progressChan <- ProgressUpdate{CalculatorIndex: calcIndex, Value: v}:
		default:
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report(0)
	res, err := c.core.CalculateCore(ctx, report, n)
	if err != nil {
		return nil, err
	}
	report(1)
	return res, nil
}

// runInterruptible runs fn in its own goroutine so that a blocking,
// context-unaware computation can still be abandoned when ctx ends.
func runInterruptible(ctx context.Context, fn func() (int64, error)) (*big.Int, error) {
	type result struct {
		v   int64
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{v, err}
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, r.err
		}
		return big.NewInt(r.v), nil
	}
}

// RecursiveCalculator wraps Recursive.
type RecursiveCalculator struct{}

// Name returns the strategy name.
func (RecursiveCalculator) Name() string { return "Recursive (O(φⁿ), reference)" }

// MaxIndex bounds the strategy to indices it can finish in practice.
func (RecursiveCalculator) MaxIndex() uint64 { return RecursiveComparisonLimit }

// CalculateCore computes F(n) by direct recursion.
func (RecursiveCalculator) CalculateCore(ctx context.Context, _ func(float64), n uint64) (*big.Int, error) {
	return runInterruptible(ctx, func() (int64, error) { return Recursive(clampIndex(n)) })
}

// IterativeCalculator wraps Iterative.
type IterativeCalculator struct{}

// Name returns the strategy name.
func (IterativeCalculator) Name() string { return "Iterative (O(n), int64)" }

// MaxIndex is the int64 overflow bound.
func (IterativeCalculator) MaxIndex() uint64 { return MaxInt64Index }

// CalculateCore computes F(n) with a linear loop.
func (IterativeCalculator) CalculateCore(ctx context.Context, _ func(float64), n uint64) (*big.Int, error) {
	return runInterruptible(ctx, func() (int64, error) { return Iterative(clampIndex(n)) })
}

// MemoizedCalculator wraps Memoized.
type MemoizedCalculator struct{}

// Name returns the strategy name.
func (MemoizedCalculator) Name() string { return "Memoized (O(n), int64)" }

// MaxIndex is the int64 overflow bound.
func (MemoizedCalculator) MaxIndex() uint64 { return MaxInt64Index }

// CalculateCore computes F(n) top-down with a memo table.
func (MemoizedCalculator) CalculateCore(ctx context.Context, _ func(float64), n uint64) (*big.Int, error) {
	return runInterruptible(ctx, func() (int64, error) { return Memoized(clampIndex(n)) })
}

// clampIndex converts n to int64, saturating so that ValidateIndex reports
// overflow instead of the value wrapping negative.
func clampIndex(n uint64) int64 {
	if n > MaxInt64Index {
		return MaxInt64Index + 1
	}
	return int64(n)
}
