package fibonacci

import (
	"fmt"

	apperrors "github.com/agbru/drills/internal/errors"
)

// ValidateIndex checks that n is a usable Fibonacci index for the int64
// strategies.
func ValidateIndex(n int64) error {
	if n < 0 {
		return apperrors.ValidationError{Field: "n", Message: fmt.Sprintf("must be non-negative, got %d", n)}
	}
	if n > MaxInt64Index {
		return apperrors.OverflowError{Operation: fmt.Sprintf("F(%d)", n), Bits: 64}
	}
	return nil
}

// Recursive computes F(n) by the defining recurrence with no memoization.
// Its running time grows exponentially with n.
func Recursive(n int64) (int64, error) {
	if err := ValidateIndex(n); err != nil {
		return 0, err
	}
	return recurse(n), nil
}

func recurse(n int64) int64 {
	if n <= 1 {
		return n
	}
	return recurse(n-1) + recurse(n-2)
}

// Iterative computes F(n) in linear time and constant space.
func Iterative(n int64) (int64, error) {
	if err := ValidateIndex(n); err != nil {
		return 0, err
	}
	var a, b int64 = 0, 1
	for i := int64(0); i < n; i++ {
		a, b = b, a+b
	}
	return a, nil
}

// Memoized computes F(n) top-down, caching every intermediate term.
func Memoized(n int64) (int64, error) {
	if err := ValidateIndex(n); err != nil {
		return 0, err
	}
	memo := make([]int64, n+1)
	for i := range memo {
		memo[i] = -1
	}
	var f func(k int64) int64
	f = func(k int64) int64 {
		if k <= 1 {
			return k
		}
		if memo[k] >= 0 {
			return memo[k]
		}
		memo[k] = f(k-1) + f(k-2)
		return memo[k]
	}
	return f(n), nil
}
