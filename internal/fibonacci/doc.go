// Package fibonacci computes Fibonacci numbers with several interchangeable
// strategies, from the direct exponential recursion that defines the
// sequence to O(log n) fast doubling on arbitrary-precision integers.
//
// The int64 functions (Recursive, Iterative, Memoized) reject negative
// indices with a ValidationError and indices above MaxInt64Index with an
// OverflowError. Calculators wrap strategies behind a common interface so
// they can be selected by name and compared against each other.
package fibonacci
