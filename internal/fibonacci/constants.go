package fibonacci

const (
	// MaxInt64Index is the largest n for which F(n) fits in an int64.
	// F(92) = 7540113804746346429; F(93) overflows.
	MaxInt64Index = 92

	// RecursiveComparisonLimit is the largest n at which the exponential
	// recursive strategy is included when all strategies are compared.
	RecursiveComparisonLimit = 35

	// MaxLastDigits bounds the modulus 10^k used by LastDigits.
	MaxLastDigits = 10000
)
