// Package numeric holds the scalar conversions of the interactive exercise.
package numeric

// FahrenheitToCelsius converts a Fahrenheit temperature to Celsius using
// C = 5(F-32)/9. Non-finite inputs follow IEEE-754 semantics.
func FahrenheitToCelsius(f float64) float64 {
	return (5 * (f - 32)) / 9
}

// CelsiusToFahrenheit is the inverse of FahrenheitToCelsius.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}
