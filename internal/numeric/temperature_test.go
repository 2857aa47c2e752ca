package numeric

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const tolerance = 1e-9

func TestFahrenheitToCelsius_KnownValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		f    float64
		want float64
	}{
		{32, 0},
		{212, 100},
		{-40, -40},
		{100, 37.77777777777778},
		{0, -17.77777777777778},
	}
	for _, tt := range tests {
		if got := FahrenheitToCelsius(tt.f); math.Abs(got-tt.want) > tolerance {
			t.Errorf("FahrenheitToCelsius(%v) = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestFahrenheitToCelsius_NonFinite(t *testing.T) {
	t.Parallel()
	if got := FahrenheitToCelsius(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("+Inf should map to +Inf, got %v", got)
	}
	if got := FahrenheitToCelsius(math.Inf(-1)); !math.IsInf(got, -1) {
		t.Errorf("-Inf should map to -Inf, got %v", got)
	}
	if got := FahrenheitToCelsius(math.NaN()); !math.IsNaN(got) {
		t.Errorf("NaN should map to NaN, got %v", got)
	}
	if got := FahrenheitToCelsius(math.MaxFloat64); !math.IsInf(got, 1) {
		t.Errorf("MaxFloat64 overflows 5*f and should give +Inf, got %v", got)
	}
}

func TestConversion_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("convert(f) == 5*(f-32)/9", prop.ForAll(
		func(f float64) bool {
			return FahrenheitToCelsius(f) == (5*(f-32))/9
		},
		gen.Float64Range(-1e12, 1e12),
	))

	properties.Property("round trip within tolerance", prop.ForAll(
		func(f float64) bool {
			back := CelsiusToFahrenheit(FahrenheitToCelsius(f))
			return math.Abs(back-f) <= 1e-9*math.Max(1, math.Abs(f))
		},
		gen.Float64Range(-1e6, 1e6),
	))

	properties.Property("monotonic", prop.ForAll(
		func(a, b float64) bool {
			if a > b {
				a, b = b, a
			}
			return FahrenheitToCelsius(a) <= FahrenheitToCelsius(b)
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
	))

	properties.TestingRun(t)
}
