// Display* functions write formatted output to an io.Writer. Format*
// functions return strings and perform no I/O.

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/drills/internal/format"
	"github.com/agbru/drills/internal/geometry"
	"github.com/agbru/drills/internal/ui"
)

const (
	// TruncationLimit is the digit count above which a value is abbreviated.
	TruncationLimit = 100
	// DisplayEdges is how many leading and trailing digits an abbreviated
	// value keeps.
	DisplayEdges = 25
)

// FormatValue abbreviates long decimal strings to their edges.
func FormatValue(digits string) string {
	if len(digits) <= TruncationLimit {
		return digits
	}
	return fmt.Sprintf("%s...%s (%d digits)", digits[:DisplayEdges], digits[len(digits)-DisplayEdges:], len(digits))
}

// DisplayResult prints F(n) and how long it took.
func DisplayResult(out io.Writer, n uint64, digits string, d time.Duration) {
	fmt.Fprintf(out, "F(%s%d%s) = %s%s%s\n", ui.ColorMagenta(), n, ui.ColorReset(), ui.ColorGreen(), FormatValue(digits), ui.ColorReset())
	fmt.Fprintf(out, "Computed in %s\n", format.FormatExecutionDuration(d))
}

// DisplayCelsius prints a converted temperature.
func DisplayCelsius(out io.Writer, c float64) {
	fmt.Fprintf(out, "Temperature in celsius is: %s\n", format.Degrees(c))
}

// DisplayFahrenheit prints a temperature converted back from Celsius.
func DisplayFahrenheit(out io.Writer, f float64) {
	fmt.Fprintf(out, "Temperature in fahrenheit is: %s\n", format.Degrees(f))
}

// DisplayFibonacci prints the n-th Fibonacci number.
func DisplayFibonacci(out io.Writer, n, value int64) {
	fmt.Fprintf(out, "%s Fibonacci number is: %d\n", format.Ordinal(n), value)
}

// DisplayRectangles prints the first rectangle with its area, then whether
// it can hold each of the others.
func DisplayRectangles(out io.Writer, rects []geometry.Rectangle) {
	if len(rects) == 0 {
		return
	}
	first := rects[0]
	fmt.Fprintf(out, "rect is: %s\n", first)
	fmt.Fprintf(out, "area is: %d\n", first.Area())
	for i, other := range rects[1:] {
		fmt.Fprintf(out, "Can rect1 hold rect%d? %t\n", i+2, first.CanHold(other))
	}
}
