// Package format renders a finished conversion as a printable equation.
package format

import (
	"fmt"
	"math"

	"github.com/Utility-Gods/tempcon/internal/temperature"
)

// Equation renders a conversion as an equation string with a leading line
// break, e.g. "\n(32°F - 32) * (5/9) = 0°C". The template is selected by
// the original unit.
//
// Number rendering: when the converted value is a whole number both sides
// render as integers, otherwise both render with one decimal place. The
// converted value alone selects the branch — a fractional original such
// as 98.6°F prints rounded to 99 when its conversion lands on an integer.
func Equation(originalValue float64, originalUnit temperature.Unit, converted temperature.Temperature) string {
	whole := converted.Value == math.Trunc(converted.Value)

	if originalUnit == temperature.Fahrenheit {
		if whole {
			return fmt.Sprintf("\n(%.0f°%s - 32) * (5/9) = %.0f°%s",
				originalValue, originalUnit, converted.Value, converted.Unit)
		}
		return fmt.Sprintf("\n(%.1f°%s - 32) * (5/9) = %.1f°%s",
			originalValue, originalUnit, converted.Value, converted.Unit)
	}

	if whole {
		return fmt.Sprintf("\n(%.0f°%s * 9/5) + 32 = %.0f°%s",
			originalValue, originalUnit, converted.Value, converted.Unit)
	}
	return fmt.Sprintf("\n(%.1f°%s * 9/5) + 32 = %.1f°%s",
		originalValue, originalUnit, converted.Value, converted.Unit)
}
