// ABOUTME: Rounding and number-to-text conventions for ROI figures
// ABOUTME: Half-up rounding, shortest decimal text, and en-US digit grouping

package numeric

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// maxFractionDigits is the precision kept by Grouped
const maxFractionDigits = 3

// Round rounds to the nearest integer with halves going toward +Inf,
// so Round(2.5) is 3 and Round(-2.5) is -2. Values in [-0.5, 0) round to
// negative zero. NaN and ±Inf pass through.
func Round(x float64) float64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	if f == 0 && math.Signbit(x) {
		return math.Copysign(0, -1)
	}
	return f
}

// String renders x in its shortest round-trip decimal form.
// Magnitudes of 1e21 and above, or below 1e-6, switch to exponent form (1e+21, 1e-7).
func String(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}

	abs := math.Abs(x)
	if abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	s := strconv.FormatFloat(x, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

// Grouped renders x with comma thousands separators and at most three
// fraction digits, trailing zeros dropped. Non-finite values render as NaN, ∞ or -∞.
func Grouped(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "∞"
	case math.IsInf(x, -1):
		return "-∞"
	}

	// Round the shortest decimal form of x, half away from zero, rather
	// than the binary value: 8.0345 becomes 8.035.
	rounded := decimal.NewFromFloat(x).Round(maxFractionDigits)
	if rounded.IsZero() && math.Signbit(x) {
		return "-0"
	}
	return humanize.Commaf(rounded.InexactFloat64())
}
