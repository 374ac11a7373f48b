package engine

import (
	"math"
)

// StatInterval is the open interval of exact values that round to a
// displayed statistic under round-half-away-from-zero rounding.
type StatInterval struct {
	Lower float64
	Upper float64
}

// boundaryShave nudges the upper endpoint inward. The exact half-way value
// rounds away from zero, so it belongs to the next display value's
// interval, not this one.
const boundaryShave = 1e-10

// RoundingBounds computes the interval of exact values consistent with a
// value displayed as v at d decimal places. The result is the minimal and
// maximal credible exact statistic the author could have computed before
// rounding.
func RoundingBounds(v float64, d int) StatInterval {
	inc := 0.5 * math.Pow(10, -float64(d))
	return StatInterval{
		Lower: v - inc,
		Upper: v + inc - boundaryShave,
	}
}

// CorrelationBounds is RoundingBounds clipped to the [-1, 1] domain of a
// correlation coefficient.
func CorrelationBounds(r float64, d int) StatInterval {
	iv := RoundingBounds(r, d)
	if iv.Lower < -1 {
		iv.Lower = -1
	}
	if iv.Upper > 1 {
		iv.Upper = 1
	}
	return iv
}

// RoundTo rounds x to d decimal places, half away from zero
func RoundTo(x float64, d int) float64 {
	shift := math.Pow(10, float64(d))
	return math.Round(x*shift) / shift
}
