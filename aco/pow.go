// Package aco - swappable power strategies for the desirability rule.
//
// The decision rule evaluates a^b O(ants×steps×4) times per iteration, and
// math.Pow dominates that profile. Because the results only weight a
// proportional random draw, consistent ranking matters far more than absolute
// accuracy, so the default is a bit-layout approximation.
package aco

import "math"

// PowFunc computes an approximation of a^b for a > 0.
// Implementations must be monotone in the same sense as math.Pow over the
// engine's input range (larger trail / cheaper edge ⇒ larger output); exact
// values are not required.
type PowFunc func(a, b float64) float64

// approxPowBias is the magic constant of the exponent-trick approximation:
// the high 32 bits of the IEEE-754 encoding of 1.0, minus a tuning offset
// that minimizes average relative error.
const approxPowBias = 1072632447

// ApproxPow approximates a^b for a > 0 by scaling the high word of the
// IEEE-754 encoding of a, exploiting the rough linearity between a double's
// bit pattern and its logarithm.
//
// Accuracy contract: relative error up to ~25% in extreme ranges, typically
// far lower; monotone in both arguments over positive inputs. More than an
// order of magnitude faster than math.Pow, which is the entire point.
//
// Contract: a must be > 0 and finite; b of moderate magnitude. Out-of-range
// inputs yield garbage, not panics.
//
// Complexity: O(1), branch-free.
func ApproxPow(a, b float64) float64 {
	hi := int32(math.Float64bits(a) >> 32)
	y := int32(b*(float64(hi)-approxPowBias) + approxPowBias)

	// Sign-extend before shifting so negative intermediate words round-trip
	// the same way the reference arithmetic does.
	return math.Float64frombits(uint64(int64(y)) << 32)
}

// MathPow is the exact strategy: a thin wrapper over math.Pow for callers
// that prefer precision over speed.
//
// Complexity: O(1).
func MathPow(a, b float64) float64 {
	return math.Pow(a, b)
}
