// Package phi provides the golden ratio, related irrationals, and a few
// transcendental constants, together with golden-ratio arithmetic and
// detection helpers.
package phi

import "math"

// Phi is the golden ratio (φ) = (1 + √5) / 2.
const Phi = 1.618033988749895

// Inverse is 1/φ = φ - 1.
const Inverse = 0.6180339887498949

// Squared is φ² = φ + 1.
const Squared = 2.618033988749895

// Square roots of small integers.
const (
	Sqrt2 = math.Sqrt2
	Sqrt3 = 1.7320508075688772
	Sqrt5 = 2.23606797749979
)

// Transcendentals.
const (
	Pi  = math.Pi
	Tau = 2 * math.Pi
	E   = math.E
)

// DefaultRatioTolerance is the tolerance used by [IsRatioDefault].
const DefaultRatioTolerance = 0.01

// Power returns φ raised to the integer power n. The powers 0, 1, and -1
// are special-cased to return the exact constant.
func Power(n int) float64 {
	switch {
	case n == 0:
		return 1
	case n == 1:
		return Phi
	case n == -1:
		return Inverse
	case n > 0:
		return math.Pow(Phi, float64(n))
	default:
		return math.Pow(Inverse, float64(-n))
	}
}

// FibonacciRatio returns the ratio F(n+1)/F(n) of consecutive Fibonacci
// numbers, which converges to φ as n grows. Additions saturate at the
// uint64 maximum instead of wrapping, so large n stay well-defined.
// Panics if n < 1.
func FibonacciRatio(n int) float64 {
	if n < 1 {
		panic("phi: fibonacci index must be >= 1")
	}

	var prev, curr uint64 = 1, 1
	for i := 1; i < n; i++ {
		next := satAdd(prev, curr)
		prev = curr
		curr = next
	}

	return float64(curr) / float64(prev)
}

// satAdd returns a+b, clamped to the uint64 maximum on overflow.
func satAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}

	return a + b
}

// IsRatio reports whether a and b are in golden ratio within the given
// tolerance. Returns false when either value is non-positive.
func IsRatio(a, b, tolerance float64) bool {
	if a <= 0 || b <= 0 {
		return false
	}

	ratio := math.Max(a, b) / math.Min(a, b)

	return math.Abs(ratio-Phi) < tolerance
}

// IsRatioDefault reports whether a and b are in golden ratio within
// [DefaultRatioTolerance].
func IsRatioDefault(a, b float64) bool {
	return IsRatio(a, b, DefaultRatioTolerance)
}
