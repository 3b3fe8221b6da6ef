package coherence

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// DefaultStabilityThreshold is the standard deviation threshold used by
// [IsStableDefault].
const DefaultStabilityThreshold = 0.05

// Normalize linearly rescales value from [minVal, maxVal] to [0, 1].
// Inputs outside the source range saturate at 0 or 1 rather than
// extrapolating. Panics if maxVal <= minVal.
func Normalize(value, minVal, maxVal float64) float64 {
	if maxVal <= minVal {
		panic("coherence: max must be greater than min")
	}

	normalized := (value - minVal) / (maxVal - minVal)

	return math.Min(math.Max(normalized, 0), 1)
}

// Delta returns the change between two coherence measurements.
// A positive result means coherence is increasing.
func Delta(current, previous float64) float64 {
	return current - previous
}

// IsStable reports whether the population standard deviation of a series
// of coherence values stays at or below the given threshold. Series with
// fewer than two samples are trivially stable.
func IsStable(values []float64, threshold float64) bool {
	if len(values) < 2 {
		return true
	}

	n := float64(len(values))

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / n

	dev := make([]float64, len(values))
	for i, v := range values {
		dev[i] = v - mean
	}
	vecmath.MulBlockInPlace(dev, dev)

	var sumSq float64
	for _, d := range dev {
		sumSq += d
	}

	return math.Sqrt(sumSq/n) <= threshold
}

// IsStableDefault reports whether the series is stable within
// [DefaultStabilityThreshold].
func IsStableDefault(values []float64) bool {
	return IsStable(values, DefaultStabilityThreshold)
}
