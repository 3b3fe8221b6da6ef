package frequency

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// OctaveOf returns the frequency shifted by the given number of octaves.
// Positive values shift up, negative values shift down, zero is identity.
func OctaveOf(frequency float64, octaves int) float64 {
	return frequency * math.Pow(2, float64(octaves))
}

// HarmonicOf returns the nth harmonic of a fundamental frequency.
// Harmonic 1 is the fundamental itself, 2 the first overtone, and so on.
// Panics if harmonic < 1.
func HarmonicOf(frequency float64, harmonic int) float64 {
	if harmonic < 1 {
		panic("frequency: harmonic must be >= 1")
	}

	return frequency * float64(harmonic)
}

// HarmonicSeries returns the first count harmonics of a fundamental,
// starting with the fundamental itself. Panics if count < 1.
func HarmonicSeries(fundamental float64, count int) []float64 {
	if count < 1 {
		panic("frequency: harmonic count must be >= 1")
	}

	ramp := make([]float64, count)
	for i := range ramp {
		ramp[i] = float64(i + 1)
	}

	out := make([]float64, count)
	vecmath.ScaleBlock(out, ramp, fundamental)

	return out
}

// CentsDifference returns the interval between two frequencies in cents
// (100 cents = 1 semitone, 1200 cents = 1 octave). A positive result means
// freq2 is higher than freq1. Non-positive inputs yield a non-finite result.
func CentsDifference(freq1, freq2 float64) float64 {
	return 1200 * math.Log2(freq2/freq1)
}
