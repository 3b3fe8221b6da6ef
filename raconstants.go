// Package raconstants aggregates the public surface of the frequency, phi,
// and coherence subpackages under a single import, together with the library
// version string.
//
// The subpackages remain the primary API; this package exists for hosts that
// want one import for the whole constants table:
//
//	import ra "github.com/anywave/ra-constants"
//
//	level := ra.Classify(0.9)
//	cents := ra.CentsDifference(ra.A432, ra.A440)
package raconstants

import (
	"github.com/anywave/ra-constants/coherence"
	"github.com/anywave/ra-constants/frequency"
	"github.com/anywave/ra-constants/phi"
)

// Schumann resonance harmonics in Hz.
const (
	SchumannFundamental = frequency.SchumannFundamental
	Schumann2nd         = frequency.Schumann2nd
	Schumann3rd         = frequency.Schumann3rd
	Schumann4th         = frequency.Schumann4th
	Schumann5th         = frequency.Schumann5th
)

// Concert pitch references in Hz.
const (
	A432 = frequency.A432
	A440 = frequency.A440
)

// Solfeggio tones in Hz.
const (
	SolfeggioUt  = frequency.SolfeggioUt
	SolfeggioRe  = frequency.SolfeggioRe
	SolfeggioMi  = frequency.SolfeggioMi
	SolfeggioFa  = frequency.SolfeggioFa
	SolfeggioSol = frequency.SolfeggioSol
	SolfeggioLa  = frequency.SolfeggioLa
)

// Mathematical constants.
const (
	Phi        = phi.Phi
	PhiInverse = phi.Inverse
	PhiSquared = phi.Squared
	Sqrt2      = phi.Sqrt2
	Sqrt3      = phi.Sqrt3
	Sqrt5      = phi.Sqrt5
	Pi         = phi.Pi
	Tau        = phi.Tau
	E          = phi.E
)

// Coherence thresholds.
const (
	MinimumCoherence = coherence.Minimum
	LowCoherence     = coherence.Low
	MediumCoherence  = coherence.Medium
	HighCoherence    = coherence.High
)

// Material resonance types.
type (
	Material   = frequency.Material
	Properties = frequency.Properties
)

const (
	MaterialQuartz    = frequency.MaterialQuartz
	MaterialGold      = frequency.MaterialGold
	MaterialSilver    = frequency.MaterialSilver
	MaterialCopper    = frequency.MaterialCopper
	MaterialIron      = frequency.MaterialIron
	MaterialObsidian  = frequency.MaterialObsidian
	MaterialGranite   = frequency.MaterialGranite
	MaterialLimestone = frequency.MaterialLimestone
)

// Coherence classification types.
type (
	CoherenceBand  = coherence.Band
	CoherenceLevel = coherence.Level
)

const (
	LevelMinimal = coherence.LevelMinimal
	LevelLow     = coherence.LevelLow
	LevelMedium  = coherence.LevelMedium
	LevelHigh    = coherence.LevelHigh
	LevelPeak    = coherence.LevelPeak
)

// SchumannHarmonics returns the five Schumann harmonics in ascending order.
func SchumannHarmonics() []float64 { return frequency.SchumannHarmonics() }

// SolfeggioFrequencies returns the six Solfeggio tones in scale order.
func SolfeggioFrequencies() []float64 { return frequency.SolfeggioFrequencies() }

// OctaveOf returns the frequency shifted by the given number of octaves.
func OctaveOf(freq float64, octaves int) float64 { return frequency.OctaveOf(freq, octaves) }

// HarmonicOf returns the nth harmonic of a fundamental frequency.
func HarmonicOf(freq float64, harmonic int) float64 { return frequency.HarmonicOf(freq, harmonic) }

// CentsDifference returns the interval between two frequencies in cents.
func CentsDifference(freq1, freq2 float64) float64 { return frequency.CentsDifference(freq1, freq2) }

// PhiPower returns φ raised to the integer power n.
func PhiPower(n int) float64 { return phi.Power(n) }

// FibonacciRatio returns the ratio of consecutive Fibonacci numbers F(n+1)/F(n).
func FibonacciRatio(n int) float64 { return phi.FibonacciRatio(n) }

// IsPhiRatio reports whether a and b are in golden ratio within tolerance.
func IsPhiRatio(a, b, tolerance float64) bool { return phi.IsRatio(a, b, tolerance) }

// IsPhiRatioDefault reports whether a and b are in golden ratio within the
// default tolerance.
func IsPhiRatioDefault(a, b float64) bool { return phi.IsRatioDefault(a, b) }

// Classify maps a coherence value in [0, 1] to its level.
func Classify(value float64) CoherenceLevel { return coherence.Classify(value) }

// NormalizeCoherence linearly rescales value from [minVal, maxVal] to [0, 1].
func NormalizeCoherence(value, minVal, maxVal float64) float64 {
	return coherence.Normalize(value, minVal, maxVal)
}

// CoherenceDelta returns the change between two coherence measurements.
func CoherenceDelta(current, previous float64) float64 {
	return coherence.Delta(current, previous)
}

// IsCoherenceStable reports whether the series' population standard deviation
// stays at or below threshold.
func IsCoherenceStable(values []float64, threshold float64) bool {
	return coherence.IsStable(values, threshold)
}

// IsCoherenceStableDefault reports whether the series is stable within the
// default threshold.
func IsCoherenceStableDefault(values []float64) bool {
	return coherence.IsStableDefault(values)
}
