// Package coherence classifies normalized coherence measurements in [0, 1]
// into qualitative bands and assesses the stability of measurement series.
package coherence

import "fmt"

// Threshold cut-points between coherence bands, in ascending order.
const (
	// Minimum is the lowest detectable coherence (10%).
	Minimum = 0.1
	// Low marks the transition to medium coherence (30%).
	Low = 0.3
	// Medium marks the transition to high coherence (60%).
	Medium = 0.6
	// High marks the transition to peak coherence (85%).
	High = 0.85
)

// peakUpper is the exclusive upper bound of the peak band. It sits just
// above 1.0 so that the closed endpoint value 1.0 classifies as peak.
const peakUpper = 1.01

// Band is a half-open interval [Lower, Upper) with a human-readable name.
type Band struct {
	Lower float64
	Upper float64
	Name  string
}

// Contains reports whether value falls within the band.
func (b Band) Contains(value float64) bool {
	return b.Lower <= value && value < b.Upper
}

// Level is a qualitative coherence level. Levels are ordered: a higher
// numeric value means higher coherence, so levels compare with < and >.
type Level int

const (
	LevelMinimal Level = iota
	LevelLow
	LevelMedium
	LevelHigh
	LevelPeak
)

// Levels returns all levels from highest to lowest, which is also the
// order [Classify] evaluates their bands in.
func Levels() []Level {
	return []Level{LevelPeak, LevelHigh, LevelMedium, LevelLow, LevelMinimal}
}

// Band returns the interval mapped to this level. The five bands partition
// [0, 1] contiguously; the peak band extends just past 1.0.
func (l Level) Band() Band {
	switch l {
	case LevelPeak:
		return Band{Lower: High, Upper: peakUpper, Name: "peak"}
	case LevelHigh:
		return Band{Lower: Medium, Upper: High, Name: "high"}
	case LevelMedium:
		return Band{Lower: Low, Upper: Medium, Name: "medium"}
	case LevelLow:
		return Band{Lower: Minimum, Upper: Low, Name: "low"}
	case LevelMinimal:
		return Band{Lower: 0, Upper: Minimum, Name: "minimal"}
	default:
		return Band{}
	}
}

// Lower returns the inclusive lower bound of this level's band.
func (l Level) Lower() float64 {
	return l.Band().Lower
}

// Upper returns the exclusive upper bound of this level's band.
func (l Level) Upper() float64 {
	return l.Band().Upper
}

// Contains reports whether value falls within this level's band.
func (l Level) Contains(value float64) bool {
	return l.Band().Contains(value)
}

// String returns the band name of the level.
func (l Level) String() string {
	switch l {
	case LevelPeak, LevelHigh, LevelMedium, LevelLow, LevelMinimal:
		return l.Band().Name
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Classify maps a coherence value in [0, 1] to its level. Bands are
// evaluated highest-first; the first band containing the value wins.
// Panics if value is outside [0, 1].
func Classify(value float64) Level {
	if value < 0 || value > 1 {
		panic("coherence: value must be within [0, 1]")
	}

	for _, level := range Levels() {
		if level.Band().Contains(value) {
			return level
		}
	}

	// Unreachable while the peak band extends past 1.0.
	return LevelPeak
}
