package frequency

// Schumann resonance fundamental and harmonics in Hz.
const (
	SchumannFundamental = 7.83
	Schumann2nd         = 14.3
	Schumann3rd         = 20.8
	Schumann4th         = 27.3
	Schumann5th         = 33.8
)

// Concert pitch references in Hz.
const (
	// A432 is concert pitch A at 432 Hz (natural/Verdi tuning).
	A432 = 432.0
	// A440 is concert pitch A at 440 Hz (ISO 16 standard).
	A440 = 440.0
)

// Solfeggio tones in Hz.
const (
	SolfeggioUt  = 396.0 // Ut (Do) - liberation from fear and guilt
	SolfeggioRe  = 417.0 // Re - facilitating change, undoing situations
	SolfeggioMi  = 528.0 // Mi - transformation, miracles, DNA repair
	SolfeggioFa  = 639.0 // Fa - connecting relationships, harmony
	SolfeggioSol = 741.0 // Sol - awakening intuition, expression
	SolfeggioLa  = 852.0 // La - returning to spiritual order
)

// SchumannHarmonics returns the five Schumann harmonics in ascending order,
// starting with the fundamental. The returned slice is a fresh copy.
func SchumannHarmonics() []float64 {
	return []float64{
		SchumannFundamental,
		Schumann2nd,
		Schumann3rd,
		Schumann4th,
		Schumann5th,
	}
}

// SolfeggioFrequencies returns the six Solfeggio tones in scale order.
// The returned slice is a fresh copy.
func SolfeggioFrequencies() []float64 {
	return []float64{
		SolfeggioUt,
		SolfeggioRe,
		SolfeggioMi,
		SolfeggioFa,
		SolfeggioSol,
		SolfeggioLa,
	}
}
