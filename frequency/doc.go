// Package frequency provides canonical frequency constants and the
// transformations between related frequencies.
//
// Three constant families are exposed: the Schumann resonance fundamental
// and its harmonics, concert pitch references, and the Solfeggio tones.
// Material resonance data is available through the [Material] enumeration,
// which maps each material to an immutable [Properties] record.
//
// # Usage
//
// Shift a pitch reference and compare tunings:
//
//	up := frequency.OctaveOf(frequency.A432, 1) // 864 Hz
//	cents := frequency.CentsDifference(frequency.A432, frequency.A440)
//
// Look up material resonance data:
//
//	q := frequency.MaterialQuartz
//	fmt.Println(q.Frequency(), q.AlphaAffinity())
package frequency
