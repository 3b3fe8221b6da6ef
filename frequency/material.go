package frequency

import (
	"fmt"
	"strings"
)

// Properties holds the resonance data of a material.
type Properties struct {
	// Frequency is the base resonance frequency in Hz.
	Frequency float64
	// AlphaAffinity is the coherence affinity in [0, 1].
	AlphaAffinity float64
	// Conductivity is the electrical/energetic conductivity in [0, 1].
	Conductivity float64
}

// Material identifies a resonant material.
type Material int

const (
	MaterialQuartz Material = iota
	MaterialGold
	MaterialSilver
	MaterialCopper
	MaterialIron
	MaterialObsidian
	MaterialGranite
	MaterialLimestone
)

// Materials returns all known materials in declaration order.
func Materials() []Material {
	return []Material{
		MaterialQuartz,
		MaterialGold,
		MaterialSilver,
		MaterialCopper,
		MaterialIron,
		MaterialObsidian,
		MaterialGranite,
		MaterialLimestone,
	}
}

// Properties returns the resonance data for the material.
// Unknown values return a zero Properties.
func (m Material) Properties() Properties {
	switch m {
	case MaterialQuartz:
		return Properties{Frequency: 32768.0, AlphaAffinity: 0.9, Conductivity: 0.3}
	case MaterialGold:
		return Properties{Frequency: 24576.0, AlphaAffinity: 0.95, Conductivity: 0.95}
	case MaterialSilver:
		return Properties{Frequency: 20480.0, AlphaAffinity: 0.85, Conductivity: 0.9}
	case MaterialCopper:
		return Properties{Frequency: 16384.0, AlphaAffinity: 0.8, Conductivity: 0.85}
	case MaterialIron:
		return Properties{Frequency: 12288.0, AlphaAffinity: 0.6, Conductivity: 0.5}
	case MaterialObsidian:
		return Properties{Frequency: 8192.0, AlphaAffinity: 0.7, Conductivity: 0.1}
	case MaterialGranite:
		return Properties{Frequency: 4096.0, AlphaAffinity: 0.5, Conductivity: 0.05}
	case MaterialLimestone:
		return Properties{Frequency: 2048.0, AlphaAffinity: 0.4, Conductivity: 0.02}
	default:
		return Properties{}
	}
}

// Frequency returns the base resonance frequency in Hz.
func (m Material) Frequency() float64 {
	return m.Properties().Frequency
}

// AlphaAffinity returns the coherence affinity in [0, 1].
func (m Material) AlphaAffinity() float64 {
	return m.Properties().AlphaAffinity
}

// Conductivity returns the conductivity factor in [0, 1].
func (m Material) Conductivity() float64 {
	return m.Properties().Conductivity
}

// String returns the lowercase material name.
func (m Material) String() string {
	switch m {
	case MaterialQuartz:
		return "quartz"
	case MaterialGold:
		return "gold"
	case MaterialSilver:
		return "silver"
	case MaterialCopper:
		return "copper"
	case MaterialIron:
		return "iron"
	case MaterialObsidian:
		return "obsidian"
	case MaterialGranite:
		return "granite"
	case MaterialLimestone:
		return "limestone"
	default:
		return fmt.Sprintf("Material(%d)", int(m))
	}
}

// MaterialFromName returns the material with the given name.
// Matching is case-insensitive.
func MaterialFromName(name string) (Material, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, m := range Materials() {
		if m.String() == want {
			return m, nil
		}
	}

	return 0, fmt.Errorf("unknown material: %q", name)
}
