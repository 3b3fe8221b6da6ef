package coherence

import (
	"math"
	"testing"

	"github.com/anywave/ra-constants/internal/testutil"
)

const tolerance = 1e-10

func TestNormalize(t *testing.T) {
	tests := []struct {
		name            string
		value, min, max float64
		want            float64
	}{
		{"midpoint", 50.0, 0.0, 100.0, 0.5},
		{"lower edge", 0.0, 0.0, 100.0, 0.0},
		{"upper edge", 100.0, 0.0, 100.0, 1.0},
		{"below range clamps", -10.0, 0.0, 100.0, 0.0},
		{"above range clamps", 150.0, 0.0, 100.0, 1.0},
		{"negative range", -0.5, -1.0, 0.0, 0.5},
		{"quarter", 2.5, 0.0, 10.0, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.RequireNearlyEqual(t, Normalize(tt.value, tt.min, tt.max), tt.want, tolerance)
		})
	}
}

func TestNormalizePanics(t *testing.T) {
	testutil.RequirePanics(t, "max equals min", func() { Normalize(0.5, 1.0, 1.0) })
	testutil.RequirePanics(t, "max below min", func() { Normalize(0.5, 2.0, 1.0) })
}

func TestDelta(t *testing.T) {
	testutil.RequireNearlyEqual(t, Delta(0.8, 0.5), 0.3, tolerance)
	testutil.RequireNearlyEqual(t, Delta(0.5, 0.8), -0.3, tolerance)
	testutil.RequireNearlyEqual(t, Delta(0.5, 0.5), 0, 0)
}

func TestIsStable(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		threshold float64
		want      bool
	}{
		{"steady series", []float64{0.5, 0.51, 0.49, 0.5}, DefaultStabilityThreshold, true},
		{"oscillating series", []float64{0.1, 0.9, 0.1, 0.9}, DefaultStabilityThreshold, false},
		{"identical values", []float64{0.7, 0.7, 0.7}, 0, true},
		{"empty", nil, DefaultStabilityThreshold, true},
		{"single sample", []float64{0.9}, DefaultStabilityThreshold, true},
		{"loose threshold", []float64{0.1, 0.9, 0.1, 0.9}, 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStable(tt.values, tt.threshold); got != tt.want {
				t.Errorf("IsStable(%v, %v) = %v, want %v", tt.values, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestIsStableThresholdIsInclusive(t *testing.T) {
	// Two samples 0.4 and 0.6: population std dev is exactly 0.1.
	values := []float64{0.4, 0.6}
	if !IsStable(values, 0.1) {
		t.Error("std dev equal to threshold must count as stable")
	}
	if IsStable(values, 0.09) {
		t.Error("std dev above threshold must not count as stable")
	}
}

func TestIsStableMatchesDirectStdDev(t *testing.T) {
	values := []float64{0.42, 0.48, 0.51, 0.44, 0.47, 0.5}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	std := math.Sqrt(sq / float64(len(values)))

	if !IsStable(values, std+1e-12) {
		t.Error("series must be stable just above its own std dev")
	}
	if IsStable(values, std-1e-12) {
		t.Error("series must be unstable just below its own std dev")
	}
}

func TestIsStableDefault(t *testing.T) {
	if !IsStableDefault([]float64{0.5, 0.51, 0.49, 0.5}) {
		t.Error("steady series should be stable at default threshold")
	}
	if IsStableDefault([]float64{0.1, 0.9, 0.1, 0.9}) {
		t.Error("oscillating series should not be stable at default threshold")
	}
}
