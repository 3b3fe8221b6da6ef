package coherence

import (
	"testing"

	"github.com/anywave/ra-constants/internal/testutil"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  Level
	}{
		{"zero", 0.0, LevelMinimal},
		{"just below minimum", 0.09, LevelMinimal},
		{"minimum boundary", 0.1, LevelLow},
		{"low band", 0.2, LevelLow},
		{"low boundary", 0.3, LevelMedium},
		{"medium band", 0.4, LevelMedium},
		{"medium boundary", 0.6, LevelHigh},
		{"high band", 0.7, LevelHigh},
		{"high boundary", 0.85, LevelPeak},
		{"peak band", 0.9, LevelPeak},
		{"exactly one", 1.0, LevelPeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.value); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestClassifyPanics(t *testing.T) {
	testutil.RequirePanics(t, "below zero", func() { Classify(-0.01) })
	testutil.RequirePanics(t, "above one", func() { Classify(1.01) })
}

func TestBandsPartitionUnitInterval(t *testing.T) {
	levels := Levels()

	// Highest-first: each band's lower bound is the next band's upper bound.
	for i := 0; i < len(levels)-1; i++ {
		upper := levels[i]
		lower := levels[i+1]
		if upper.Lower() != lower.Upper() {
			t.Errorf("gap between %s and %s: %v != %v",
				lower, upper, lower.Upper(), upper.Lower())
		}
	}

	bottom := levels[len(levels)-1]
	if bottom.Lower() != 0 {
		t.Errorf("bottom band starts at %v, want 0", bottom.Lower())
	}

	top := levels[0]
	if top.Upper() <= 1.0 {
		t.Errorf("top band upper bound %v must exceed 1.0", top.Upper())
	}
}

func TestBandBoundsOrdered(t *testing.T) {
	for _, l := range Levels() {
		b := l.Band()
		if b.Lower >= b.Upper {
			t.Errorf("%s: lower %v >= upper %v", l, b.Lower, b.Upper)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	if !(LevelMinimal < LevelLow && LevelLow < LevelMedium &&
		LevelMedium < LevelHigh && LevelHigh < LevelPeak) {
		t.Error("levels do not order minimal < low < medium < high < peak")
	}
}

func TestLevelContains(t *testing.T) {
	if !LevelPeak.Contains(1.0) {
		t.Error("peak must contain 1.0")
	}
	if LevelHigh.Contains(0.85) {
		t.Error("high upper bound is exclusive")
	}
	if !LevelHigh.Contains(0.6) {
		t.Error("high lower bound is inclusive")
	}
}

func TestBandContains(t *testing.T) {
	b := Band{Lower: 0.2, Upper: 0.4, Name: "test"}

	if !b.Contains(0.2) {
		t.Error("lower bound must be inclusive")
	}
	if b.Contains(0.4) {
		t.Error("upper bound must be exclusive")
	}
	if b.Contains(0.5) || b.Contains(0.1) {
		t.Error("values outside the interval must not match")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelPeak, "peak"},
		{LevelHigh, "high"},
		{LevelMedium, "medium"},
		{LevelLow, "low"},
		{LevelMinimal, "minimal"},
		{Level(42), "Level(42)"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestThresholdsOrdered(t *testing.T) {
	if !(Minimum < Low && Low < Medium && Medium < High && High < 1.0) {
		t.Error("threshold constants are not strictly ascending below 1.0")
	}
}
