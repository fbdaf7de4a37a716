package entity

import (
	"testing"
	"time"
)

var birth = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func testSeed() Seed {
	return NewSeed("pip", SpeciesLumen, CognitionAnalytical, TemperamentCalmObservant, FormWisp,
		Traits{Warmth: 50, Resilience: 50, Wonder: 50, Focus: 50, Expression: 50},
		HardwareBody{Board: "pi-zero", Sensors: []string{"bh1750", "dht22"}},
		birth,
	)
}

func TestNewSeed_HashIsStable(t *testing.T) {
	a := testSeed()
	b := testSeed()

	if a.Hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if a.Hash != b.Hash {
		t.Errorf("identical seeds produced different hashes: %s vs %s", a.Hash, b.Hash)
	}
}

func TestNewSeed_HardwareIsDeepCopied(t *testing.T) {
	hw := HardwareBody{Board: "pi-zero", Sensors: []string{"bh1750"}}
	seed := NewSeed("pip", SpeciesLumen, CognitionIntuitive, TemperamentBoldImpulsive, FormOrb,
		Traits{}, hw, birth)

	hw.Sensors[0] = "mutated"

	if seed.Hardware.Sensors[0] != "bh1750" {
		t.Errorf("seed hardware aliased the caller's slice: got %s", seed.Hardware.Sensors[0])
	}
}

func TestNewSeed_TraitsClamped(t *testing.T) {
	seed := NewSeed("pip", SpeciesEcho, CognitionIntuitive, TemperamentBoldImpulsive, FormOrb,
		Traits{Warmth: 150, Resilience: -10}, HardwareBody{}, birth)

	if seed.Traits.Warmth != 100 {
		t.Errorf("warmth not clamped: %d", seed.Traits.Warmth)
	}
	if seed.Traits.Resilience != 0 {
		t.Errorf("resilience not clamped: %d", seed.Traits.Resilience)
	}
}

func TestClone_SharesNoMemory(t *testing.T) {
	st := New(testSeed())
	st.Memory.Hot = append(st.Memory.Hot, MemoryEntry{ID: "a", Summary: "original"})
	st.Growth.Milestones = append(st.Growth.Milestones, Milestone{ID: "m", Label: "original"})

	c := st.Clone()
	c.Memory.Hot[0].Summary = "changed"
	c.Growth.Milestones[0].Label = "changed"
	c.Seed.Hardware.Sensors[0] = "changed"

	if st.Memory.Hot[0].Summary != "original" {
		t.Error("clone shares hot memory backing array")
	}
	if st.Growth.Milestones[0].Label != "original" {
		t.Error("clone shares milestone backing array")
	}
	if st.Seed.Hardware.Sensors[0] != "bh1750" {
		t.Error("clone shares hardware sensor slice")
	}
}

func TestGrowthDayAt(t *testing.T) {
	cases := []struct {
		now  time.Time
		want int
	}{
		{birth, 0},
		{birth.Add(23 * time.Hour), 0},
		{birth.Add(24 * time.Hour), 1},
		{time.Date(2026, 1, 4, 12, 0, 0, 0, time.UTC), 3},
		{birth.Add(-time.Hour), 0}, // clock skew clamps, never negative
	}
	for _, c := range cases {
		if got := GrowthDayAt(birth, c.now); got != c.want {
			t.Errorf("GrowthDayAt(%v) = %d, want %d", c.now, got, c.want)
		}
	}
}

func TestRoundHalf_NegativeHalvesGoUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{-0.5, 0},
		{-0.55, -1},
		{0.5, 1},
		{-2.25, -2},
		{2.5, 3},
	}
	for _, c := range cases {
		if got := RoundHalf(c.in); got != c.want {
			t.Errorf("RoundHalf(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}
