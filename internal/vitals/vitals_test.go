package vitals

import (
	"testing"
	"time"

	"github.com/talgya/ember/internal/entity"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestNaturalDecay_FixedPoints(t *testing.T) {
	// Per-channel integer rounding parks the channels at 60/66/75 instead
	// of the 50 baseline. The attractors are load-bearing.
	status := entity.Status{Mood: 95, Energy: 95, Curiosity: 95, Comfort: 95}

	for i := 0; i < 200; i++ {
		status = Apply(status, NaturalDecay(status, 120))
	}

	if status.Mood != 60 {
		t.Errorf("mood fixed point = %d, want 60", status.Mood)
	}
	if status.Energy != 66 {
		t.Errorf("energy fixed point = %d, want 66", status.Energy)
	}
	if status.Curiosity != 75 {
		t.Errorf("curiosity fixed point = %d, want 75", status.Curiosity)
	}
	if status.Comfort != 0 {
		t.Errorf("comfort should decay to 0, got %d", status.Comfort)
	}
}

func TestNaturalDecay_RateClampsAtTwoHours(t *testing.T) {
	status := entity.Status{Mood: 90, Energy: 90, Curiosity: 90, Comfort: 90}

	atCap := NaturalDecay(status, 120)
	beyond := NaturalDecay(status, 100000)

	if atCap != beyond {
		t.Errorf("decay should saturate at 120 minutes: %+v vs %+v", atCap, beyond)
	}
}

func TestNaturalDecay_ZeroElapsedIsNoop(t *testing.T) {
	status := entity.Status{Mood: 90, Energy: 10, Curiosity: 50, Comfort: 80}
	d := NaturalDecay(status, 0)
	if d != (Delta{}) {
		t.Errorf("expected zero delta, got %+v", d)
	}
}

func TestApply_ClampsToBounds(t *testing.T) {
	status := entity.Status{Mood: 98, Energy: 1, Curiosity: 50, Comfort: 50}
	status = Apply(status, Delta{Mood: 10, Energy: -10, Curiosity: 200, Comfort: -200})

	if status.Mood != 100 || status.Energy != 0 || status.Curiosity != 100 || status.Comfort != 0 {
		t.Errorf("clamping failed: %+v", status)
	}
}

func TestInteractionEffect_UserInitiatedBaseline(t *testing.T) {
	status := entity.Status{Mood: 50, Energy: 50, Curiosity: 50, Comfort: 50,
		LastInteraction: now.Add(-10 * time.Minute)}
	ctx := Context{UserInitiated: true, MessageLength: 5, Now: now}

	d := InteractionEffect(status, ctx, entity.TemperamentRestlessExploratory)

	if d.Mood != 3 {
		t.Errorf("mood delta = %d, want 3", d.Mood)
	}
	// comfort 5 × 0.8 restless multiplier = 4
	if d.Comfort != 4 {
		t.Errorf("comfort delta = %d, want 4", d.Comfort)
	}
	if d.Energy != -1 {
		t.Errorf("energy delta = %d, want -1", d.Energy)
	}
	if d.Curiosity != 0 {
		t.Errorf("curiosity delta = %d, want 0 for a short message with no gap", d.Curiosity)
	}
}

func TestInteractionEffect_MessageLengthTiers(t *testing.T) {
	status := entity.Status{LastInteraction: now.Add(-10 * time.Minute)}
	cases := []struct {
		length int
		want   int
	}{
		{10, 0},
		{11, 2},
		{50, 2},
		{51, 4},
	}
	for _, c := range cases {
		d := InteractionEffect(status, Context{MessageLength: c.length, Now: now}, entity.TemperamentBoldImpulsive)
		if d.Curiosity != c.want {
			t.Errorf("length %d: curiosity = %d, want %d", c.length, d.Curiosity, c.want)
		}
	}
}

func TestInteractionEffect_AbsenceBuckets(t *testing.T) {
	long := entity.Status{LastInteraction: now.Add(-7 * time.Hour)} // > 360 min
	mid := entity.Status{LastInteraction: now.Add(-2 * time.Hour)}  // 61–360
	ctx := Context{UserInitiated: true, Now: now}

	dLong := InteractionEffect(long, ctx, entity.TemperamentBoldImpulsive)
	dMid := InteractionEffect(mid, ctx, entity.TemperamentBoldImpulsive)

	// 5 − 8 = −3 after a long absence; 5 − 3 = 2 after a medium one.
	if dLong.Comfort != -3 {
		t.Errorf("long-absence comfort = %d, want -3", dLong.Comfort)
	}
	if dMid.Comfort != 2 {
		t.Errorf("mid-absence comfort = %d, want 2", dMid.Comfort)
	}
	if dLong.Curiosity != 5 {
		t.Errorf("long-absence curiosity bonus = %d, want 5", dLong.Curiosity)
	}
	if dMid.Curiosity != 2 {
		t.Errorf("mid-absence curiosity bonus = %d, want 2", dMid.Curiosity)
	}
}

func TestInteractionEffect_RapidFireCostsDouble(t *testing.T) {
	status := entity.Status{LastInteraction: now.Add(-time.Minute)}
	d := InteractionEffect(status, Context{Now: now}, entity.TemperamentCalmObservant)
	if d.Energy != -2 {
		t.Errorf("rapid-fire energy = %d, want -2", d.Energy)
	}
}

func TestInteractionEffect_TemperamentMultipliers(t *testing.T) {
	status := entity.Status{LastInteraction: now.Add(-10 * time.Minute)}
	ctx := Context{UserInitiated: true, MessageLength: 60, Now: now}

	bold := InteractionEffect(status, ctx, entity.TemperamentBoldImpulsive)
	calm := InteractionEffect(status, ctx, entity.TemperamentCalmObservant)
	curious := InteractionEffect(status, ctx, entity.TemperamentCuriousCautious)

	// mood 3 × 1.4 = 4.2 → 4; energy −1 × 0.8 = −0.8 → −1
	if bold.Mood != 4 {
		t.Errorf("bold mood = %d, want 4", bold.Mood)
	}
	if bold.Energy != -1 {
		t.Errorf("bold energy = %d, want -1", bold.Energy)
	}
	// mood 3 × 0.7 = 2.1 → 2; comfort 5 × 0.6 = 3
	if calm.Mood != 2 {
		t.Errorf("calm mood = %d, want 2", calm.Mood)
	}
	if calm.Comfort != 3 {
		t.Errorf("calm comfort = %d, want 3", calm.Comfort)
	}
	// curiosity 4 × 1.3 = 5.2 → 5
	if curious.Curiosity != 5 {
		t.Errorf("curious curiosity = %d, want 5", curious.Curiosity)
	}
}

func TestAbsenceMinutes_NeverInteracted(t *testing.T) {
	if m := AbsenceMinutes(entity.Status{}, now); m < 1<<29 {
		t.Errorf("expected an effectively infinite absence, got %d", m)
	}
}
