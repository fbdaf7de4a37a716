// Package vitals computes additive deltas to the four bounded vitals from
// elapsed time and from discrete interactions. All functions are pure; the
// caller applies the delta and keeps the new status.
package vitals

import (
	"time"

	"github.com/talgya/ember/internal/entity"
)

// Delta is a signed per-channel adjustment.
type Delta struct {
	Mood      int
	Energy    int
	Curiosity int
	Comfort   int
}

// Context describes one discrete interaction.
type Context struct {
	UserInitiated bool
	MessageLength int // characters of the user's message, 0 for non-text
	Now           time.Time
}

// AbsenceMinutes returns whole minutes since the last interaction, or a very
// large value when the entity has never been interacted with.
func AbsenceMinutes(status entity.Status, now time.Time) int {
	if !status.HasInteracted() {
		return 1 << 30
	}
	m := int(now.Sub(status.LastInteraction).Minutes())
	if m < 0 {
		return 0
	}
	return m
}

// NaturalDecay computes the per-heartbeat drift. Mood, energy, and curiosity
// drift toward a baseline of 50; comfort always decays. Per-channel integer
// rounding makes the channels settle at 60/66/75 rather than 50 — keep the
// rounding rule exactly as is, downstream behavior depends on it.
func NaturalDecay(status entity.Status, elapsedMinutes float64) Delta {
	rate := entity.ClampF(elapsedMinutes/120, 0, 1)
	return Delta{
		Mood:      entity.RoundHalf(float64(50-status.Mood) * 0.05 * rate),
		Energy:    entity.RoundHalf(float64(50-status.Energy) * 0.03 * rate),
		Curiosity: entity.RoundHalf(float64(50-status.Curiosity) * 0.02 * rate),
		Comfort:   entity.RoundHalf(-2 * rate),
	}
}

// InteractionEffect computes the delta one interaction produces, before
// temperament scaling is folded in. Each channel is rounded independently.
func InteractionEffect(status entity.Status, ctx Context, temperament entity.Temperament) Delta {
	absence := AbsenceMinutes(status, ctx.Now)

	var mood, energy, curiosity, comfort float64

	if ctx.UserInitiated {
		mood = 3
		comfort = 5
	}

	// Long absences hurt comfort more than they help reunion.
	switch {
	case absence > 360:
		comfort -= 8
	case absence > 60:
		comfort -= 3
	}

	// Curiosity rises with message substance and with novelty after a gap.
	switch {
	case ctx.MessageLength > 50:
		curiosity = 4
	case ctx.MessageLength > 10:
		curiosity = 2
	}
	switch {
	case absence > 360:
		curiosity += 5
	case absence > 60:
		curiosity += 2
	}

	// Interactions cost energy; rapid-fire ones cost double.
	energy = -1
	if absence < 2 {
		energy = -2
	}

	// Temperament multipliers, fixed per-channel constants.
	switch temperament {
	case entity.TemperamentBoldImpulsive:
		mood *= 1.4
		energy *= 0.8
	case entity.TemperamentCalmObservant:
		mood *= 0.7
		comfort *= 0.6
	case entity.TemperamentCuriousCautious:
		curiosity *= 1.3
	case entity.TemperamentRestlessExploratory:
		curiosity *= 1.5
		comfort *= 0.8
	}

	return Delta{
		Mood:      entity.RoundHalf(mood),
		Energy:    entity.RoundHalf(energy),
		Curiosity: entity.RoundHalf(curiosity),
		Comfort:   entity.RoundHalf(comfort),
	}
}

// Apply adds a delta to a status and clamps every channel to [0, 100].
func Apply(status entity.Status, d Delta) entity.Status {
	status.Mood = entity.Clamp(status.Mood+d.Mood, 0, 100)
	status.Energy = entity.Clamp(status.Energy+d.Energy, 0, 100)
	status.Curiosity = entity.Clamp(status.Curiosity+d.Curiosity, 0, 100)
	status.Comfort = entity.Clamp(status.Comfort+d.Comfort, 0, 100)
	return status
}
