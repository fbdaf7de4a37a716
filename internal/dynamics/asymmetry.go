// Package dynamics derives the relationship-layer state: the asymmetry
// score and phase, reversal events, and the coexistence indicators that
// only open up in the final phase.
package dynamics

import "github.com/talgya/ember/internal/entity"

// Phase score thresholds: the score at which each phase begins.
var phaseThresholds = []struct {
	Score int
	Phase entity.AsymmetryPhase
}{
	{0, entity.PhaseAlpha},
	{20, entity.PhaseBeta},
	{40, entity.PhaseGamma},
	{60, entity.PhaseDelta},
	{80, entity.PhaseEpsilon},
}

// maturityHorizonDays is the age at which temporal maturity saturates.
const maturityHorizonDays = 120

// EvaluateAsymmetry recomputes the score from the already-updated state.
// The phase only ever moves forward: a bad week can lower the score but
// never demotes the relationship.
func EvaluateAsymmetry(a entity.AsymmetryState, st entity.EntityState) entity.AsymmetryState {
	a.TemporalMaturity = entity.Clamp(st.Status.GrowthDay*100/maturityHorizonDays, 0, 100)
	a.EmotionalComplexity = emotionalComplexity(st)
	a.Score = entity.Clamp((a.TemporalMaturity+a.EmotionalComplexity)/2, 0, 100)

	phase := phaseFor(a.Score)
	if phase > a.Phase {
		a.Phase = phase
	}
	return a
}

// emotionalComplexity weighs interaction volume against how much history
// has consolidated into the deeper memory tiers.
func emotionalComplexity(st entity.EntityState) int {
	interaction := st.Language.TotalInteractions / 5
	if interaction > 60 {
		interaction = 60
	}
	depth := len(st.Memory.Warm)*4 + len(st.Memory.Cold)*8 + len(st.Growth.Milestones)*3
	if depth > 40 {
		depth = 40
	}
	return entity.Clamp(interaction+depth, 0, 100)
}

func phaseFor(score int) entity.AsymmetryPhase {
	phase := phaseThresholds[0].Phase
	for _, t := range phaseThresholds {
		if score >= t.Score {
			phase = t.Phase
		}
	}
	return phase
}
