// Package form evolves the entity's visual density, complexity, and
// stability. The curves ride a simplex noise field seeded from the birth
// hash, so every entity drifts in its own way yet the same entity always
// drifts the same way.
package form

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/ember/internal/entity"
)

// Channel offsets keep the three noise traversals independent.
const (
	densityTrack   = 0.0
	complexityTrack = 7.3
	stabilityTrack = 13.9
)

// archetypeBias shifts how fast each archetype thickens versus branches.
type archetypeBias struct {
	Density, Complexity float64
}

var biasByArchetype = map[entity.FormArchetype]archetypeBias{
	entity.FormOrb:     {1.1, 0.8},
	entity.FormWisp:    {0.8, 1.0},
	entity.FormFractal: {0.9, 1.3},
	entity.FormBloom:   {1.0, 1.1},
}

// Evolve advances the form for the current growth day and interaction
// history. Density and complexity never decrease; stability sways smoothly
// within [20, 100].
func Evolve(f entity.FormState, seed entity.Seed, growthDay, totalInteractions int) entity.FormState {
	noise := opensimplex.NewNormalized(seed.NoiseSeed())
	bias := biasByArchetype[seed.Form]

	day := float64(growthDay)
	social := math.Min(float64(totalInteractions)/10, 30)

	// Target curves: saturating growth over the first ~120 days, textured
	// by the noise field.
	densityTarget := (10 + 70*(1-math.Exp(-day/45)) + social*0.5) * bias.Density
	densityTarget += 8 * noise.Eval2(day*0.11, densityTrack)

	complexityTarget := (5 + 75*(1-math.Exp(-day/60)) + social*0.7) * bias.Complexity
	complexityTarget += 10 * noise.Eval2(day*0.07, complexityTrack)

	if densityTarget > f.Density {
		f.Density = entity.Round2(entity.ClampF(densityTarget, 0, 100))
	}
	if complexityTarget > f.Complexity {
		f.Complexity = entity.Round2(entity.ClampF(complexityTarget, 0, 100))
	}

	// Stability rises with age but breathes with the noise field.
	base := 40 + 40*(1-math.Exp(-day/90))
	sway := 20 * (noise.Eval2(day*0.19, stabilityTrack) - 0.5)
	f.Stability = entity.Round2(entity.ClampF(base+sway, 20, 100))

	return f
}

// AwakenSelfAwareness flips the one-way awareness flag. The trigger (a
// self-image recognition event) lives outside the core; repeated calls are
// harmless.
func AwakenSelfAwareness(f entity.FormState) entity.FormState {
	f.Awareness = true
	return f
}
