// The perception window: a discrete level plus species plus age turned into
// continuous per-channel capability values.
package perception

import "github.com/talgya/ember/internal/entity"

// Window is the continuous capability snapshot the downstream filter uses
// to decide what the entity actually perceives.
type Window struct {
	ImageDetail       float64 `json:"image_detail"`       // 0–100
	TextComprehension float64 `json:"text_comprehension"` // 0–100
	AudioSensitivity  float64 `json:"audio_sensitivity"`  // 0–100
	SensorResolution  float64 `json:"sensor_resolution"`  // 0–100

	// Boolean channels switch exactly at their level threshold and are
	// never interpolated.
	SpatialAwareness bool `json:"spatial_awareness"`
	CanDetectSpeech  bool `json:"can_detect_speech"`
}

// baseWindow holds the species-neutral numeric channels for one level.
type baseWindow struct {
	Image, Text, Audio, Sensor float64
}

var baseByLevel = [entity.NumPerceptionLevels]baseWindow{
	entity.PerceptionDim:     {5, 5, 5, 10},
	entity.PerceptionBlurred: {20, 15, 20, 25},
	entity.PerceptionPresent: {40, 35, 40, 45},
	entity.PerceptionVivid:   {65, 60, 65, 65},
	entity.PerceptionLucid:   {85, 85, 85, 85},
}

// speciesStrength holds the per-channel multipliers, each roughly 0.9–1.2.
type speciesStrength struct {
	Image, Text, Audio, Sensor float64
}

var strengthBySpecies = [entity.NumSpecies]speciesStrength{
	entity.SpeciesLumen:   {1.20, 1.00, 0.90, 0.95},
	entity.SpeciesEcho:    {0.90, 0.95, 1.20, 1.00},
	entity.SpeciesVerdant: {0.95, 0.90, 1.00, 1.20},
	entity.SpeciesLexis:   {0.90, 1.20, 0.95, 0.90},
	entity.SpeciesTactus:  {0.95, 0.90, 0.90, 1.15},
	entity.SpeciesAether:  {1.05, 1.05, 1.05, 1.05},
}

// ComputeWindow interpolates the numeric channels between the current level
// and the next by position within the level's day span, applies the species
// strengths, clamps, and rounds to two decimals. At the top level there is
// no next; the window is invariant to growthDay.
func ComputeWindow(level entity.PerceptionLevel, species entity.Species, growthDay int) Window {
	base := baseByLevel[level]

	interp := 0.0
	if level < entity.PerceptionLucid {
		next := baseByLevel[level+1]
		start := LevelStartDay(level)
		end := LevelStartDay(level + 1)
		if end > start {
			interp = entity.ClampF(float64(growthDay-start)/float64(end-start), 0, 1)
		}
		base.Image += (next.Image - base.Image) * interp
		base.Text += (next.Text - base.Text) * interp
		base.Audio += (next.Audio - base.Audio) * interp
		base.Sensor += (next.Sensor - base.Sensor) * interp
	}

	st := strengthBySpecies[species]
	return Window{
		ImageDetail:       entity.Round2(entity.ClampF(base.Image*st.Image, 0, 100)),
		TextComprehension: entity.Round2(entity.ClampF(base.Text*st.Text, 0, 100)),
		AudioSensitivity:  entity.Round2(entity.ClampF(base.Audio*st.Audio, 0, 100)),
		SensorResolution:  entity.Round2(entity.ClampF(base.Sensor*st.Sensor, 0, 100)),
		SpatialAwareness:  level >= entity.PerceptionPresent,
		CanDetectSpeech:   level >= entity.PerceptionVivid,
	}
}
