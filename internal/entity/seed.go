// Package entity provides the Ember data model: the birth seed, the vitals
// status record, and the aggregate entity state that every engine consumes
// and replaces wholesale.
package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Species is the perception mode fixed at birth. It shapes per-channel
// perception strength and the expressive symbol sets.
type Species uint8

const (
	SpeciesLumen   Species = iota // visual-dominant
	SpeciesEcho                   // auditory-dominant
	SpeciesVerdant                // environmental/sensor-dominant
	SpeciesLexis                  // textual-dominant
	SpeciesTactus                 // tactile-dominant
	SpeciesAether                 // balanced
)

// NumSpecies is the total number of perception modes.
const NumSpecies = 6

// SpeciesName returns a lowercase name for a species.
func SpeciesName(s Species) string {
	names := [NumSpecies]string{"lumen", "echo", "verdant", "lexis", "tactus", "aether"}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// Temperament modulates how strongly interactions land on each vital channel.
type Temperament uint8

const (
	TemperamentBoldImpulsive Temperament = iota
	TemperamentCalmObservant
	TemperamentCuriousCautious
	TemperamentRestlessExploratory
)

// TemperamentName returns a lowercase name for a temperament.
func TemperamentName(t Temperament) string {
	names := [4]string{"bold-impulsive", "calm-observant", "curious-cautious", "restless-exploratory"}
	if int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// Cognition is the entity's fixed thinking style. It colors diary prose and
// the rendered entity card; it does not gate any engine.
type Cognition uint8

const (
	CognitionIntuitive Cognition = iota
	CognitionAnalytical
	CognitionAssociative
	CognitionDeliberate
)

// CognitionName returns a lowercase name for a cognition style.
func CognitionName(c Cognition) string {
	names := [4]string{"intuitive", "analytical", "associative", "deliberate"}
	if int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}

// FormArchetype is the visual archetype the form evaluator grows from.
type FormArchetype uint8

const (
	FormOrb FormArchetype = iota
	FormWisp
	FormFractal
	FormBloom
)

// FormName returns a lowercase name for a form archetype.
func FormName(f FormArchetype) string {
	names := [4]string{"orb", "wisp", "fractal", "bloom"}
	if int(f) < len(names) {
		return names[f]
	}
	return "unknown"
}

// Traits are the five birth sub-traits, each 0–100.
type Traits struct {
	Warmth     int `json:"warmth"`
	Resilience int `json:"resilience"`
	Wonder     int `json:"wonder"`
	Focus      int `json:"focus"`
	Expression int `json:"expression"`
}

// HardwareBody describes the physical host the entity perceives through.
type HardwareBody struct {
	Board   string   `json:"board"`
	Sensors []string `json:"sensors,omitempty"`
	Outputs []string `json:"outputs,omitempty"`
}

// clone returns a deep copy so a caller mutating its descriptor after birth
// cannot reach back into a fixed seed.
func (h HardwareBody) clone() HardwareBody {
	c := HardwareBody{Board: h.Board}
	if h.Sensors != nil {
		c.Sensors = append([]string(nil), h.Sensors...)
	}
	if h.Outputs != nil {
		c.Outputs = append([]string(nil), h.Outputs...)
	}
	return c
}

// Seed holds the birth-time constants. Created once at genesis and never
// mutated afterward; Hash is computed at construction and is a
// construction-time guarantee only.
type Seed struct {
	Name        string        `json:"name"`
	Species     Species       `json:"species"`
	Cognition   Cognition     `json:"cognition"`
	Temperament Temperament   `json:"temperament"`
	Form        FormArchetype `json:"form"`
	Traits      Traits        `json:"traits"`
	Hardware    HardwareBody  `json:"hardware"`
	CreatedAt   time.Time     `json:"created_at"`
	Hash        string        `json:"hash"`
}

// NewSeed creates a seed, deep-copying the hardware descriptor and sealing
// the content hash. Trait values are clamped to [0, 100].
func NewSeed(name string, sp Species, cg Cognition, tp Temperament, fm FormArchetype, traits Traits, hw HardwareBody, createdAt time.Time) Seed {
	s := Seed{
		Name:        name,
		Species:     sp,
		Cognition:   cg,
		Temperament: tp,
		Form:        fm,
		Traits: Traits{
			Warmth:     Clamp(traits.Warmth, 0, 100),
			Resilience: Clamp(traits.Resilience, 0, 100),
			Wonder:     Clamp(traits.Wonder, 0, 100),
			Focus:      Clamp(traits.Focus, 0, 100),
			Expression: Clamp(traits.Expression, 0, 100),
		},
		Hardware:  hw.clone(),
		CreatedAt: createdAt.UTC(),
	}
	s.Hash = s.contentHash()
	return s
}

// contentHash seals the seed fields into a hex sha256 digest.
func (s Seed) contentHash() string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%d|%d|%d|", s.Name, s.Species, s.Cognition, s.Temperament, s.Form)
	fmt.Fprintf(h, "%d,%d,%d,%d,%d|", s.Traits.Warmth, s.Traits.Resilience, s.Traits.Wonder, s.Traits.Focus, s.Traits.Expression)
	fmt.Fprintf(h, "%s|", s.Hardware.Board)
	for _, sn := range s.Hardware.Sensors {
		fmt.Fprintf(h, "%s,", sn)
	}
	fmt.Fprintf(h, "|")
	for _, out := range s.Hardware.Outputs {
		fmt.Fprintf(h, "%s,", out)
	}
	fmt.Fprintf(h, "|%d", s.CreatedAt.UnixNano())
	return hex.EncodeToString(h.Sum(nil))
}

// NoiseSeed derives a deterministic int64 from the seed hash, used to seed
// the form-evolution noise field. Same seed, same field, always.
func (s Seed) NoiseSeed() int64 {
	var n int64
	sum := sha256.Sum256([]byte(s.Hash))
	for i := 0; i < 8; i++ {
		n = n<<8 | int64(sum[i])
	}
	if n < 0 {
		n = -n
	}
	return n
}
