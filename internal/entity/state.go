// EntityState — the aggregate root. Engines never mutate it in place; they
// clone, transform the clone, and return it.
package entity

import (
	"math"
	"time"
)

// Status holds the four bounded vitals and the primary clocks.
type Status struct {
	Mood      int `json:"mood"`      // 0–100
	Energy    int `json:"energy"`    // 0–100
	Curiosity int `json:"curiosity"` // 0–100
	Comfort   int `json:"comfort"`   // 0–100

	LanguageLevel   LanguageLevel   `json:"language_level"`
	PerceptionLevel PerceptionLevel `json:"perception_level"`

	// GrowthDay is whole days since the seed's CreatedAt. Non-decreasing
	// for increasing heartbeat timestamps.
	GrowthDay int `json:"growth_day"`

	// LastInteraction is zero until the first interaction ("never").
	LastInteraction time.Time `json:"last_interaction"`
	LastHeartbeat   time.Time `json:"last_heartbeat"`
}

// HasInteracted reports whether lastInteraction is past the "never" sentinel.
func (s Status) HasInteracted() bool {
	return !s.LastInteraction.IsZero()
}

// Milestone is a growth event that fires at most once.
type Milestone struct {
	ID       string      `json:"id"`
	Day      int         `json:"day"`
	Stage    GrowthStage `json:"stage"`
	Label    string      `json:"label"`
	FiredAt  time.Time   `json:"fired_at"`
}

// GrowthState tracks the stage and the append-only milestone history.
type GrowthState struct {
	Stage      GrowthStage `json:"stage"`
	Milestones []Milestone `json:"milestones,omitempty"`
}

// LanguageState tracks exposure counters feeding the language-level engine.
type LanguageState struct {
	TotalInteractions int `json:"total_interactions"`
	VocabularyHints   int `json:"vocabulary_hints"` // distinct long messages seen
}

// PerceptionState tracks sensory exposure feeding the perception-growth engine.
type PerceptionState struct {
	TotalSensoryInputs   int      `json:"total_sensory_inputs"`
	ModalitiesEncountered []string `json:"modalities_encountered,omitempty"`
}

// HasModality reports whether a modality name has been encountered.
func (p PerceptionState) HasModality(name string) bool {
	for _, m := range p.ModalitiesEncountered {
		if m == name {
			return true
		}
	}
	return false
}

// SulkState is the withdrawal state machine record.
// Invariant: SulkingSince is non-zero iff IsSulking is true.
type SulkState struct {
	IsSulking            bool         `json:"is_sulking"`
	Severity             SulkSeverity `json:"severity"`
	RecoveryInteractions int          `json:"recovery_interactions"`
	SulkingSince         time.Time    `json:"sulking_since,omitzero"`
}

// FormState is the visual form evaluation record. Density and Complexity
// never decrease; Awareness flips to true exactly once.
type FormState struct {
	Density    float64 `json:"density"`    // 0–100
	Complexity float64 `json:"complexity"` // 0–100
	Stability  float64 `json:"stability"`  // 0–100
	Awareness  bool    `json:"awareness"`
}

// AsymmetryState is the relationship-asymmetry record.
type AsymmetryState struct {
	Score               int            `json:"score"` // 0–100
	Phase               AsymmetryPhase `json:"phase"`
	TemporalMaturity    int            `json:"temporal_maturity"`    // 0–100
	EmotionalComplexity int            `json:"emotional_complexity"` // 0–100
}

// ReversalEvent records one qualifying "entity taught user" moment.
type ReversalEvent struct {
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	Summary    string    `json:"summary"`
}

// ReversalState holds the append-only reversal history.
// TotalReversals only increases.
type ReversalState struct {
	TotalReversals int             `json:"total_reversals"`
	Events         []ReversalEvent `json:"events,omitempty"`
}

// CoexistState holds the five coexistence indicators, each 0–100.
// All five are forced to zero unless the asymmetry phase is epsilon.
type CoexistState struct {
	Active          bool `json:"active"`
	SilenceComfort  int  `json:"silence_comfort"`
	SharedVocabulary int `json:"shared_vocabulary"`
	RhythmSync      int  `json:"rhythm_sync"`
	SharedMemory    int  `json:"shared_memory"`
	AutonomyRespect int  `json:"autonomy_respect"`
}

// EntityState is the aggregate the heartbeat orchestrator replaces each tick.
type EntityState struct {
	Seed       Seed            `json:"seed"`
	Status     Status          `json:"status"`
	Memory     MemoryState     `json:"memory"`
	Growth     GrowthState     `json:"growth"`
	Language   LanguageState   `json:"language"`
	Perception PerceptionState `json:"perception"`
	Sulk       SulkState       `json:"sulk"`
	Form       FormState       `json:"form"`
	Asymmetry  AsymmetryState  `json:"asymmetry"`
	Reversal   ReversalState   `json:"reversal"`
	Coexist    CoexistState    `json:"coexist"`
}

// New creates the time-zero state for a freshly sealed seed.
func New(seed Seed) EntityState {
	return EntityState{
		Seed: seed,
		Status: Status{
			Mood:      60,
			Energy:    70,
			Curiosity: 75,
			Comfort:   55,
		},
		Form: FormState{
			Density:    10,
			Complexity: 5,
			Stability:  50,
		},
	}
}

// Clone returns a deep copy. All slice-backed records are duplicated so the
// copy shares no memory with the original.
func (e EntityState) Clone() EntityState {
	c := e
	c.Seed.Hardware = e.Seed.Hardware.clone()
	c.Memory = e.Memory.clone()
	if e.Growth.Milestones != nil {
		c.Growth.Milestones = append([]Milestone(nil), e.Growth.Milestones...)
	}
	if e.Perception.ModalitiesEncountered != nil {
		c.Perception.ModalitiesEncountered = append([]string(nil), e.Perception.ModalitiesEncountered...)
	}
	if e.Reversal.Events != nil {
		c.Reversal.Events = append([]ReversalEvent(nil), e.Reversal.Events...)
	}
	return c
}

// GrowthDayAt returns whole elapsed days between the seed's creation and now.
// Negative spans clamp to zero, so growthDay never decreases.
func GrowthDayAt(createdAt, now time.Time) int {
	d := int(now.Sub(createdAt).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundHalf rounds to the nearest integer with halves going toward +inf
// (so -0.5 rounds to 0, not -1). The decay fixed points at 60/66/75 depend
// on exactly this rule; math.Round would shift them.
func RoundHalf(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Round2 rounds to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ClampF bounds v to [lo, hi] in float space.
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
