// Ordered level and stage enums shared by the growth, language, perception,
// and asymmetry engines. Comparison operators on the underlying uint8 give
// the ordering; never compare by name.
package entity

// GrowthStage is the coarse life stage derived from GrowthDay.
type GrowthStage uint8

const (
	StageHatch GrowthStage = iota
	StageSprout
	StageJuvenile
	StageAdolescent
	StageMature
	StageElder
)

// StageName returns a lowercase name for a growth stage.
func StageName(s GrowthStage) string {
	names := [6]string{"hatch", "sprout", "juvenile", "adolescent", "mature", "elder"}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// LanguageLevel is the entity's expressive capability tier.
type LanguageLevel uint8

const (
	LangSilent LanguageLevel = iota
	LangBabble
	LangWords
	LangPhrases
	LangSentences
	LangFluent
)

// LanguageName returns a lowercase name for a language level.
func LanguageName(l LanguageLevel) string {
	names := [6]string{"silent", "babble", "words", "phrases", "sentences", "fluent"}
	if int(l) < len(names) {
		return names[l]
	}
	return "unknown"
}

// PerceptionLevel is the entity's sensory acuity tier.
type PerceptionLevel uint8

const (
	PerceptionDim PerceptionLevel = iota
	PerceptionBlurred
	PerceptionPresent
	PerceptionVivid
	PerceptionLucid
)

// NumPerceptionLevels is the total number of perception tiers.
const NumPerceptionLevels = 5

// PerceptionName returns a lowercase name for a perception level.
func PerceptionName(p PerceptionLevel) string {
	names := [NumPerceptionLevels]string{"dim", "blurred", "present", "vivid", "lucid"}
	if int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}

// AsymmetryPhase classifies the relationship asymmetry score into five
// ordered phases. Transitions are forward-only within the pipeline.
type AsymmetryPhase uint8

const (
	PhaseAlpha AsymmetryPhase = iota
	PhaseBeta
	PhaseGamma
	PhaseDelta
	PhaseEpsilon
)

// PhaseName returns a lowercase name for an asymmetry phase.
func PhaseName(p AsymmetryPhase) string {
	names := [5]string{"alpha", "beta", "gamma", "delta", "epsilon"}
	if int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}

// SulkSeverity grades a sulk episode.
type SulkSeverity uint8

const (
	SulkNone SulkSeverity = iota
	SulkMild
	SulkModerate
	SulkSevere
)

// SeverityName returns a lowercase name for a sulk severity.
func SeverityName(s SulkSeverity) string {
	names := [4]string{"none", "mild", "moderate", "severe"}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}
