// Language level: a day-threshold ladder with an exposure bonus. Talking to
// the entity ages its language faster than the calendar alone would.
package growth

import "github.com/talgya/ember/internal/entity"

type languageThreshold struct {
	Day   int
	Level entity.LanguageLevel
}

var languageTable = []languageThreshold{
	{0, entity.LangSilent},
	{2, entity.LangBabble},
	{5, entity.LangWords},
	{10, entity.LangPhrases},
	{21, entity.LangSentences},
	{45, entity.LangFluent},
}

// interactionBonusTiers converts accumulated interactions into bonus days.
// Only the single highest tier reached applies.
var interactionBonusTiers = []struct {
	Count int
	Bonus int
}{
	{25, 1},
	{100, 3},
	{500, 7},
}

// LanguageBonusDays returns the exposure bonus for an interaction count.
func LanguageBonusDays(lang entity.LanguageState) int {
	bonus := 0
	for _, t := range interactionBonusTiers {
		if lang.TotalInteractions >= t.Count {
			bonus = t.Bonus
		}
	}
	return bonus
}

// LanguageLevelFor returns the language level for a growth day plus the
// exposure bonus from the language counters.
func LanguageLevelFor(day int, lang entity.LanguageState) entity.LanguageLevel {
	effective := day + LanguageBonusDays(lang)
	level := languageTable[0].Level
	for _, t := range languageTable {
		if effective >= t.Day {
			level = t.Level
		}
	}
	return level
}

// RecordInteraction advances the language exposure counters for one
// interaction. Messages long enough to carry structure count as vocabulary
// hints.
func RecordInteraction(lang entity.LanguageState, messageLength int) entity.LanguageState {
	lang.TotalInteractions++
	if messageLength > 50 {
		lang.VocabularyHints++
	}
	return lang
}
