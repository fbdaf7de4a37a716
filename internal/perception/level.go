// Package perception covers the sensory side of the entity: the
// perception-level ladder with exposure bonuses, the continuous capability
// window derived from it, and the tagged sample records the boundary feeds
// into the growth accounting.
package perception

import "github.com/talgya/ember/internal/entity"

type levelThreshold struct {
	Day   int
	Level entity.PerceptionLevel
}

var levelTable = []levelThreshold{
	{0, entity.PerceptionDim},
	{3, entity.PerceptionBlurred},
	{7, entity.PerceptionPresent},
	{14, entity.PerceptionVivid},
	{30, entity.PerceptionLucid},
}

// Exposure bonus tables. Within each table only the single highest tier
// reached applies; the two tables then add together.
var inputBonusTiers = []struct {
	Count int
	Bonus int
}{
	{50, 2},
	{200, 5},
	{1000, 10},
	{5000, 20},
}

var modalityBonusTiers = []struct {
	Count int
	Bonus int
}{
	{2, 2},
	{3, 5},
	{5, 10},
}

// BonusDays converts the exposure counters into growth-day bonuses.
func BonusDays(p entity.PerceptionState) int {
	inputBonus := 0
	for _, t := range inputBonusTiers {
		if p.TotalSensoryInputs >= t.Count {
			inputBonus = t.Bonus
		}
	}
	modBonus := 0
	for _, t := range modalityBonusTiers {
		if len(p.ModalitiesEncountered) >= t.Count {
			modBonus = t.Bonus
		}
	}
	return inputBonus + modBonus
}

// LevelFor returns the perception level for a growth day plus exposure bonus.
func LevelFor(day int, p entity.PerceptionState) entity.PerceptionLevel {
	effective := day + BonusDays(p)
	level := levelTable[0].Level
	for _, t := range levelTable {
		if effective >= t.Day {
			level = t.Level
		}
	}
	return level
}

// LevelStartDay returns the first (species-neutral) day of a level.
func LevelStartDay(l entity.PerceptionLevel) int {
	for _, t := range levelTable {
		if t.Level == l {
			return t.Day
		}
	}
	return 0
}

// RecordSample counts one sensory input toward the exposure bonuses.
// Modalities are a set; re-encountering one does not grow it.
func RecordSample(p entity.PerceptionState, modality string) entity.PerceptionState {
	p.TotalSensoryInputs++
	if !p.HasModality(modality) {
		p.ModalitiesEncountered = append(append([]string(nil), p.ModalitiesEncountered...), modality)
	}
	return p
}
