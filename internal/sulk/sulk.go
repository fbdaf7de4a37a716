// Package sulk implements the withdrawal state machine layered on the
// vitals: entry under neglect or distress, graded severity, and recovery
// through sustained positive interaction.
package sulk

import (
	"time"

	"github.com/talgya/ember/internal/entity"
)

// recoveryRequired maps severity to the interactions needed for full
// recovery (which additionally requires comfort >= 40).
var recoveryRequired = map[entity.SulkSeverity]int{
	entity.SulkMild:     3,
	entity.SulkModerate: 6,
	entity.SulkSevere:   10,
}

// Evaluate runs the entry check on a heartbeat. Entry happens only from the
// non-sulking state; an ongoing sulk is left for Interact to work down.
func Evaluate(s entity.SulkState, status entity.Status, temperament entity.Temperament, now time.Time) entity.SulkState {
	if s.IsSulking {
		return s
	}

	absence := minutesSince(status.LastInteraction, now)
	distress := status.Comfort < 25 && status.Mood < 35
	neglect := absence > 720 && status.Comfort < 40
	if !distress && !neglect {
		return s
	}

	return entity.SulkState{
		IsSulking:            true,
		Severity:             scoreSeverity(status, temperament),
		RecoveryInteractions: 0,
		SulkingSince:         now,
	}
}

// Interact advances recovery by one interaction. Full recovery needs both
// the per-severity interaction count and comfort >= 40; partial downgrades
// (severe→moderate at 5, moderate→mild at 3) ignore comfort.
func Interact(s entity.SulkState, status entity.Status) entity.SulkState {
	if !s.IsSulking {
		return s
	}

	s.RecoveryInteractions++

	if s.RecoveryInteractions >= recoveryRequired[s.Severity] && status.Comfort >= 40 {
		return entity.SulkState{}
	}

	switch {
	case s.Severity == entity.SulkSevere && s.RecoveryInteractions >= 5:
		s.Severity = entity.SulkModerate
	case s.Severity == entity.SulkModerate && s.RecoveryInteractions >= 3:
		s.Severity = entity.SulkMild
	}
	return s
}

// scoreSeverity grades a fresh sulk from how bad the vitals are, nudged by
// temperament.
func scoreSeverity(status entity.Status, temperament entity.Temperament) entity.SulkSeverity {
	score := 0

	switch {
	case status.Comfort < 10:
		score += 3
	case status.Comfort < 20:
		score += 2
	default:
		score++
	}

	switch {
	case status.Mood < 20:
		score += 2
	case status.Mood < 35:
		score++
	}

	switch temperament {
	case entity.TemperamentCuriousCautious:
		score++
	case entity.TemperamentBoldImpulsive:
		score++
	case entity.TemperamentCalmObservant:
		score--
	}

	switch {
	case score >= 5:
		return entity.SulkSevere
	case score >= 3:
		return entity.SulkModerate
	case score >= 1:
		return entity.SulkMild
	default:
		return entity.SulkMild
	}
}

// ActiveSoulFile tells the workspace adapter which persona file to surface.
func ActiveSoulFile(s entity.SulkState) string {
	if s.IsSulking {
		return "SOUL_EVIL.md"
	}
	return "SOUL.md"
}

func minutesSince(t, now time.Time) int {
	if t.IsZero() {
		return 1 << 30
	}
	m := int(now.Sub(t).Minutes())
	if m < 0 {
		return 0
	}
	return m
}
