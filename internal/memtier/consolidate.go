// Package memtier promotes interaction memory across the hot→warm→cold
// tiers on calendar boundaries. Promotion is one-directional.
package memtier

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/ember/internal/entity"
)

// Consolidation windows: Sunday evenings roll hot into warm, the first
// evening of a month rolls warm into cold.
const (
	windowStartHour = 20
	windowEndHour   = 22 // inclusive
)

// inEveningBand reports whether now falls in the consolidation hour band.
func inEveningBand(now time.Time) bool {
	return now.Hour() >= windowStartHour && now.Hour() <= windowEndHour
}

// WeeklyDue reports whether a heartbeat at now should run the hot→warm roll.
func WeeklyDue(now time.Time) bool {
	return now.Weekday() == time.Sunday && inEveningBand(now)
}

// MonthlyDue reports whether a heartbeat at now should run the warm→cold roll.
func MonthlyDue(now time.Time) bool {
	return now.Day() == 1 && inEveningBand(now)
}

// Consolidate runs whichever promotions are due. It returns the new memory
// state and whether anything was promoted. A due window with an empty
// source tier is a no-op.
func Consolidate(m entity.MemoryState, now time.Time) (entity.MemoryState, bool) {
	consolidated := false

	if WeeklyDue(now) && len(m.Hot) > 0 {
		m.Warm = append(m.Warm, rollup(m.Hot, entity.EntryWeekly, now))
		m.Hot = nil
		consolidated = true
	}

	if MonthlyDue(now) && len(m.Warm) > 0 {
		m.Cold = append(m.Cold, rollup(m.Warm, entity.EntryMonthly, now))
		m.Warm = nil
		consolidated = true
	}

	return m, consolidated
}

// rollup folds a tier into a single higher-tier entry, carrying forward the
// signals the dynamics evaluators scan for.
func rollup(entries []entity.MemoryEntry, kind entity.EntryKind, now time.Time) entity.MemoryEntry {
	userInitiated := 0
	taught := false
	for _, e := range entries {
		if e.UserInitiated {
			userInitiated++
		}
		if e.EntityTaught {
			taught = true
		}
	}

	span := "week"
	if kind == entity.EntryMonthly {
		span = "month"
	}

	return entity.MemoryEntry{
		ID:            uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("ember:%s:%s", span, now.Format("2006-01-02")))).String(),
		Kind:          kind,
		At:            now,
		Summary:       fmt.Sprintf("%s ending %s: %d entries, %d user-initiated", span, now.Format("2006-01-02"), len(entries), userInitiated),
		UserInitiated: userInitiated > len(entries)/2,
		EntityTaught:  taught,
		Rolled:        len(entries),
	}
}
