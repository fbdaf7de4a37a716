// Package heartbeat is the top-level pure pipeline. ProcessHeartbeat and
// ProcessInteraction are the only entry points that produce a new
// EntityState; they clone the input once and run the engines in a fixed
// order, because later stages read what earlier stages wrote in the same
// tick.
package heartbeat

import (
	"time"

	"github.com/talgya/ember/internal/dynamics"
	"github.com/talgya/ember/internal/entity"
	"github.com/talgya/ember/internal/form"
	"github.com/talgya/ember/internal/growth"
	"github.com/talgya/ember/internal/memtier"
	"github.com/talgya/ember/internal/perception"
	"github.com/talgya/ember/internal/sulk"
	"github.com/talgya/ember/internal/vitals"
)

// Result is everything one heartbeat produced. Collaborators (notifier,
// persistence, workspace adapter) read from here; the core never pushes.
type Result struct {
	Updated            entity.EntityState
	WakeSignal         bool
	SleepSignal        bool
	MemoryConsolidated bool
	Diary              string
	SoulEvilMd         string
	NewMilestones      []entity.Milestone
	NewReversals       []entity.ReversalEvent
	ActiveSoulFile     string
}

// chronotype holds a species' wake and sleep hours (local to the clock the
// scheduler feeds in).
type chronotype struct {
	WakeHour  int
	SleepHour int
}

var chronotypeBySpecies = [entity.NumSpecies]chronotype{
	entity.SpeciesLumen:   {8, 22},
	entity.SpeciesEcho:    {10, 23},
	entity.SpeciesVerdant: {6, 21},
	entity.SpeciesLexis:   {9, 23},
	entity.SpeciesTactus:  {7, 22},
	entity.SpeciesAether:  {8, 23},
}

// ProcessHeartbeat advances the entity to now. The input state is never
// written to; the returned Result carries the replacement.
func ProcessHeartbeat(state entity.EntityState, now time.Time) Result {
	st := state.Clone()
	prevBeat := st.Status.LastHeartbeat
	if prevBeat.IsZero() {
		prevBeat = st.Seed.CreatedAt
	}

	// 1. Natural decay over the elapsed gap.
	elapsed := now.Sub(prevBeat).Minutes()
	if elapsed < 0 {
		elapsed = 0
	}
	st.Status = vitals.Apply(st.Status, vitals.NaturalDecay(st.Status, elapsed))

	// 2. Age. Derived from the seed clock, so it cannot run backward.
	day := entity.GrowthDayAt(st.Seed.CreatedAt, now)
	if day > st.Status.GrowthDay {
		st.Status.GrowthDay = day
	}

	// 3–4. Capability ladders read the fresh growth day.
	st.Status.LanguageLevel = growth.LanguageLevelFor(st.Status.GrowthDay, st.Language)
	st.Status.PerceptionLevel = perception.LevelFor(st.Status.GrowthDay, st.Perception)

	// 5. Sulk entry check on the decayed vitals.
	st.Sulk = sulk.Evaluate(st.Sulk, st.Status, st.Seed.Temperament, now)

	// 6. Stage milestones.
	var newMilestones []entity.Milestone
	st.Growth, newMilestones = growth.Evaluate(st.Growth, st.Status.GrowthDay, now)

	// 7. Form evolution.
	st.Form = form.Evolve(st.Form, st.Seed, st.Status.GrowthDay, st.Language.TotalInteractions)

	// 8. Calendar-boundary memory promotion. Reversal detection below scans
	// the pre-promotion hot tier: a teaching entry rolled up this very beat
	// is still credited.
	hotBefore := st.Memory.Hot
	var consolidated bool
	st.Memory, consolidated = memtier.Consolidate(st.Memory, now)

	// 9–11. Relationship layer reads everything above.
	st.Asymmetry = dynamics.EvaluateAsymmetry(st.Asymmetry, st)
	var newReversals []entity.ReversalEvent
	st.Reversal, newReversals = dynamics.DetectReversals(st.Reversal, hotBefore)
	st.Coexist = dynamics.EvaluateCoexist(st)

	st.Status.LastHeartbeat = now

	res := Result{
		Updated:            st,
		MemoryConsolidated: consolidated,
		Diary:              diaryLine(st, now),
		NewMilestones:      newMilestones,
		NewReversals:       newReversals,
		ActiveSoulFile:     sulk.ActiveSoulFile(st.Sulk),
	}
	if st.Sulk.IsSulking {
		res.SoulEvilMd = sulk.GenerateSoulEvilMd(st.Seed.Species, st.Sulk.Severity)
	}

	ct := chronotypeBySpecies[st.Seed.Species]
	res.WakeSignal = crossedHour(prevBeat, now, ct.WakeHour)
	res.SleepSignal = crossedHour(prevBeat, now, ct.SleepHour)

	return res
}

// crossedHour reports whether the daily boundary at hour fell inside
// (last, now]. The scheduler calls at a coarse cadence, so a boundary can
// only be crossed once per call.
func crossedHour(last, now time.Time, hour int) bool {
	if !now.After(last) {
		return false
	}
	boundary := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if boundary.After(now) {
		boundary = boundary.AddDate(0, 0, -1)
	}
	return boundary.After(last)
}
