// Interaction processing: the discrete-event counterpart to the heartbeat.
package heartbeat

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/ember/internal/entity"
	"github.com/talgya/ember/internal/growth"
	"github.com/talgya/ember/internal/perception"
	"github.com/talgya/ember/internal/sulk"
	"github.com/talgya/ember/internal/vitals"
)

// InteractionContext describes one discrete interaction as the messaging
// boundary saw it.
type InteractionContext struct {
	UserInitiated bool
	MessageLength int
	// EntityTaught marks the rare exchange where the entity explained
	// something the user did not know; the reversal detector scans for it.
	EntityTaught bool
}

// FirstEncounter is the one-time side payload for the very first
// interaction of the entity's life.
type FirstEncounter struct {
	At      time.Time
	Species string
	Diary   string
}

// InteractionResult carries the replacement state plus the first-encounter
// payload, non-nil exactly once per entity lifetime.
type InteractionResult struct {
	Updated        entity.EntityState
	FirstEncounter *FirstEncounter
}

// ProcessInteraction applies one interaction at now. Total over all inputs;
// the input state is never written to.
func ProcessInteraction(state entity.EntityState, ctx InteractionContext, now time.Time, summary string) InteractionResult {
	st := state.Clone()
	first := !st.Status.HasInteracted()

	delta := vitals.InteractionEffect(st.Status, vitals.Context{
		UserInitiated: ctx.UserInitiated,
		MessageLength: ctx.MessageLength,
		Now:           now,
	}, st.Seed.Temperament)
	st.Status = vitals.Apply(st.Status, delta)

	// Recovery credit lands after the comfort delta, so a warm interaction
	// can be the one that clears the sulk.
	st.Sulk = sulk.Interact(st.Sulk, st.Status)

	st.Memory.Hot = append(st.Memory.Hot, entity.MemoryEntry{
		ID:            uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("ember:hot:%d:%s", now.UnixNano(), summary))).String(),
		Kind:          entity.EntryInteraction,
		At:            now,
		Summary:       summary,
		UserInitiated: ctx.UserInitiated,
		EntityTaught:  ctx.EntityTaught,
	})

	st.Language = growth.RecordInteraction(st.Language, ctx.MessageLength)
	if ctx.MessageLength > 0 {
		st.Perception = perception.RecordSample(st.Perception, perception.ModalityText)
	}

	st.Status.LastInteraction = now

	res := InteractionResult{Updated: st}
	if first {
		res.FirstEncounter = &FirstEncounter{
			At:      now,
			Species: entity.SpeciesName(st.Seed.Species),
			Diary:   firstEncounterLine(st),
		}
	}
	return res
}

// RecordSensorSample routes a perception-boundary sample into the exposure
// counters. Audio and image payloads are assumed already reduced to
// features by the downstream filter; only the accounting happens here.
func RecordSensorSample(state entity.EntityState, sample perception.Sample) entity.EntityState {
	st := state.Clone()
	st.Perception = perception.RecordSample(st.Perception, sample.Kind)
	return st
}
