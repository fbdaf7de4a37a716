// Reversal detection: moments where the entity taught the user something.
// The list is append-only and TotalReversals only increases.
package dynamics

import (
	"github.com/google/uuid"

	"github.com/talgya/ember/internal/entity"
)

// DetectReversals scans the hot memory tier for qualifying entries not yet
// recorded and appends one event per entry. Event IDs derive from the entry
// IDs, so re-scanning the same entries is idempotent.
func DetectReversals(r entity.ReversalState, hot []entity.MemoryEntry) (entity.ReversalState, []entity.ReversalEvent) {
	var fresh []entity.ReversalEvent
	for _, e := range hot {
		if !e.EntityTaught {
			continue
		}
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("ember:reversal:"+e.ID)).String()
		if hasEvent(r, id) {
			continue
		}
		ev := entity.ReversalEvent{
			ID:         id,
			OccurredAt: e.At,
			Summary:    e.Summary,
		}
		r.Events = append(r.Events, ev)
		r.TotalReversals++
		fresh = append(fresh, ev)
	}
	return r, fresh
}

func hasEvent(r entity.ReversalState, id string) bool {
	for _, ev := range r.Events {
		if ev.ID == id {
			return true
		}
	}
	return false
}
