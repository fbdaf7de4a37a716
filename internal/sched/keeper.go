// Keeper serializes access to the single entity state. The core is pure
// and safe to call from anywhere, but two orchestrator calls on the same
// prior state would fork the timeline; all callers go through here.
package sched

import (
	"sync"
	"time"

	"github.com/talgya/ember/internal/entity"
	"github.com/talgya/ember/internal/form"
	"github.com/talgya/ember/internal/heartbeat"
	"github.com/talgya/ember/internal/perception"
)

// Keeper owns the current EntityState and applies transitions one at a time.
type Keeper struct {
	mu    sync.Mutex
	state entity.EntityState
}

// NewKeeper wraps an initial state.
func NewKeeper(initial entity.EntityState) *Keeper {
	return &Keeper{state: initial}
}

// State returns a deep copy of the current state.
func (k *Keeper) State() entity.EntityState {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state.Clone()
}

// Beat runs one heartbeat and installs the result.
func (k *Keeper) Beat(now time.Time) heartbeat.Result {
	k.mu.Lock()
	defer k.mu.Unlock()
	res := heartbeat.ProcessHeartbeat(k.state, now)
	k.state = res.Updated
	return res
}

// Interact applies one interaction and installs the result.
func (k *Keeper) Interact(ctx heartbeat.InteractionContext, now time.Time, summary string) heartbeat.InteractionResult {
	k.mu.Lock()
	defer k.mu.Unlock()
	res := heartbeat.ProcessInteraction(k.state, ctx, now, summary)
	k.state = res.Updated
	return res
}

// Sense records one perception-boundary sample.
func (k *Keeper) Sense(sample perception.Sample) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.state = heartbeat.RecordSensorSample(k.state, sample)
}

// Awaken flips the one-way self-awareness flag.
func (k *Keeper) Awaken() {
	k.mu.Lock()
	defer k.mu.Unlock()
	st := k.state.Clone()
	st.Form = form.AwakenSelfAwareness(st.Form)
	k.state = st
}
