// Three-tier interaction memory. Hot holds raw per-interaction summaries,
// warm holds weekly rollups, cold holds monthly rollups. Promotion runs
// hot→warm→cold only, never backward.
package entity

import "time"

// EntryKind distinguishes what a memory entry records.
type EntryKind uint8

const (
	EntryInteraction EntryKind = iota // single interaction summary (hot)
	EntryWeekly                       // weekly rollup (warm)
	EntryMonthly                      // monthly rollup (cold)
)

// MemoryEntry is one record in any tier.
type MemoryEntry struct {
	ID        string    `json:"id"`
	Kind      EntryKind `json:"kind"`
	At        time.Time `json:"at"`
	Summary   string    `json:"summary"`
	// UserInitiated and EntityTaught carry the interaction signals the
	// asymmetry and reversal evaluators scan for.
	UserInitiated bool `json:"user_initiated"`
	EntityTaught  bool `json:"entity_taught,omitempty"`
	// Rolled counts how many lower-tier entries a rollup absorbed.
	Rolled int `json:"rolled,omitempty"`
}

// MemoryState holds the three tiers.
type MemoryState struct {
	Hot  []MemoryEntry `json:"hot,omitempty"`
	Warm []MemoryEntry `json:"warm,omitempty"`
	Cold []MemoryEntry `json:"cold,omitempty"`
}

func (m MemoryState) clone() MemoryState {
	c := MemoryState{}
	if m.Hot != nil {
		c.Hot = append([]MemoryEntry(nil), m.Hot...)
	}
	if m.Warm != nil {
		c.Warm = append([]MemoryEntry(nil), m.Warm...)
	}
	if m.Cold != nil {
		c.Cold = append([]MemoryEntry(nil), m.Cold...)
	}
	return c
}

// TotalEntries returns the count across all tiers.
func (m MemoryState) TotalEntries() int {
	return len(m.Hot) + len(m.Warm) + len(m.Cold)
}
