// Package render serializes EntityState into the human-readable sections
// the workspace adapter hands to the chat agent. Layout is a collaborator
// contract; every field the sections need is exposed by the core.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/talgya/ember/internal/entity"
	"github.com/talgya/ember/internal/perception"
)

// Status renders the vitals and clocks section.
func Status(st entity.EntityState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Status\n\n")
	fmt.Fprintf(&b, "- name: %s (%s, %s)\n", st.Seed.Name, entity.SpeciesName(st.Seed.Species), entity.TemperamentName(st.Seed.Temperament))
	fmt.Fprintf(&b, "- growth day: %d (%s)\n", st.Status.GrowthDay, entity.StageName(st.Growth.Stage))
	fmt.Fprintf(&b, "- mood: %d  energy: %d  curiosity: %d  comfort: %d\n",
		st.Status.Mood, st.Status.Energy, st.Status.Curiosity, st.Status.Comfort)
	fmt.Fprintf(&b, "- last interaction: %s\n", timeOrNever(st.Status.LastInteraction))
	if st.Sulk.IsSulking {
		fmt.Fprintf(&b, "- sulking: %s since %s (%d recovery interactions)\n",
			entity.SeverityName(st.Sulk.Severity), st.Sulk.SulkingSince.Format(time.RFC3339), st.Sulk.RecoveryInteractions)
	}
	return b.String()
}

// Language renders the language section.
func Language(st entity.EntityState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Language\n\n")
	fmt.Fprintf(&b, "- level: %s\n", entity.LanguageName(st.Status.LanguageLevel))
	fmt.Fprintf(&b, "- interactions: %d\n", st.Language.TotalInteractions)
	fmt.Fprintf(&b, "- vocabulary hints: %d\n", st.Language.VocabularyHints)
	return b.String()
}

// Memory renders all three tiers, newest first within each.
func Memory(st entity.EntityState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Memory\n\n")
	writeTier(&b, "hot", st.Memory.Hot)
	writeTier(&b, "warm", st.Memory.Warm)
	writeTier(&b, "cold", st.Memory.Cold)
	return b.String()
}

func writeTier(b *strings.Builder, name string, entries []entity.MemoryEntry) {
	fmt.Fprintf(b, "### %s (%d)\n", name, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		fmt.Fprintf(b, "- %s — %s\n", e.At.Format("2006-01-02 15:04"), e.Summary)
	}
	b.WriteString("\n")
}

// Milestones renders the growth milestone history.
func Milestones(st entity.EntityState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Milestones\n\n")
	if len(st.Growth.Milestones) == 0 {
		b.WriteString("none yet.\n")
		return b.String()
	}
	for _, m := range st.Growth.Milestones {
		fmt.Fprintf(&b, "- day %d: %s (%s)\n", m.Day, m.Label, entity.StageName(m.Stage))
	}
	return b.String()
}

// Form renders the visual form section plus the current perception window.
func Form(st entity.EntityState) string {
	w := perception.ComputeWindow(st.Status.PerceptionLevel, st.Seed.Species, st.Status.GrowthDay)
	var b strings.Builder
	fmt.Fprintf(&b, "## Form\n\n")
	fmt.Fprintf(&b, "- archetype: %s\n", entity.FormName(st.Seed.Form))
	fmt.Fprintf(&b, "- density: %.2f  complexity: %.2f  stability: %.2f\n", st.Form.Density, st.Form.Complexity, st.Form.Stability)
	fmt.Fprintf(&b, "- self-aware: %t\n", st.Form.Awareness)
	fmt.Fprintf(&b, "- perception: %s (image %.2f, text %.2f, audio %.2f, sensor %.2f)\n",
		entity.PerceptionName(st.Status.PerceptionLevel), w.ImageDetail, w.TextComprehension, w.AudioSensitivity, w.SensorResolution)
	return b.String()
}

// Dynamics renders asymmetry, reversal, and coexist in one section.
func Dynamics(st entity.EntityState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Dynamics\n\n")
	fmt.Fprintf(&b, "- asymmetry: %d (%s)\n", st.Asymmetry.Score, entity.PhaseName(st.Asymmetry.Phase))
	fmt.Fprintf(&b, "- temporal maturity: %d  emotional complexity: %d\n", st.Asymmetry.TemporalMaturity, st.Asymmetry.EmotionalComplexity)
	fmt.Fprintf(&b, "- reversals: %d\n", st.Reversal.TotalReversals)
	for _, ev := range st.Reversal.Events {
		fmt.Fprintf(&b, "  - %s: %s\n", ev.OccurredAt.Format("2006-01-02"), ev.Summary)
	}
	if st.Coexist.Active {
		fmt.Fprintf(&b, "- coexist: silence %d, vocabulary %d, rhythm %d, memory %d, autonomy %d\n",
			st.Coexist.SilenceComfort, st.Coexist.SharedVocabulary, st.Coexist.RhythmSync,
			st.Coexist.SharedMemory, st.Coexist.AutonomyRespect)
	} else {
		b.WriteString("- coexist: not yet\n")
	}
	return b.String()
}

// All concatenates every section in reading order.
func All(st entity.EntityState) string {
	sections := []string{
		Status(st), Language(st), Memory(st), Milestones(st), Form(st), Dynamics(st),
	}
	return strings.Join(sections, "\n")
}

func timeOrNever(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format(time.RFC3339)
}
