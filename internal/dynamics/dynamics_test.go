package dynamics

import (
	"testing"
	"time"

	"github.com/talgya/ember/internal/entity"
)

var at = time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)

func stateAtDay(day int) entity.EntityState {
	seed := entity.NewSeed("pip", entity.SpeciesAether, entity.CognitionDeliberate,
		entity.TemperamentCalmObservant, entity.FormBloom,
		entity.Traits{}, entity.HardwareBody{Board: "x"}, at.AddDate(0, 0, -day))
	st := entity.New(seed)
	st.Status.GrowthDay = day
	return st
}

func TestEvaluateAsymmetry_YoungEntityIsAlpha(t *testing.T) {
	st := stateAtDay(2)
	a := EvaluateAsymmetry(entity.AsymmetryState{}, st)

	if a.Phase != entity.PhaseAlpha {
		t.Errorf("phase = %s, want alpha", entity.PhaseName(a.Phase))
	}
	if a.Score < 0 || a.Score > 100 {
		t.Errorf("score out of range: %d", a.Score)
	}
}

func TestEvaluateAsymmetry_MaturityAndHistoryRaiseScore(t *testing.T) {
	young := stateAtDay(2)
	old := stateAtDay(120)
	old.Language.TotalInteractions = 300
	old.Memory.Warm = make([]entity.MemoryEntry, 5)
	old.Memory.Cold = make([]entity.MemoryEntry, 2)

	ya := EvaluateAsymmetry(entity.AsymmetryState{}, young)
	oa := EvaluateAsymmetry(entity.AsymmetryState{}, old)

	if oa.Score <= ya.Score {
		t.Errorf("older richer entity should outscore: %d vs %d", oa.Score, ya.Score)
	}
	if oa.TemporalMaturity != 100 {
		t.Errorf("day 120 temporal maturity = %d, want saturated 100", oa.TemporalMaturity)
	}
}

func TestEvaluateAsymmetry_PhaseNeverGoesBackward(t *testing.T) {
	st := stateAtDay(1)
	prior := entity.AsymmetryState{Phase: entity.PhaseDelta, Score: 70}

	a := EvaluateAsymmetry(prior, st)

	if a.Phase != entity.PhaseDelta {
		t.Errorf("phase regressed to %s", entity.PhaseName(a.Phase))
	}
	if a.Score >= 70 {
		t.Errorf("score should still drop for a young state, got %d", a.Score)
	}
}

func TestDetectReversals_AppendOnlyAndIdempotent(t *testing.T) {
	hot := []entity.MemoryEntry{
		{ID: "e1", At: at, Summary: "explained the rain sensor", EntityTaught: true},
		{ID: "e2", At: at, Summary: "small talk"},
	}

	r, fresh := DetectReversals(entity.ReversalState{}, hot)
	if r.TotalReversals != 1 || len(fresh) != 1 {
		t.Fatalf("expected one reversal, got total=%d fresh=%d", r.TotalReversals, len(fresh))
	}

	// Scanning the same entries again records nothing new.
	r2, fresh2 := DetectReversals(r, hot)
	if r2.TotalReversals != 1 || len(fresh2) != 0 {
		t.Errorf("re-scan grew the reversal list: total=%d fresh=%d", r2.TotalReversals, len(fresh2))
	}
}

func TestDetectReversals_CountOnlyIncreases(t *testing.T) {
	r := entity.ReversalState{TotalReversals: 3}
	r, _ = DetectReversals(r, nil)
	if r.TotalReversals != 3 {
		t.Errorf("empty scan changed the count: %d", r.TotalReversals)
	}
}

func TestEvaluateCoexist_ZeroBelowEpsilon(t *testing.T) {
	st := stateAtDay(10)
	st.Status.Comfort = 90
	st.Language.TotalInteractions = 500

	for _, phase := range []entity.AsymmetryPhase{entity.PhaseAlpha, entity.PhaseBeta, entity.PhaseGamma, entity.PhaseDelta} {
		st.Asymmetry.Phase = phase
		c := EvaluateCoexist(st)
		if c != (entity.CoexistState{}) {
			t.Errorf("phase %s: coexist should be zeroed, got %+v", entity.PhaseName(phase), c)
		}
	}
}

func TestEvaluateCoexist_ActiveAtEpsilon(t *testing.T) {
	st := stateAtDay(150)
	st.Asymmetry.Phase = entity.PhaseEpsilon
	st.Status.Comfort = 80
	st.Status.Curiosity = 60
	st.Language.TotalInteractions = 400
	st.Language.VocabularyHints = 20
	st.Status.LanguageLevel = entity.LangFluent
	st.Memory.Warm = make([]entity.MemoryEntry, 4)
	st.Reversal.TotalReversals = 2

	c := EvaluateCoexist(st)
	if !c.Active {
		t.Fatal("epsilon phase should activate coexist")
	}
	if c.SilenceComfort != 80 {
		t.Errorf("silence comfort = %d, want 80", c.SilenceComfort)
	}
	for name, v := range map[string]int{
		"sharedVocabulary": c.SharedVocabulary,
		"rhythmSync":       c.RhythmSync,
		"sharedMemory":     c.SharedMemory,
		"autonomyRespect":  c.AutonomyRespect,
	} {
		if v < 0 || v > 100 {
			t.Errorf("%s out of range: %d", name, v)
		}
	}
}
