package perception

import (
	"testing"

	"github.com/talgya/ember/internal/entity"
)

func TestBonusDays_HighestTierPerTable(t *testing.T) {
	cases := []struct {
		inputs     int
		modalities int
		want       int
	}{
		{0, 0, 0},
		{50, 0, 2},
		{200, 0, 5},   // not 2+5
		{1000, 0, 10},
		{5000, 0, 20},
		{0, 2, 2},
		{0, 3, 5},
		{0, 5, 10},
		{200, 3, 10}, // tables add across, not within
		{5000, 5, 30},
	}
	for _, c := range cases {
		p := entity.PerceptionState{TotalSensoryInputs: c.inputs}
		for i := 0; i < c.modalities; i++ {
			p.ModalitiesEncountered = append(p.ModalitiesEncountered, string(rune('a'+i)))
		}
		if got := BonusDays(p); got != c.want {
			t.Errorf("inputs=%d modalities=%d: bonus = %d, want %d", c.inputs, c.modalities, got, c.want)
		}
	}
}

func TestLevelFor(t *testing.T) {
	none := entity.PerceptionState{}
	cases := []struct {
		day  int
		want entity.PerceptionLevel
	}{
		{0, entity.PerceptionDim},
		{3, entity.PerceptionBlurred},
		{7, entity.PerceptionPresent},
		{14, entity.PerceptionVivid},
		{30, entity.PerceptionLucid},
	}
	for _, c := range cases {
		if got := LevelFor(c.day, none); got != c.want {
			t.Errorf("day %d: level = %s, want %s", c.day, entity.PerceptionName(got), entity.PerceptionName(c.want))
		}
	}
}

func TestRecordSample_ModalitiesAreASet(t *testing.T) {
	p := entity.PerceptionState{}
	p = RecordSample(p, ModalityText)
	p = RecordSample(p, ModalityText)
	p = RecordSample(p, ModalityAudio)

	if p.TotalSensoryInputs != 3 {
		t.Errorf("inputs = %d, want 3", p.TotalSensoryInputs)
	}
	if len(p.ModalitiesEncountered) != 2 {
		t.Errorf("modalities = %v, want 2 distinct", p.ModalitiesEncountered)
	}
}

func TestComputeWindow_LevelStartIsBaseValue(t *testing.T) {
	// At the exact level start day the interpolation factor is zero, so
	// the window is the base value times the species strength.
	w := ComputeWindow(entity.PerceptionPresent, entity.SpeciesAether, 7)
	if w.ImageDetail != 42.0 { // 40 × 1.05
		t.Errorf("image detail = %v, want 42.0", w.ImageDetail)
	}
}

func TestComputeWindow_Interpolates(t *testing.T) {
	// Vivid spans days 14–30; day 22 is halfway.
	w := ComputeWindow(entity.PerceptionVivid, entity.SpeciesAether, 22)
	// image: 65 + (85−65)×0.5 = 75, × 1.05 = 78.75
	if w.ImageDetail != 78.75 {
		t.Errorf("image detail = %v, want 78.75", w.ImageDetail)
	}
}

func TestComputeWindow_MaxLevelIgnoresGrowthDay(t *testing.T) {
	a := ComputeWindow(entity.PerceptionLucid, entity.SpeciesLumen, 30)
	b := ComputeWindow(entity.PerceptionLucid, entity.SpeciesLumen, 3000)
	if a != b {
		t.Errorf("lucid window varies with growthDay: %+v vs %+v", a, b)
	}
}

func TestComputeWindow_SpeciesStrengths(t *testing.T) {
	day := LevelStartDay(entity.PerceptionLucid)
	lumen := ComputeWindow(entity.PerceptionLucid, entity.SpeciesLumen, day)
	echo := ComputeWindow(entity.PerceptionLucid, entity.SpeciesEcho, day)

	if lumen.ImageDetail <= echo.ImageDetail {
		t.Errorf("lumen should out-see echo: %v vs %v", lumen.ImageDetail, echo.ImageDetail)
	}
	if echo.AudioSensitivity <= lumen.AudioSensitivity {
		t.Errorf("echo should out-hear lumen: %v vs %v", echo.AudioSensitivity, lumen.AudioSensitivity)
	}
}

func TestComputeWindow_BooleanChannelsSwitchAtLevel(t *testing.T) {
	cases := []struct {
		level   entity.PerceptionLevel
		spatial bool
		speech  bool
	}{
		{entity.PerceptionDim, false, false},
		{entity.PerceptionBlurred, false, false},
		{entity.PerceptionPresent, true, false},
		{entity.PerceptionVivid, true, true},
		{entity.PerceptionLucid, true, true},
	}
	for _, c := range cases {
		w := ComputeWindow(c.level, entity.SpeciesAether, 100)
		if w.SpatialAwareness != c.spatial || w.CanDetectSpeech != c.speech {
			t.Errorf("%s: spatial=%t speech=%t, want %t/%t",
				entity.PerceptionName(c.level), w.SpatialAwareness, w.CanDetectSpeech, c.spatial, c.speech)
		}
	}
}

func TestComputeWindow_ClampsAt100(t *testing.T) {
	// Lucid base 85 × lumen image 1.2 = 102 → clamp.
	w := ComputeWindow(entity.PerceptionLucid, entity.SpeciesLumen, 30)
	if w.ImageDetail != 100 {
		t.Errorf("image detail = %v, want clamped 100", w.ImageDetail)
	}
}
