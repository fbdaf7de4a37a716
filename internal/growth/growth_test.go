package growth

import (
	"testing"
	"time"

	"github.com/talgya/ember/internal/entity"
)

var now = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

func TestStageFor(t *testing.T) {
	cases := []struct {
		day  int
		want entity.GrowthStage
	}{
		{0, entity.StageHatch},
		{2, entity.StageHatch},
		{3, entity.StageSprout},
		{7, entity.StageJuvenile},
		{14, entity.StageAdolescent},
		{29, entity.StageAdolescent},
		{30, entity.StageMature},
		{90, entity.StageElder},
		{5000, entity.StageElder},
	}
	for _, c := range cases {
		if got := StageFor(c.day); got != c.want {
			t.Errorf("StageFor(%d) = %s, want %s", c.day, entity.StageName(got), entity.StageName(c.want))
		}
	}
}

func TestEvaluate_MilestonesFireOnce(t *testing.T) {
	g := entity.GrowthState{}

	g, fired := Evaluate(g, 7, now)
	if len(fired) != 2 {
		t.Fatalf("day 7 should fire sprout and juvenile milestones, got %d", len(fired))
	}
	if g.Stage != entity.StageJuvenile {
		t.Errorf("stage = %s, want juvenile", entity.StageName(g.Stage))
	}

	// Re-evaluating the same day fires nothing new.
	g, fired = Evaluate(g, 7, now.Add(time.Hour))
	if len(fired) != 0 {
		t.Errorf("milestones fired twice: %v", fired)
	}
	if len(g.Milestones) != 2 {
		t.Errorf("milestone history grew on re-evaluation: %d", len(g.Milestones))
	}
}

func TestEvaluate_MilestoneIDsAreDeterministic(t *testing.T) {
	a, _ := Evaluate(entity.GrowthState{}, 3, now)
	b, _ := Evaluate(entity.GrowthState{}, 3, now)
	if a.Milestones[0].ID != b.Milestones[0].ID {
		t.Errorf("same stage produced different milestone IDs: %s vs %s", a.Milestones[0].ID, b.Milestones[0].ID)
	}
}

func TestLanguageLevelFor_DayThresholds(t *testing.T) {
	cases := []struct {
		day  int
		want entity.LanguageLevel
	}{
		{0, entity.LangSilent},
		{1, entity.LangSilent},
		{2, entity.LangBabble},
		{5, entity.LangWords},
		{10, entity.LangPhrases},
		{21, entity.LangSentences},
		{45, entity.LangFluent},
	}
	for _, c := range cases {
		if got := LanguageLevelFor(c.day, entity.LanguageState{}); got != c.want {
			t.Errorf("day %d: level = %s, want %s", c.day, entity.LanguageName(got), entity.LanguageName(c.want))
		}
	}
}

func TestLanguageBonus_HighestTierOnly(t *testing.T) {
	cases := []struct {
		interactions int
		want         int
	}{
		{0, 0},
		{24, 0},
		{25, 1},
		{100, 3},  // not 1+3
		{500, 7},  // not 1+3+7
		{9999, 7},
	}
	for _, c := range cases {
		lang := entity.LanguageState{TotalInteractions: c.interactions}
		if got := LanguageBonusDays(lang); got != c.want {
			t.Errorf("%d interactions: bonus = %d, want %d", c.interactions, got, c.want)
		}
	}
}

func TestLanguageBonus_AdvancesLevel(t *testing.T) {
	// Day 4 alone is babble; 25 interactions push the effective day to 5.
	lang := entity.LanguageState{TotalInteractions: 25}
	if got := LanguageLevelFor(4, lang); got != entity.LangWords {
		t.Errorf("bonus should advance level to words, got %s", entity.LanguageName(got))
	}
}

func TestRecordInteraction(t *testing.T) {
	lang := entity.LanguageState{}
	lang = RecordInteraction(lang, 5)
	lang = RecordInteraction(lang, 80)

	if lang.TotalInteractions != 2 {
		t.Errorf("total = %d, want 2", lang.TotalInteractions)
	}
	if lang.VocabularyHints != 1 {
		t.Errorf("hints = %d, want 1 (only the long message counts)", lang.VocabularyHints)
	}
}
