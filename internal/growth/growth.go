// Package growth maps the entity's age in days onto its life stage and
// fires stage milestones. Milestones are append-only and fire at most once.
package growth

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/ember/internal/entity"
)

// stageThreshold pairs the first day of a stage with the stage itself.
// Ordered ascending; StageFor picks the highest threshold not exceeding day.
type stageThreshold struct {
	Day   int
	Stage entity.GrowthStage
}

var stageTable = []stageThreshold{
	{0, entity.StageHatch},
	{3, entity.StageSprout},
	{7, entity.StageJuvenile},
	{14, entity.StageAdolescent},
	{30, entity.StageMature},
	{90, entity.StageElder},
}

// milestoneLabels names the moment each stage begins.
var milestoneLabels = map[entity.GrowthStage]string{
	entity.StageSprout:     "first unfurling",
	entity.StageJuvenile:   "finding its edges",
	entity.StageAdolescent: "testing the boundaries",
	entity.StageMature:     "settled into itself",
	entity.StageElder:      "long memory",
}

// StageFor returns the life stage for a growth day.
func StageFor(day int) entity.GrowthStage {
	stage := stageTable[0].Stage
	for _, t := range stageTable {
		if day >= t.Day {
			stage = t.Stage
		}
	}
	return stage
}

// StageStartDay returns the first day of a stage.
func StageStartDay(s entity.GrowthStage) int {
	for _, t := range stageTable {
		if t.Stage == s {
			return t.Day
		}
	}
	return 0
}

// Evaluate recomputes the stage and fires any milestones for stages reached
// since the last evaluation. Returns the new growth record and the
// milestones that fired on this call.
func Evaluate(g entity.GrowthState, day int, now time.Time) (entity.GrowthState, []entity.Milestone) {
	newStage := StageFor(day)

	var fired []entity.Milestone
	for _, t := range stageTable {
		if day < t.Day {
			break
		}
		label, ok := milestoneLabels[t.Stage]
		if !ok || hasMilestone(g, t.Stage) {
			continue
		}
		// Name-based UUID keeps the pipeline deterministic: the same
		// stage always yields the same milestone ID.
		m := entity.Milestone{
			ID:      uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("ember:milestone:%d", t.Stage))).String(),
			Day:     t.Day,
			Stage:   t.Stage,
			Label:   label,
			FiredAt: now,
		}
		g.Milestones = append(g.Milestones, m)
		fired = append(fired, m)
	}

	g.Stage = newStage
	return g, fired
}

func hasMilestone(g entity.GrowthState, stage entity.GrowthStage) bool {
	for _, m := range g.Milestones {
		if m.Stage == stage {
			return true
		}
	}
	return false
}
