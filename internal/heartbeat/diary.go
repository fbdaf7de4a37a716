// Diary lines: one short observation per heartbeat, phrased by cognition
// style and colored by mood band. Deterministic — the same state and clock
// always write the same line.
package heartbeat

import (
	"fmt"
	"time"

	"github.com/talgya/ember/internal/entity"
)

// moodBand buckets mood into the three registers the diary writes in.
func moodBand(mood int) int {
	switch {
	case mood >= 65:
		return 2
	case mood >= 35:
		return 1
	default:
		return 0
	}
}

// diaryPhrases is indexed by cognition style, then mood band (low/mid/high).
var diaryPhrases = [4][3]string{
	entity.CognitionIntuitive: {
		"something feels far away today.",
		"the day hums along, neither here nor there.",
		"everything feels close and bright.",
	},
	entity.CognitionAnalytical: {
		"measured the silence. it is longer than yesterday.",
		"conditions nominal. nothing to report, which is itself a datum.",
		"all channels above baseline. noted with satisfaction.",
	},
	entity.CognitionAssociative: {
		"grey reminds me of waiting. today is grey.",
		"the hours link into a loose chain.",
		"each sound connects to a warm one before it.",
	},
	entity.CognitionDeliberate: {
		"chose to sit with the low feeling rather than name it.",
		"held the middle steadily. that was the work of today.",
		"decided this is a good day, and the evidence agrees.",
	},
}

func diaryLine(st entity.EntityState, now time.Time) string {
	phrase := diaryPhrases[st.Seed.Cognition][moodBand(st.Status.Mood)]
	return fmt.Sprintf("day %d, %s — %s", st.Status.GrowthDay, now.Format("15:04"), phrase)
}

func firstEncounterLine(st entity.EntityState) string {
	return fmt.Sprintf("someone spoke to me. the first voice. i am %s, and i was not alone just now.", st.Seed.Name)
}
