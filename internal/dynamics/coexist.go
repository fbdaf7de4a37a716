// Coexistence indicators. They exist only in the epsilon phase; below it
// the whole record is forced to zero — partial coexistence is not a thing.
package dynamics

import "github.com/talgya/ember/internal/entity"

// EvaluateCoexist computes the five indicators from the already-updated
// state, or zeroes them all when the asymmetry phase is below epsilon.
func EvaluateCoexist(st entity.EntityState) entity.CoexistState {
	if st.Asymmetry.Phase != entity.PhaseEpsilon {
		return entity.CoexistState{}
	}

	return entity.CoexistState{
		Active:           true,
		SilenceComfort:   entity.Clamp(st.Status.Comfort, 0, 100),
		SharedVocabulary: entity.Clamp(st.Language.VocabularyHints*2+int(st.Status.LanguageLevel)*10, 0, 100),
		RhythmSync:       entity.Clamp(st.Language.TotalInteractions/10, 0, 100),
		SharedMemory:     entity.Clamp(len(st.Memory.Warm)*5+len(st.Memory.Cold)*10, 0, 100),
		AutonomyRespect:  entity.Clamp(st.Reversal.TotalReversals*10+st.Status.Curiosity/2, 0, 100),
	}
}
