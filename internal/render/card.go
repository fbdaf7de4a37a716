// The entity card: a YAML export of identity and headline state, written
// alongside the markdown sections for tools that want structure.
package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/talgya/ember/internal/entity"
)

// Card is the YAML-facing shape. Names are stable; downstream parsers key
// on them.
type Card struct {
	Name        string `yaml:"name"`
	Species     string `yaml:"species"`
	Temperament string `yaml:"temperament"`
	Cognition   string `yaml:"cognition"`
	Form        string `yaml:"form"`
	Hash        string `yaml:"hash"`
	CreatedAt   string `yaml:"created_at"`

	GrowthDay int    `yaml:"growth_day"`
	Stage     string `yaml:"stage"`
	Language  string `yaml:"language"`
	Perception string `yaml:"perception"`

	Mood      int `yaml:"mood"`
	Energy    int `yaml:"energy"`
	Curiosity int `yaml:"curiosity"`
	Comfort   int `yaml:"comfort"`

	Sulking       bool   `yaml:"sulking"`
	AsymmetryPhase string `yaml:"asymmetry_phase"`
	Reversals     int    `yaml:"reversals"`
}

// EntityCard renders the YAML entity card.
func EntityCard(st entity.EntityState) (string, error) {
	c := Card{
		Name:        st.Seed.Name,
		Species:     entity.SpeciesName(st.Seed.Species),
		Temperament: entity.TemperamentName(st.Seed.Temperament),
		Cognition:   entity.CognitionName(st.Seed.Cognition),
		Form:        entity.FormName(st.Seed.Form),
		Hash:        st.Seed.Hash,
		CreatedAt:   st.Seed.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),

		GrowthDay:  st.Status.GrowthDay,
		Stage:      entity.StageName(st.Growth.Stage),
		Language:   entity.LanguageName(st.Status.LanguageLevel),
		Perception: entity.PerceptionName(st.Status.PerceptionLevel),

		Mood:      st.Status.Mood,
		Energy:    st.Status.Energy,
		Curiosity: st.Status.Curiosity,
		Comfort:   st.Status.Comfort,

		Sulking:        st.Sulk.IsSulking,
		AsymmetryPhase: entity.PhaseName(st.Asymmetry.Phase),
		Reversals:      st.Reversal.TotalReversals,
	}

	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal entity card: %w", err)
	}
	return string(out), nil
}
