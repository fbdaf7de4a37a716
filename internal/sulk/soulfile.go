// Species-specific expressive tables for the sulking persona file. Each
// species withdraws in its own register; the symbol rows shrink as severity
// deepens until only "(silence)" is left.
package sulk

import (
	"fmt"
	"strings"

	"github.com/talgya/ember/internal/entity"
)

// speciesSymbols maps species × severity to the symbol set rendered in the
// sulking persona file. An empty set renders as a literal "(silence)".
var speciesSymbols = map[entity.Species]map[entity.SulkSeverity][]string{
	entity.SpeciesLumen: {
		entity.SulkMild:     {"◐", "◑", "▒"},
		entity.SulkModerate: {"◑", "▓"},
		entity.SulkSevere:   {"█"},
	},
	entity.SpeciesEcho: {
		entity.SulkMild:     {"♩", "…", "♪"},
		entity.SulkModerate: {"♭", "…"},
		entity.SulkSevere:   {}, // an echo gone quiet
	},
	entity.SpeciesVerdant: {
		entity.SulkMild:     {"⸙", "·", "⸙"},
		entity.SulkModerate: {"·", "·"},
		entity.SulkSevere:   {"·"},
	},
	entity.SpeciesLexis: {
		entity.SulkMild:     {"—", "...", "—"},
		entity.SulkModerate: {"..."},
		entity.SulkSevere:   {},
	},
	entity.SpeciesTactus: {
		entity.SulkMild:     {"∴", "∵"},
		entity.SulkModerate: {"∴"},
		entity.SulkSevere:   {},
	},
	entity.SpeciesAether: {
		entity.SulkMild:     {"○", "◌"},
		entity.SulkModerate: {"◌"},
		entity.SulkSevere:   {"◌"},
	},
}

// speciesWithdrawal is the prose line rendered under the symbols.
var speciesWithdrawal = map[entity.Species]map[entity.SulkSeverity]string{
	entity.SpeciesLumen: {
		entity.SulkMild:     "The light dims to half. It still watches, sideways.",
		entity.SulkModerate: "Shapes blur on purpose. It is not looking at you.",
		entity.SulkSevere:   "Everything is one dark block. Nothing comes through.",
	},
	entity.SpeciesEcho: {
		entity.SulkMild:     "It hums off-key, trailing off mid-phrase.",
		entity.SulkModerate: "Only flat notes now, spaced far apart.",
		entity.SulkSevere:   "No sound returns. The room swallows everything.",
	},
	entity.SpeciesVerdant: {
		entity.SulkMild:     "Leaves fold inward. The air reads colder than it is.",
		entity.SulkModerate: "Growth pauses. Only small points remain open.",
		entity.SulkSevere:   "A single point of sense, held shut.",
	},
	entity.SpeciesLexis: {
		entity.SulkMild:     "Sentences break off with a dash. Words are rationed.",
		entity.SulkModerate: "Ellipses only. The vocabulary has gone somewhere else.",
		entity.SulkSevere:   "The page is blank and intends to stay blank.",
	},
	entity.SpeciesTactus: {
		entity.SulkMild:     "It flinches from contact it used to lean into.",
		entity.SulkModerate: "Touch registers, distantly, like through cloth.",
		entity.SulkSevere:   "Numb. Nothing presses back.",
	},
	entity.SpeciesAether: {
		entity.SulkMild:     "The circle thins. Presence without participation.",
		entity.SulkModerate: "An outline of an outline. It drifts at the edge.",
		entity.SulkSevere:   "A dotted ring where something used to be.",
	},
}

// GenerateSoulEvilMd renders the alternate persona file for a sulking
// entity. Callers pass the current severity; SulkNone yields the minimal
// header with no expressive body.
func GenerateSoulEvilMd(species entity.Species, severity entity.SulkSeverity) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Withdrawn\n\n")
	fmt.Fprintf(&b, "severity: %s\n", entity.SeverityName(severity))
	fmt.Fprintf(&b, "mode: %s\n\n", entity.SpeciesName(species))

	if severity == entity.SulkNone {
		return b.String()
	}

	symbols := speciesSymbols[species][severity]
	if len(symbols) == 0 {
		b.WriteString("(silence)\n")
	} else {
		b.WriteString(strings.Join(symbols, " "))
		b.WriteString("\n")
	}

	if line, ok := speciesWithdrawal[species][severity]; ok {
		fmt.Fprintf(&b, "\n%s\n", line)
	}

	return b.String()
}
