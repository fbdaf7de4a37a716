// Command ember is the one-shot CLI: genesis, status inspection, manual
// heartbeats, and interactions against the shared snapshot database.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/talgya/ember/internal/config"
	"github.com/talgya/ember/internal/entity"
	"github.com/talgya/ember/internal/heartbeat"
	"github.com/talgya/ember/internal/persistence"
	"github.com/talgya/ember/internal/render"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fail("load config: %v", err)
	}

	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		fail("open database: %v", err)
	}
	defer db.Close()

	switch os.Args[1] {
	case "birth":
		runBirth(db, os.Args[2:])
	case "status":
		runStatus(db)
	case "card":
		runCard(db)
	case "heartbeat":
		runHeartbeat(db)
	case "interact":
		runInteract(db, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: ember <command>

commands:
  birth      create a new entity (refuses if one exists)
  status     print the rendered state sections
  card       print the YAML entity card
  heartbeat  process one heartbeat now
  interact   apply one interaction: ember interact "message"`)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ember: "+format+"\n", args...)
	os.Exit(1)
}

var speciesByName = map[string]entity.Species{
	"lumen": entity.SpeciesLumen, "echo": entity.SpeciesEcho,
	"verdant": entity.SpeciesVerdant, "lexis": entity.SpeciesLexis,
	"tactus": entity.SpeciesTactus, "aether": entity.SpeciesAether,
}

var temperamentByName = map[string]entity.Temperament{
	"bold-impulsive": entity.TemperamentBoldImpulsive, "calm-observant": entity.TemperamentCalmObservant,
	"curious-cautious": entity.TemperamentCuriousCautious, "restless-exploratory": entity.TemperamentRestlessExploratory,
}

var cognitionByName = map[string]entity.Cognition{
	"intuitive": entity.CognitionIntuitive, "analytical": entity.CognitionAnalytical,
	"associative": entity.CognitionAssociative, "deliberate": entity.CognitionDeliberate,
}

var formByName = map[string]entity.FormArchetype{
	"orb": entity.FormOrb, "wisp": entity.FormWisp,
	"fractal": entity.FormFractal, "bloom": entity.FormBloom,
}

func runBirth(db *persistence.DB, args []string) {
	fs := flag.NewFlagSet("birth", flag.ExitOnError)
	name := fs.String("name", "ember", "entity name")
	species := fs.String("species", "aether", "perception species (lumen|echo|verdant|lexis|tactus|aether)")
	temperament := fs.String("temperament", "curious-cautious", "temperament")
	cognition := fs.String("cognition", "intuitive", "cognition style")
	formArch := fs.String("form", "orb", "form archetype (orb|wisp|fractal|bloom)")
	board := fs.String("board", "unknown", "hardware board name")
	fs.Parse(args)

	if _, found, err := db.LoadLatest(); err != nil {
		fail("check existing: %v", err)
	} else if found {
		fail("an entity already exists; refusing to overwrite")
	}

	sp, ok := speciesByName[*species]
	if !ok {
		fail("unknown species %q", *species)
	}
	tp, ok := temperamentByName[*temperament]
	if !ok {
		fail("unknown temperament %q", *temperament)
	}
	cg, ok := cognitionByName[*cognition]
	if !ok {
		fail("unknown cognition %q", *cognition)
	}
	fm, ok := formByName[*formArch]
	if !ok {
		fail("unknown form %q", *formArch)
	}

	now := time.Now()
	seed := entity.NewSeed(*name, sp, cg, tp, fm,
		entity.Traits{Warmth: 55, Resilience: 50, Wonder: 70, Focus: 45, Expression: 60},
		entity.HardwareBody{Board: *board},
		now,
	)
	state := entity.New(seed)

	if err := db.SaveSnapshot(state, now); err != nil {
		fail("save genesis: %v", err)
	}
	fmt.Printf("born: %s (%s, %s) hash=%s\n", seed.Name, *species, *temperament, seed.Hash[:12])
}

func loadOrFail(db *persistence.DB) entity.EntityState {
	state, found, err := db.LoadLatest()
	if err != nil {
		fail("load snapshot: %v", err)
	}
	if !found {
		fail("no entity yet; run 'ember birth' first")
	}
	return state
}

func runStatus(db *persistence.DB) {
	fmt.Print(render.All(loadOrFail(db)))
}

func runCard(db *persistence.DB) {
	card, err := render.EntityCard(loadOrFail(db))
	if err != nil {
		fail("render card: %v", err)
	}
	fmt.Print(card)
}

func runHeartbeat(db *persistence.DB) {
	now := time.Now()
	res := heartbeat.ProcessHeartbeat(loadOrFail(db), now)
	if err := db.SaveSnapshot(res.Updated, now); err != nil {
		fail("save snapshot: %v", err)
	}
	fmt.Println(res.Diary)
	for _, m := range res.NewMilestones {
		fmt.Printf("milestone: day %d — %s\n", m.Day, m.Label)
	}
	if res.MemoryConsolidated {
		fmt.Println("memory consolidated")
	}
}

func runInteract(db *persistence.DB, args []string) {
	fs := flag.NewFlagSet("interact", flag.ExitOnError)
	taught := fs.Bool("taught", false, "mark as an entity-taught-user exchange")
	fs.Parse(args)

	message := ""
	if fs.NArg() > 0 {
		message = fs.Arg(0)
	}

	now := time.Now()
	res := heartbeat.ProcessInteraction(loadOrFail(db), heartbeat.InteractionContext{
		UserInitiated: true,
		MessageLength: len(message),
		EntityTaught:  *taught,
	}, now, summary(message))

	if err := db.SaveSnapshot(res.Updated, now); err != nil {
		fail("save snapshot: %v", err)
	}
	if res.FirstEncounter != nil {
		fmt.Println(res.FirstEncounter.Diary)
	}
	fmt.Printf("mood=%d comfort=%d curiosity=%d sulking=%t\n",
		res.Updated.Status.Mood, res.Updated.Status.Comfort,
		res.Updated.Status.Curiosity, res.Updated.Sulk.IsSulking)
}

func summary(message string) string {
	if message == "" {
		return "(wordless interaction)"
	}
	if len(message) > 120 {
		return message[:120] + "…"
	}
	return message
}
